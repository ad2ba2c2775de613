// Package color names the ANSI palette entries the CLI paints with.
package color

import "github.com/charmbracelet/lipgloss"

const (
	Red    = lipgloss.Color("1")
	Green  = lipgloss.Color("2")
	Yellow = lipgloss.Color("3")
	Blue   = lipgloss.Color("4")
	Purple = lipgloss.Color("5")
	Cyan   = lipgloss.Color("6")

	HiRed    = lipgloss.Color("9")
	HiGreen  = lipgloss.Color("10")
	HiBlue   = lipgloss.Color("12")
	HiPurple = lipgloss.Color("13")
)
