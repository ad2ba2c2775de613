// Package open launches files and directories with the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Start opens input with the default handler without waiting for it to exit.
func Start(input string) error {
	cmd, err := Command(input)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Command returns the command that would open input on the current platform.
func Command(input string) (*exec.Cmd, error) {
	return command(runtime.GOOS, input)
}

func command(goos, input string) (*exec.Cmd, error) {
	switch goos {
	case "windows":
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
	case "darwin":
		return exec.Command("open", input), nil
	case "linux":
		return exec.Command("xdg-open", input), nil
	case "android":
		return exec.Command("termux-open", input), nil
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}
}
