package cmd

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/style"
	"github.com/laradl/laradl/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		if lo.Must(cmd.Flags().GetBool("short")) {
			_, _ = fmt.Fprintln(out, constant.Version)
			return
		}

		defer version.Notify()

		rows := []lo.Tuple2[string, string]{
			{A: "Version", B: constant.Version},
			{A: "Git Commit", B: constant.Revision},
			{A: "Build Date", B: strings.TrimSpace(constant.BuiltAt)},
			{A: "Built By", B: constant.BuiltBy},
			{A: "Platform", B: runtime.GOOS + "/" + runtime.GOARCH},
			{A: "Go", B: runtime.Version()},
		}

		_, _ = fmt.Fprintf(out, "%s %s\n\n", style.Fg(color.Purple)("▇▇▇"), style.Fg(color.Purple)(constant.Laradl))
		for _, row := range rows {
			_, _ = fmt.Fprintf(out, "  %s %s\n", style.Faint(fmt.Sprintf("%-15s", row.A)), style.Bold(row.B))
		}
	},
}
