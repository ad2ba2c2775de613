package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/config"
	"github.com/laradl/laradl/style"
	"github.com/laradl/laradl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only show variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only show variables that are not set")
	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

// envCmd lists the environment variables that override settings.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables laradl reads",
	Run: func(cmd *cobra.Command, args []string) {
		setOnly := lo.Must(cmd.Flags().GetBool("set-only"))
		unsetOnly := lo.Must(cmd.Flags().GetBool("unset-only"))

		names := lo.MapToSlice(config.Default, func(_ string, f config.Field) string {
			return f.Env()
		})
		names = append(names, where.EnvConfigPath)
		slices.Sort(names)

		out := cmd.OutOrStdout()
		for _, name := range names {
			value, set := os.LookupEnv(name)
			if (setOnly && !set) || (unsetOnly && set) {
				continue
			}

			shown := style.Fg(color.Red)("unset")
			if set {
				shown = style.Fg(color.Green)(value)
				if strings.HasSuffix(name, "_PASSWORD") {
					shown = style.Fg(color.Green)("********")
				}
			}

			_, _ = fmt.Fprintf(out, "%s=%s\n", style.Bold(name), shown)
		}
	},
}
