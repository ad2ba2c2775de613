package cmd

import (
	"fmt"

	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/open"
	"github.com/laradl/laradl/style"
	"github.com/laradl/laradl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// location is a path printed by the where command.
type location struct {
	name   string
	flag   string
	short  string
	path   func() string
	hidden bool
}

var locations = []location{
	{name: "Downloads", flag: "downloads", short: "d", path: where.Downloads},
	{name: "Config", flag: "config", short: "c", path: where.Config},
	{name: "Logs", flag: "logs", short: "l", path: where.Logs},
	{name: "Cache", flag: "cache", path: where.Cache, hidden: true},
	{name: "History", flag: "history", path: where.History, hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, l := range locations {
		whereCmd.Flags().BoolP(l.flag, l.short, false, l.name+" path")
		if l.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(l.flag))
		}
	}
	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(locations, func(l location, _ int) string {
		return l.flag
	})...)

	whereCmd.Flags().BoolP("open", "o", false, "Open the selected path with the default application")
}

// whereCmd prints where downloads, settings and logs live.
var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show the paths laradl reads and writes",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		selected, ok := lo.Find(locations, func(l location) bool {
			return lo.Must(cmd.Flags().GetBool(l.flag))
		})
		if ok {
			path := selected.path()
			if lo.Must(cmd.Flags().GetBool("open")) {
				handleErr(open.Start(path))
				return
			}
			_, _ = fmt.Fprintln(out, path)
			return
		}

		visible := lo.Reject(locations, func(l location, _ int) bool {
			return l.hidden
		})
		for i, l := range visible {
			if i > 0 {
				_, _ = fmt.Fprintln(out)
			}
			_, _ = fmt.Fprintf(out, "%s %s\n%s\n",
				style.New().Bold(true).Foreground(color.HiPurple).Render(l.name+"?"),
				style.Fg(color.Yellow)("--"+l.flag),
				l.path(),
			)
		}
	},
}
