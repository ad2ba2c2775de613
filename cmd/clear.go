package cmd

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/laradl/laradl/icon"
	"github.com/laradl/laradl/util"
	"github.com/laradl/laradl/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// clearable is a file or directory the clear command can remove.
var clearable = []location{
	{name: "Cache directory", flag: "cache", short: "c", path: where.Cache},
	{name: "History file", flag: "history", short: "s", path: where.History},
	{name: "Logs directory", flag: "logs", short: "l", path: where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	for _, c := range clearable {
		clearCmd.Flags().BoolP(c.flag, c.short, false, "Clear the "+c.name)
	}
}

// clearCmd removes caches, history and logs. Downloaded videos are never touched.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove cached data, the download history or logs",
	Run: func(cmd *cobra.Command, args []string) {
		selected := lo.Filter(clearable, func(c location, _ int) bool {
			return lo.Must(cmd.Flags().GetBool(c.flag))
		})
		if len(selected) == 0 {
			handleErr(cmd.Help())
			return
		}

		for _, c := range selected {
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), c.name))
			err := util.Delete(c.path())
			erase()
			if err != nil && !errors.Is(err, fs.ErrNotExist) {
				handleErr(err)
			}
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), c.name)
		}
	},
}
