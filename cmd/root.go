// Package cmd implements the command-line interface for laradl.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/icon"
	"github.com/laradl/laradl/key"
	"github.com/laradl/laradl/log"
	"github.com/laradl/laradl/style"
	"github.com/laradl/laradl/version"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("headless", false, "Print plain lines instead of progress bars")
	lo.Must0(viper.BindPFlag(key.CliHeadless, rootCmd.PersistentFlags().Lookup("headless")))

	rootCmd.Flags().StringP("path", "p", "", "Directory the catalog is downloaded into")
	lo.Must0(viper.BindPFlag(key.DownloadsPath, rootCmd.Flags().Lookup("path")))

	rootCmd.Flags().IntP("quality", "q", 0, "Highest vertical resolution to download, e.g. 1080")
	lo.Must0(viper.BindPFlag(key.DownloadsMaxQuality, rootCmd.Flags().Lookup("quality")))

	rootCmd.Flags().BoolP("force", "f", false, "Download episodes again even if they look complete")
	lo.Must0(viper.BindPFlag(key.DownloadsForce, rootCmd.Flags().Lookup("force")))

	rootCmd.Flags().BoolP("write-history", "H", true, "Record downloaded episodes in the history file")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnDownload, rootCmd.Flags().Lookup("write-history")))

	rootCmd.Flags().StringP("topic", "t", "", "Only download topics fuzzy matching this title")
	rootCmd.Flags().StringP("series", "s", "", "Only download series fuzzy matching this title")
	rootCmd.Flags().StringP("episodes", "e", "all", "Episodes to download from each series: all, first, last, 5, 2-7 or @text@")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})
}

// rootCmd downloads the whole catalog, or the part selected by flags.
var rootCmd = &cobra.Command{
	Use:   constant.Laradl,
	Short: "Download the Laracasts catalog for offline viewing",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Download the Laracasts catalog for offline viewing"),
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		options := downloadOptions{
			topic:    lo.Must(cmd.Flags().GetString("topic")),
			series:   lo.Must(cmd.Flags().GetString("series")),
			episodes: lo.Must(cmd.Flags().GetString("episodes")),
		}
		handleErr(runDownload(cmd.Context(), &options))
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
