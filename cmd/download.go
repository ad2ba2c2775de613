package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/laradl/laradl/catalog"
	"github.com/laradl/laradl/color"
	"github.com/laradl/laradl/history"
	"github.com/laradl/laradl/icon"
	"github.com/laradl/laradl/key"
	"github.com/laradl/laradl/log"
	"github.com/laradl/laradl/manifest"
	"github.com/laradl/laradl/progress"
	"github.com/laradl/laradl/style"
	"github.com/laradl/laradl/transfer"
	"github.com/laradl/laradl/util"
	"github.com/laradl/laradl/walker"
	"github.com/laradl/laradl/where"
	"github.com/spf13/viper"
)

type downloadOptions struct {
	topic    string
	series   string
	episodes string
}

func runDownload(ctx context.Context, options *downloadOptions) error {
	filter, err := catalog.ParseEpisodesFilter(options.episodes)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	client := newClient()
	session, err := newSession(ctx, client, true)
	if err != nil {
		return err
	}

	referer := viper.GetString(key.DownloadsReferer)
	resolver := manifest.New(client,
		manifest.WithReferer(referer),
		manifest.WithMaxQuality(viper.GetInt(key.DownloadsMaxQuality)),
	)
	engine := transfer.New(resolver,
		transfer.WithClient(client),
		transfer.WithReferer(referer),
		transfer.WithStateHook(func(s transfer.State) {
			log.Tracef("transfer %s", s)
		}),
	)

	printer := progress.NewPrinter(progress.WithHeadless(viper.GetBool(key.CliHeadless) || !util.IsTerminal()))

	opts := []walker.Option{
		walker.WithRoot(where.Downloads()),
		walker.WithForce(viper.GetBool(key.DownloadsForce)),
		walker.WithTopicFilter(options.topic),
		walker.WithSeriesFilter(options.series),
		walker.WithEpisodesFilter(filter),
		walker.WithSinks(printer.Sink),
	}
	if viper.GetBool(key.HistorySaveOnDownload) {
		opts = append(opts, walker.WithRecorder(history.Save))
	}

	log.Infof("downloading catalog into %s, ceiling %dp", where.Downloads(), resolver.MaxQuality())
	report, err := walker.New(session, engine, opts...).Walk(ctx)
	printReport(report)
	if err != nil {
		return err
	}

	if report.Failed > 0 {
		return fmt.Errorf("%s failed", util.Quantify(report.Failed, "episode", "episodes"))
	}
	return nil
}

func printReport(report *walker.Report) {
	if report == nil {
		return
	}

	fmt.Printf(
		"\n%s %s downloaded, %s skipped\n",
		style.Fg(color.Green)(icon.Get(icon.Success)),
		util.Quantify(report.Downloaded, "episode", "episodes"),
		util.Quantify(report.Skipped, "episode", "episodes"),
	)

	for _, err := range report.Errors {
		fmt.Printf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), err)
	}
}
