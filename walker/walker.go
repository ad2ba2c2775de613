// Package walker traverses the catalog tree and downloads every episode it reaches.
package walker

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/laradl/laradl/catalog"
	"github.com/laradl/laradl/filesystem"
	"github.com/laradl/laradl/log"
	"github.com/laradl/laradl/transfer"
	"github.com/laradl/laradl/util"
)

// Downloader transfers a single episode.
type Downloader interface {
	Download(ctx context.Context, req transfer.Request, sink transfer.Sink) error
}

// SinkFactory returns the sink receiving the events of one episode's transfer.
type SinkFactory func(episode *catalog.Episode) transfer.Sink

// Recorder is called after an episode has been downloaded or found complete on disk.
type Recorder func(episode *catalog.Episode, path string, size int64) error

// Report summarizes a walk.
type Report struct {
	Downloaded int
	Skipped    int
	Failed     int
	// Errors holds one entry per failed episode, in traversal order.
	Errors []error
}

// Walker downloads the catalog one episode at a time, depth first.
type Walker struct {
	discoverer catalog.Discoverer
	downloader Downloader

	root         string
	force        bool
	topicFilter  string
	seriesFilter string
	episodes     catalog.EpisodesFilter
	sinks        SinkFactory
	recorder     Recorder
}

// Option configures a Walker.
type Option func(*Walker)

// WithRoot sets the directory topics are created under.
func WithRoot(root string) Option {
	return func(w *Walker) {
		w.root = root
	}
}

// WithForce re-downloads files that already have the expected size.
func WithForce(force bool) Option {
	return func(w *Walker) {
		w.force = force
	}
}

// WithTopicFilter restricts the walk to topics whose title fuzzy-matches filter.
func WithTopicFilter(filter string) Option {
	return func(w *Walker) {
		w.topicFilter = filter
	}
}

// WithSeriesFilter restricts the walk to series whose title fuzzy-matches filter.
func WithSeriesFilter(filter string) Option {
	return func(w *Walker) {
		w.seriesFilter = filter
	}
}

// WithEpisodesFilter restricts the episodes downloaded from each series.
func WithEpisodesFilter(filter catalog.EpisodesFilter) Option {
	return func(w *Walker) {
		w.episodes = filter
	}
}

// WithSinks sets the factory creating the progress sink of each episode.
func WithSinks(factory SinkFactory) Option {
	return func(w *Walker) {
		w.sinks = factory
	}
}

// WithRecorder sets the function notified of every successful episode.
func WithRecorder(recorder Recorder) Option {
	return func(w *Walker) {
		w.recorder = recorder
	}
}

// New creates a walker listing the catalog through discoverer and transferring with downloader.
func New(discoverer catalog.Discoverer, downloader Downloader, opts ...Option) *Walker {
	w := &Walker{
		discoverer: discoverer,
		downloader: downloader,
		root:       ".",
		sinks: func(*catalog.Episode) transfer.Sink {
			return transfer.Discard
		},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Walk downloads every episode of every matching series and topic.
//
// A failing episode is logged and counted, and the walk moves on to the next one.
// catalog.ErrEpisodePageUnavailable and context cancellation stop the walk.
// Listing failures and directory creation failures stop it as well.
func (w *Walker) Walk(ctx context.Context) (*Report, error) {
	report := &Report{}

	topics, err := w.discoverer.Topics(ctx)
	if err != nil {
		return report, fmt.Errorf("list topics: %w", err)
	}

	for _, topic := range topics {
		if !catalog.Matches(w.topicFilter, topic.Title) {
			continue
		}

		if err := w.Topic(ctx, topic, report); err != nil {
			return report, err
		}
	}

	return report, nil
}

// Topic downloads every matching series of topic.
func (w *Walker) Topic(ctx context.Context, topic *catalog.Topic, report *Report) error {
	dir := w.topicDir(topic)
	if err := filesystem.API().MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create topic directory: %w", err)
	}

	series, err := w.discoverer.Series(ctx, topic)
	if err != nil {
		return fmt.Errorf("list series of %s: %w", topic.Title, err)
	}

	log.Infof("topic %s: %s", topic.Title, util.Quantify(len(series), "series", "series"))

	for _, s := range series {
		if !catalog.Matches(w.seriesFilter, s.Title) {
			continue
		}
		if s.Topic == nil {
			s.Topic = topic
		}

		if err := w.Series(ctx, s, report); err != nil {
			return err
		}
	}

	return nil
}

// Series downloads every episode of series.
func (w *Walker) Series(ctx context.Context, series *catalog.Series, report *Report) error {
	dir := w.seriesDir(series)
	if err := filesystem.API().MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create series directory: %w", err)
	}

	episodes, err := w.discoverer.Episodes(ctx, series)
	if err != nil {
		return fmt.Errorf("list episodes of %s: %w", series.Title, err)
	}
	if w.episodes != nil {
		episodes = w.episodes(episodes)
	}

	for _, episode := range episodes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if episode.Series == nil {
			episode.Series = series
		}

		err := w.Episode(ctx, episode, dir, report)
		switch {
		case err == nil:
		case errors.Is(err, catalog.ErrEpisodePageUnavailable),
			errors.Is(err, context.Canceled),
			errors.Is(err, context.DeadlineExceeded):
			return err
		default:
			log.Errorf("episode %s of %s: %v", episode.ID, series.Title, err)
			report.Failed++
			report.Errors = append(report.Errors, fmt.Errorf("%s/%s: %w", series.Title, episode.Name(), err))
		}
	}

	return nil
}

// Episode downloads a single episode into dir and updates report on success.
func (w *Walker) Episode(ctx context.Context, episode *catalog.Episode, dir string, report *Report) error {
	pageURL, err := w.discoverer.EpisodePageURL(ctx, episode)
	if err != nil {
		return err
	}

	sink := w.sinks(episode)
	outcome := &outcome{sink: sink}
	err = w.downloader.Download(ctx, transfer.Request{
		SourceURL:       pageURL,
		TargetDirectory: dir,
		TargetBaseName:  episode.Name(),
		Force:           w.force,
	}, outcome)
	if err != nil {
		if f, ok := sink.(failer); ok {
			f.Fail(err)
		}
		return err
	}
	if f, ok := sink.(finisher); ok {
		f.Finish()
	}

	if outcome.skipped {
		report.Skipped++
	} else {
		report.Downloaded++
	}

	if w.recorder != nil {
		if err := w.recorder(episode, outcome.path, outcome.size); err != nil {
			log.Warnf("record episode %s: %v", episode.Name(), err)
		}
	}

	return nil
}

// topicDir and seriesDir keep every title a single level below the root, whatever the site serves.
func (w *Walker) topicDir(topic *catalog.Topic) string {
	return filepath.Join(w.root, util.SanitizeSegment(topic.Title, topic.Slug))
}

func (w *Walker) seriesDir(series *catalog.Series) string {
	dir := w.root
	if series.Topic != nil {
		dir = w.topicDir(series.Topic)
	}
	return filepath.Join(dir, util.SanitizeSegment(series.Title, series.Slug))
}

// failer and finisher are implemented by sinks that need to know a transfer ended
// without a final event.
type failer interface {
	Fail(err error)
}

type finisher interface {
	Finish()
}

// outcome forwards events to the episode sink and remembers how the transfer ended.
type outcome struct {
	sink    transfer.Sink
	skipped bool
	path    string
	size    int64
}

func (o *outcome) Accept(e transfer.Event) {
	o.skipped = e.Skipped
	o.path = e.FilePath
	o.size += e.Delta
	o.sink.Accept(e)
}
