// Package inline lists the catalog without downloading, for scripts and inspection.
package inline

import (
	"context"
	"fmt"
	"os"

	"github.com/laradl/laradl/catalog"
	"github.com/laradl/laradl/log"
)

// Sited is implemented by discoverers that know the site they list.
type Sited interface {
	BaseURL() string
}

// Run lists the catalog tree selected by options.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	topics, err := Collect(ctx, options)
	if err != nil {
		return err
	}

	if options.Json {
		var site string
		if sited, ok := options.Discoverer.(Sited); ok {
			site = sited.BaseURL()
		}
		return writeJson(options.Out, site, topics)
	}

	return writeText(options, topics)
}

// Collect walks the discoverer and returns the selected part of the tree with children attached.
func Collect(ctx context.Context, options *Options) ([]*catalog.Topic, error) {
	all, err := options.Discoverer.Topics(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	var topics []*catalog.Topic
	for _, topic := range all {
		if !catalog.Matches(options.TopicFilter, topic.Title) {
			continue
		}

		series, err := options.Discoverer.Series(ctx, topic)
		if err != nil {
			return nil, fmt.Errorf("list series of %s: %w", topic.Title, err)
		}

		topic.Series = nil
		for _, s := range series {
			if !catalog.Matches(options.SeriesFilter, s.Title) {
				continue
			}
			s.Topic = topic

			if options.includeEpisodes() {
				if err := prepareSeries(ctx, s, options); err != nil {
					return nil, err
				}
			}
			topic.Series = append(topic.Series, s)
		}

		topics = append(topics, topic)
	}

	return topics, nil
}

func prepareSeries(ctx context.Context, series *catalog.Series, options *Options) error {
	episodes, err := options.Discoverer.Episodes(ctx, series)
	if err != nil {
		return fmt.Errorf("list episodes of %s: %w", series.Title, err)
	}

	if filter, ok := options.EpisodesFilter.Get(); ok {
		episodes = filter(episodes)
	}

	for _, episode := range episodes {
		episode.Series = series
	}
	series.Episodes = episodes

	log.Debugf("listed %d episodes of %s", len(episodes), series.Title)
	return nil
}

func writeText(options *Options, topics []*catalog.Topic) error {
	for _, topic := range topics {
		if _, err := fmt.Fprintln(options.Out, topic.Title); err != nil {
			return err
		}

		for _, series := range topic.Series {
			_, _ = fmt.Fprintf(options.Out, "  %s\n", series.Title)

			for _, episode := range series.Episodes {
				_, _ = fmt.Fprintf(options.Out, "    %s\n", episode.Name())
			}
		}
	}
	return nil
}
