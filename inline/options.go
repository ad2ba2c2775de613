package inline

import (
	"io"

	"github.com/laradl/laradl/catalog"
	"github.com/samber/mo"
)

// Options configures a catalog listing.
type Options struct {
	Out        io.Writer
	Discoverer catalog.Discoverer

	// TopicFilter and SeriesFilter fuzzy-match titles; empty matches everything.
	TopicFilter  string
	SeriesFilter string

	// Episodes includes the episodes of every listed series. It is implied by EpisodesFilter.
	Episodes       bool
	EpisodesFilter mo.Option[catalog.EpisodesFilter]

	Json bool
}

func (o *Options) includeEpisodes() bool {
	return o.Episodes || o.EpisodesFilter.IsPresent()
}
