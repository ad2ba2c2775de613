// Package catalog defines the three-level content tree (topic, series, episode) and the discovery capability that produces it.
package catalog

import (
	"context"
	"errors"
)

// ErrEpisodePageUnavailable is returned when an episode page lacks the embedded player.
// It almost always means the session is not signed in.
var ErrEpisodePageUnavailable = errors.New("failed to find episode video, please make sure your login credentials are correct")

// Discoverer lists the catalog tree of a site session.
// Implementations own the markup knowledge; callers only rely on this contract.
type Discoverer interface {
	// Topics returns every topic of the catalog.
	Topics(ctx context.Context) ([]*Topic, error)

	// Series returns the series listed under a topic.
	Series(ctx context.Context, topic *Topic) ([]*Series, error)

	// Episodes returns the episodes of a series.
	Episodes(ctx context.Context, series *Series) ([]*Episode, error)

	// EpisodePageURL returns the URL of the page embedding the episode's video manifest.
	EpisodePageURL(ctx context.Context, episode *Episode) (string, error)
}
