package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Matches reports whether title fuzzy-matches filter, ignoring case and diacritics.
// An empty filter matches everything.
func Matches(filter, title string) bool {
	return filter == "" || fuzzy.MatchNormalizedFold(filter, title)
}

// EpisodesFilter narrows the episodes of a series.
type EpisodesFilter func(episodes []*Episode) []*Episode

// ParseEpisodesFilter parses an episode selection.
//
//	all     every episode
//	first   the first episode
//	last    the last episode
//	5       the episode with id 5
//	2-7     episodes with ids 2 through 7
//	@text@  episodes whose title contains text
func ParseEpisodesFilter(description string) (EpisodesFilter, error) {
	description = strings.TrimSpace(description)

	switch description {
	case "", "all":
		return func(episodes []*Episode) []*Episode {
			return episodes
		}, nil
	case "first":
		return func(episodes []*Episode) []*Episode {
			return lo.Subset(episodes, 0, 1)
		}, nil
	case "last":
		return func(episodes []*Episode) []*Episode {
			return lo.Subset(episodes, -1, 1)
		}, nil
	}

	if len(description) > 1 && strings.HasPrefix(description, "@") && strings.HasSuffix(description, "@") {
		sub := strings.ToLower(description[1 : len(description)-1])
		return func(episodes []*Episode) []*Episode {
			return lo.Filter(episodes, func(e *Episode, _ int) bool {
				return strings.Contains(strings.ToLower(e.Title), sub)
			})
		}, nil
	}

	from, to, isRange := strings.Cut(description, "-")
	if !isRange {
		to = from
	}

	lower, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return nil, fmt.Errorf("invalid episode filter: %s", description)
	}
	upper, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil || upper < lower {
		return nil, fmt.Errorf("invalid episode filter: %s", description)
	}

	return func(episodes []*Episode) []*Episode {
		return lo.Filter(episodes, func(e *Episode, _ int) bool {
			id, err := strconv.Atoi(e.ID)
			return err == nil && id >= lower && id <= upper
		})
	}, nil
}
