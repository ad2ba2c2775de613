package history

import (
	"fmt"
	"time"

	"github.com/laradl/laradl/catalog"
)

// SavedEpisode represents a single downloaded episode preserved in the registry.
type SavedEpisode struct {
	TopicTitle  string    `json:"topic_title"`
	SeriesTitle string    `json:"series_title"`
	SeriesSlug  string    `json:"series_slug"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Path        string    `json:"path"`
	Size        int64     `json:"size"`
	SavedAt     time.Time `json:"saved_at"`
}

func (s *SavedEpisode) encode() string {
	return fmt.Sprintf("%s/%s", s.SeriesSlug, s.ID)
}

func (s *SavedEpisode) String() string {
	return fmt.Sprintf("%s : %s. %s", s.SeriesTitle, s.ID, s.Title)
}

func newSavedEpisode(episode *catalog.Episode, path string, size int64) *SavedEpisode {
	saved := &SavedEpisode{
		ID:      episode.ID,
		Title:   episode.Title,
		URL:     episode.URL,
		Path:    path,
		Size:    size,
		SavedAt: time.Now(),
	}

	if series := episode.Series; series != nil {
		saved.SeriesTitle = series.Title
		saved.SeriesSlug = series.Slug
	}
	if topic := episode.Topic(); topic != nil {
		saved.TopicTitle = topic.Title
	}
	return saved
}
