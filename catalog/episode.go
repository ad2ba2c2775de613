package catalog

import "fmt"

// Episode is a single video of a series.
type Episode struct {
	// Site identifier, usually the episode position (e.g. "5").
	ID    string `json:"id"`
	Title string `json:"title"`
	// Direct URL to the episode page.
	URL string `json:"url"`

	Series *Series `json:"-"`
}

func (e *Episode) String() string {
	return e.Title
}

// Name returns the base file name of the episode video, without extension.
func (e *Episode) Name() string {
	return fmt.Sprintf("%s. %s", e.ID, e.Title)
}

// Topic returns the topic the episode belongs to, if the tree is linked.
func (e *Episode) Topic() *Topic {
	if e.Series == nil {
		return nil
	}
	return e.Series.Topic
}
