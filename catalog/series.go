package catalog

// Series groups episodes under a topic.
type Series struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	URL   string `json:"url"`

	Topic *Topic `json:"-"`

	// Episodes is populated only when the whole tree is listed at once.
	Episodes []*Episode `json:"episodes,omitempty"`
}

func (s *Series) String() string {
	return s.Title
}
