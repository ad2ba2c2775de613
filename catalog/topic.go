package catalog

// Topic is the root level of the catalog tree.
type Topic struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
	URL   string `json:"url"`

	Series []*Series `json:"series,omitempty"`
}

func (t *Topic) String() string {
	return t.Title
}
