package manifest

import (
	"fmt"

	"github.com/samber/mo"
)

// Variant is one progressive rendition of a video.
type Variant struct {
	Height int    `json:"height"`
	URL    string `json:"url"`
}

func (v Variant) String() string {
	return fmt.Sprintf("%dp", v.Height)
}

// Select returns the URL of the tallest variant whose height does not exceed ceiling.
//
// Variants are scanned in the given order. A variant replaces the current pick only when
// it is strictly taller, so the first of several equal heights wins. Variants above the
// ceiling are skipped without affecting the pick, hence the input needs no sorting.
func Select(variants []Variant, ceiling int) mo.Option[string] {
	best := 0
	result := mo.None[string]()

	for _, v := range variants {
		if v.Height > best && v.Height <= ceiling {
			best = v.Height
			result = mo.Some(v.URL)
		}
	}

	return result
}
