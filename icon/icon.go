// Package icon renders status symbols in the variant chosen by icons.variant.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain text, kaomoji
// or colored squares.
package icon

import (
	"github.com/laradl/laradl/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted values of icons.variant.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// variants holds the renditions of one icon keyed by variant name.
type variants map[string]string

// Get returns the rendition of i for the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	return icons[i][viper.GetString(key.IconsVariant)]
}
