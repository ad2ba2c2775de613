package constant

// Catalog site defaults.
const (
	// SiteURL is the root of the Laracasts catalog.
	SiteURL = "https://laracasts.com"

	// DefaultReferer is sent with every player and media request; the video host rejects requests without it.
	DefaultReferer = SiteURL

	// DefaultDownloadPath is the root directory the catalog tree is written under.
	DefaultDownloadPath = "./laracasts"

	// DefaultMaxQuality is the highest vertical resolution accepted when picking a video variant.
	DefaultMaxQuality = 2160
)

// AsciiArtLogo is printed above the root command's long help.
const AsciiArtLogo = `  _                     _ _
 | | __ _ _ __ __ _  __| | |
 | |/ _' | '__/ _' |/ _' | |
 | | (_| | | | (_| | (_| | |
 |_|\__,_|_|  \__,_|\__,_|_|`
