package icon

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Skip
	Download
)

var icons = map[Icon]variants{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(╯°□°)╯",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・_・ヾ",
		squares: "🟦",
	},
	Skip: {
		emoji:   "⏭️",
		nerd:    "",
		plain:   "»",
		kaomoji: "(￢_￢)",
		squares: "🟨",
	},
	Download: {
		emoji:   "📥",
		nerd:    "",
		plain:   "↓",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "🟪",
	},
}
