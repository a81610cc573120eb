package icon

// Icon identifies a registered UI symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Lock
	Link
	Download
	Video
	Mark
)

// icons is the global registry mapping each symbol to its per-variant representations.
var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "+",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "*",
		kaomoji: "(・・;)",
		squares: "🟨",
	},
	Lock: {
		emoji:   "🔐",
		nerd:    "",
		plain:   "#",
		kaomoji: "(¬_¬)",
		squares: "🟧",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "@",
		kaomoji: "(o^^)o",
		squares: "🟦",
	},
	Download: {
		emoji:   "📥",
		nerd:    "",
		plain:   "v",
		kaomoji: "(￣ω￣)",
		squares: "🟪",
	},
	Video: {
		emoji:   "🎥",
		nerd:    "",
		plain:   ">",
		kaomoji: "(◉◡◉)",
		squares: "⬜",
	},
	Mark: {
		emoji:   "🦄",
		nerd:    "",
		plain:   "*",
		kaomoji: "(♡˙︶˙♡)",
		squares: "🔲",
	},
}
