package extract

import "strings"

var unicodeReplacer = strings.NewReplacer(
	"“", `"`, "”", `"`,
	"‘", "'", "’", "'",
	"′", "'", "″", `"`,
	"–", "-", "—", "--",
	"…", "...",
	" ", " ",
)

// NormalizeText strips post text down to plain ASCII for warehouse
// compatibility: smart quotes and dashes become their ASCII equivalents,
// emojis and other non-ASCII runes are dropped, and control characters other
// than newline and tab are removed.
func NormalizeText(text string) string {
	text = unicodeReplacer.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if r >= 32 && r < 128 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
