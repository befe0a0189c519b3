package lookup

import "strings"

// Rewrite converts text by greedy longest-match substitution. Runes not
// starting any key of m are copied unchanged.
func Rewrite(text string, m Matcher) string {
	if text == "" {
		return ""
	}
	offsets := runeByteOffsets(text)
	runeCount := len(offsets) - 1
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < runeCount; {
		n, repl := m.Match(text, offsets, i)
		if n == 0 {
			b.WriteString(text[offsets[i]:offsets[i+1]])
			i++
			continue
		}
		b.WriteString(repl) // may be empty
		i += n
	}
	return b.String()
}
