package keys

import (
	"strings"
	"unicode"
)

// FromTitle produces a stable identifier for a scenario or token title.
// Behavior: trims, lower-cases, turns runs of anything that is not a letter
// or digit into a single underscore, and drops leading/trailing underscores.
// "University Protest!" becomes "university_protest".
func FromTitle(title string) string {
	var b strings.Builder
	pendingSep := false
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
			continue
		}
		pendingSep = true
	}
	return b.String()
}
