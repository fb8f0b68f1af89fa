package ifc

import (
	"strings"
	"unicode"
)

// FriendlyClass turns a canonical class name into a display label:
// IfcWallStandardCase becomes "Wall Standard Case". Names without the
// Ifc prefix are split the same way.
func FriendlyClass(name string) string {
	return SplitCamel(strings.TrimPrefix(name, "Ifc"))
}

// FriendlyAttr turns an attribute name into a display label:
// OverallHeight becomes "Overall Height".
func FriendlyAttr(name string) string {
	return SplitCamel(name)
}

// SplitCamel inserts spaces at word boundaries of a CamelCase
// identifier. Runs of capitals stay together, so GFAArea becomes
// "GFA Area".
func SplitCamel(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

// DisplayName returns the best human label for an entity: its Name,
// falling back to its LongName, then to "Unnamed".
func DisplayName(e Entity) string {
	if name := e.Name(); name != "" {
		return name
	}
	if long, ok := e.Attr("LongName"); ok {
		if s, ok := long.AsString(); ok && s != "" {
			return s
		}
	}
	return "Unnamed"
}
