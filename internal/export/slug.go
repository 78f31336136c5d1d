package export

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	bracketGroup = regexp.MustCompile(`\[([^\]]+)\]`)
	// Whitespace is ASCII \s plus \v, the \x1c-\x1f separators, NEL and \p{Z}.
	nonSlugChars = regexp.MustCompile(`[^\p{L}\p{N}_\s\v\x1c-\x1f\x85\p{Z}-]`)
	spaceRun     = regexp.MustCompile(`[\s\v\x1c-\x1f\x85\p{Z}]+`)
)

// Slug converts a display name into a lowercase, hyphen-joined file name.
// Bracketed groups keep their contents, other punctuation is removed, and an
// empty result becomes "unnamed".
func Slug(name string) string {
	s := bracketGroup.ReplaceAllString(name, "$1")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = spaceRun.ReplaceAllString(strings.TrimFunc(s, isSlugSpace), "-")
	s = strings.ToLower(s)
	if s == "" {
		return "unnamed"
	}
	return s
}

func isSlugSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
