// Package naming derives identifiers from a human-entered project name.
package naming

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonAlnum  = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	dashRuns  = regexp.MustCompile(`-+`)
	upperCase = cases.Upper(language.Und)
	lowerCase = cases.Lower(language.Und)
)

// words splits s on every run of non-alphanumeric characters.
func words(s string) []string {
	return strings.Fields(nonAlnum.ReplaceAllString(s, " "))
}

// PascalCase upper-cases the first character of every word and joins them,
// leaving the rest of each word untouched: "cool mod" → "CoolMod",
// "myMod-x" → "MyModX", "3d mod" → "3dMod".
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		_, size := utf8.DecodeRuneInString(w)
		b.WriteString(upperCase.String(w[:size]))
		b.WriteString(w[size:])
	}
	return b.String()
}

// PackageSegment lower-cases every word and joins them with no separator,
// producing a single Java package segment: "Cool Mod" → "coolmod".
func PackageSegment(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(lowerCase.String(w))
	}
	return b.String()
}

// KebabCase hyphenates s: "Cool Mod" → "cool-mod".
func KebabCase(s string) string {
	out := nonAlnum.ReplaceAllString(s, "-")
	out = dashRuns.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-")
	return lowerCase.String(out)
}
