package naming

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// parentRef is repeated once per path segment to climb out of a component
// directory back to the components root.
const parentRef = "../"

// Names holds every identifier derived from one component name.
type Names struct {
	Raw          string // e.g., "group/my_widget"
	Stem         string // e.g., "my_widget"
	Tag          string // e.g., "my-widget"
	Type         string // e.g., "MyWidget"
	ImportPrefix string // e.g., "../../"
}

// Derive normalizes input and computes all derived names from it.
func Derive(input string) Names {
	raw := Normalize(input)
	stem := Stem(raw)
	return Names{
		Raw:          raw,
		Stem:         stem,
		Tag:          TagName(stem),
		Type:         TypeName(stem),
		ImportPrefix: ImportPrefix(raw),
	}
}

// Normalize strips a trailing line terminator, lowercases the input and
// replaces spaces with underscores.
func Normalize(input string) string {
	input = strings.TrimSuffix(input, "\n")
	input = strings.TrimSuffix(input, "\r")
	return strings.ReplaceAll(cases.Lower(language.Und).String(input), " ", "_")
}

// Stem returns the last "/"-separated segment of a raw name.
func Stem(raw string) string {
	return raw[strings.LastIndex(raw, "/")+1:]
}

// TagName returns the stem with underscores replaced by hyphens.
func TagName(stem string) string {
	return strings.ReplaceAll(stem, "_", "-")
}

// TypeName capitalizes each underscore-delimited word of the stem and joins
// the words without separators: "my_widget" -> "MyWidget".
//
// Only the first rune of a word is changed; runs of underscores collapse.
func TypeName(stem string) string {
	title := cases.Title(language.Und)

	var b strings.Builder
	for _, word := range strings.Fields(strings.ReplaceAll(stem, "_", " ")) {
		_, size := utf8.DecodeRuneInString(word)
		b.WriteString(title.String(word[:size]))
		b.WriteString(word[size:])
	}
	return b.String()
}

// ImportPrefix returns "../" repeated once per "/"-delimited segment of raw.
func ImportPrefix(raw string) string {
	return strings.Repeat(parentRef, strings.Count(raw, "/")+1)
}
