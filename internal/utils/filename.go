package utils

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// SecureFilename reduces an uploaded filename to a flat ASCII name that is
// safe to store and to put in a URL.
//
// Accented letters are decomposed and stripped to their ASCII base, path
// separators and whitespace become underscores, anything outside
// [A-Za-z0-9_.-] is dropped and leading/trailing dots and underscores are
// trimmed. The result may be empty; callers must reject that.
//
//	SecureFilename("My House.JPG")     // "My_House.JPG"
//	SecureFilename("../../etc/passwd") // "etc_passwd"
func SecureFilename(filename string) string {
	t := transform.Chain(
		norm.NFKD,
		runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII })),
	)
	name, _, err := transform.String(t, filename)
	if err != nil {
		return ""
	}

	name = strings.NewReplacer("/", " ", `\`, " ").Replace(name)
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")

	return strings.Trim(name, "._")
}
