// Package postprocess normalises the raw text returned by REST translation
// providers before it is shown to the user.
package postprocess

import (
	"html"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// invisibles are characters some providers leave around the translation.
// Joiners (U+200C, U+200D) are part of the spelling in Persian or Hindi and
// of emoji sequences and must be kept.
var invisibles = strings.NewReplacer(
	"\u200b", "",
	"\ufeff", "",
)

// Clean decodes HTML entities, drops zero-width spaces and byte order marks
// and returns the trimmed NFC form of text.
func Clean(text string) string {
	text = unescapeEntities(text)
	text = invisibles.Replace(text)
	return norm.NFC.String(strings.TrimSpace(text))
}

// unescapeEntities decodes one level of HTML entities, so a translation
// that literally contains "&amp;lt;" keeps it as "&lt;".
func unescapeEntities(text string) string {
	if !strings.ContainsRune(text, '&') {
		return text
	}
	return html.UnescapeString(text)
}
