// Package detector guesses the language of a text. The session uses it to
// suggest a source language; the validator uses it to check translations.
package detector

import (
	"strings"

	lingua "github.com/pemistahl/lingua-go"

	"github.com/valpere/lingobuddy/internal/language"
)

// aliases maps ISO codes onto the base code they are compared as.
var aliases = map[string]string{
	"iw": "he",
	"jw": "jv",
	"nb": "no",
	"nn": "no",
}

// catalogCodes maps detector codes to catalog codes that differ from them.
var catalogCodes = map[string]language.Code{
	"zh": "zh-cn",
	"nb": "no",
	"nn": "no",
}

// Detector is expensive to build; share one instance.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromAllLanguages().
		Build()

	return &Detector{detector: detector}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lower-case ISO 639-1 code of the detected language.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return strings.ToLower(lang.IsoCode639_1().String()), true
}

// Suggestion is a candidate source language.
type Suggestion struct {
	Code       language.Code
	Confidence float64
}

// Suggest returns the most likely catalog language of text.
func (d *Detector) Suggest(text string, catalog *language.Catalog) (Suggestion, bool) {
	if strings.TrimSpace(text) == "" {
		return Suggestion{}, false
	}

	for _, cv := range d.detector.ComputeLanguageConfidenceValues(text) {
		if cv.Value() <= 0 {
			break
		}
		iso := strings.ToLower(cv.Language().IsoCode639_1().String())
		if code, ok := toCatalog(iso, catalog); ok {
			return Suggestion{Code: code, Confidence: cv.Value()}, true
		}
	}
	return Suggestion{}, false
}

func toCatalog(iso string, catalog *language.Catalog) (language.Code, bool) {
	if code, ok := catalogCodes[iso]; ok && catalog.Contains(code) {
		return code, true
	}
	return catalog.Lookup(iso)
}

// Base reduces a language code to the form detection results are compared
// in: region dropped, legacy codes mapped ("zh-cn" → "zh", "iw" → "he").
func Base(code string) string {
	code = strings.ToLower(strings.TrimSpace(code))
	if i := strings.IndexAny(code, "-_"); i > 0 {
		code = code[:i]
	}
	if a, ok := aliases[code]; ok {
		return a
	}
	return code
}
