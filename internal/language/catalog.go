// Package language holds the catalog of language codes a translation session
// can choose from.
package language

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Code is a provider language identifier such as "en", "fr" or "zh-cn".
type Code string

func (c Code) String() string {
	return string(c)
}

// Entry is one selectable catalog language.
type Entry struct {
	Code Code
	Name string
	// Label is Name, suffixed with the code when several codes share a name.
	Label string
}

// Catalog maps codes to display names. It is immutable once built.
type Catalog struct {
	names   map[Code]string
	entries []Entry
	byLabel map[string]Code
}

// NewCatalog builds a catalog from a code → display name table.
func NewCatalog(table map[string]string) *Catalog {
	c := &Catalog{
		names:   make(map[Code]string, len(table)),
		byLabel: make(map[string]Code, len(table)),
	}

	nameCount := make(map[string]int, len(table))
	for code, name := range table {
		c.names[Code(strings.ToLower(code))] = name
		nameCount[strings.ToLower(name)]++
	}

	for code, name := range c.names {
		label := name
		if nameCount[strings.ToLower(name)] > 1 {
			label = fmt.Sprintf("%s (%s)", name, code)
		}
		c.entries = append(c.entries, Entry{Code: code, Name: name, Label: label})
	}

	sort.Slice(c.entries, func(i, j int) bool {
		if c.entries[i].Name != c.entries[j].Name {
			return c.entries[i].Name < c.entries[j].Name
		}
		return c.entries[i].Code < c.entries[j].Code
	})

	for _, e := range c.entries {
		c.byLabel[strings.ToLower(e.Label)] = e.Code
		// first code wins for a shared display name
		if _, ok := c.byLabel[strings.ToLower(e.Name)]; !ok {
			c.byLabel[strings.ToLower(e.Name)] = e.Code
		}
	}

	return c
}

// Len returns the number of languages in the catalog.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Contains reports whether code is an exact catalog code.
func (c *Catalog) Contains(code Code) bool {
	_, ok := c.names[code]
	return ok
}

// Name returns the display name of code, or "" when unknown.
func (c *Catalog) Name(code Code) string {
	return c.names[code]
}

// Lookup resolves a language code. Matching is case-insensitive and falls
// back to BCP 47 parsing, so "EN-us" resolves to "en".
func (c *Catalog) Lookup(code string) (Code, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return "", false
	}
	if c.Contains(Code(code)) {
		return Code(code), true
	}

	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	if full := Code(strings.ToLower(tag.String())); c.Contains(full) {
		return full, true
	}
	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	if b := Code(base.String()); c.Contains(b) {
		return b, true
	}
	return "", false
}

// Resolve accepts either a language code or a display name ("French").
func (c *Catalog) Resolve(input string) (Code, error) {
	if code, ok := c.Lookup(input); ok {
		return code, nil
	}
	if code, ok := c.byLabel[strings.ToLower(strings.TrimSpace(input))]; ok {
		return code, nil
	}
	return "", fmt.Errorf("unknown language %q", input)
}

// Entries returns the catalog sorted by display name.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Labels returns the unique display labels in dropdown order.
func (c *Catalog) Labels() []string {
	labels := make([]string, len(c.entries))
	for i, e := range c.entries {
		labels[i] = e.Label
	}
	return labels
}

// Label returns the dropdown label for code.
func (c *Catalog) Label(code Code) string {
	for _, e := range c.entries {
		if e.Code == code {
			return e.Label
		}
	}
	return ""
}
