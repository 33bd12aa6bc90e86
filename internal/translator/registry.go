package translator

import (
	"fmt"
	"sort"
	"strings"
)

// Options holds the provider credentials known at startup.
type Options struct {
	GoogleCredentials string
	MyMemoryEmail     string
	SystranKey        string
}

var factories = map[string]func(Options) Service{
	"gtranslate": func(Options) Service { return NewGTranslateService() },
	"google":     func(o Options) Service { return NewGoogleService(o.GoogleCredentials) },
	"mymemory":   func(o Options) Service { return NewMyMemoryService(o.MyMemoryEmail) },
	"systran":    func(o Options) Service { return NewSystranService(o.SystranKey) },
}

// New returns the provider registered under name.
func New(name string, opts Options) (Service, error) {
	factory, ok := factories[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown translation service %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return factory(opts), nil
}

// Names lists the registered providers in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
