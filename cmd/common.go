/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/valpere/lingobuddy/internal/config"
	"github.com/valpere/lingobuddy/internal/language"
	"github.com/valpere/lingobuddy/internal/session"
	"github.com/valpere/lingobuddy/internal/store"
	"github.com/valpere/lingobuddy/internal/translator"
	"github.com/valpere/lingobuddy/internal/validator"
)

// buildService constructs the configured translation service, wrapped with
// the translation memory when caching is enabled. The returned close func
// releases the database.
func buildService(cfg *config.Config) (translator.Service, func() error, error) {
	svc, err := translator.New(cfg.Provider, translator.Options{
		GoogleCredentials: cfg.Google.Credentials,
		MyMemoryEmail:     cfg.MyMemory.Email,
		SystranKey:        cfg.Systran.Key,
	})
	if err != nil {
		return nil, nil, err
	}

	noop := func() error { return nil }
	if !cfg.Cache.Enabled {
		return svc, noop, nil
	}

	db, err := store.New(cfg.Cache.DB)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	log.Debug().Str("db", cfg.Cache.DB).Msg("translation memory enabled")

	return translator.NewCachedService(svc, db), db.Close, nil
}

// newController wires a session controller from the loaded configuration.
func newController(cfg *config.Config) (*session.Controller, func() error, error) {
	svc, closeFn, err := buildService(cfg)
	if err != nil {
		return nil, nil, err
	}

	opts := []session.Option{
		session.WithLogger(log),
		session.WithServiceConfig(translator.ServiceConfig{
			Credentials: cfg.Google.Credentials,
			APIKey:      cfg.Google.APIKey,
			ProjectID:   cfg.Google.Project,
		}),
	}
	if cfg.Check {
		opts = append(opts, session.WithChecker(validator.New()))
	}

	return session.New(svc, opts...), closeFn, nil
}

// resolveLang maps a code or display name to a catalog code. Unknown input is
// passed through lower-cased so the controller reports it as invalid.
func resolveLang(catalog *language.Catalog, input string) language.Code {
	if code, err := catalog.Resolve(input); err == nil {
		return code
	}
	return language.Code(strings.ToLower(strings.TrimSpace(input)))
}

// userMessage is the text shown for a failed request.
func userMessage(err error) string {
	if errors.Is(err, session.ErrInvalidInput) {
		return session.InvalidInputMessage
	}
	return err.Error()
}
