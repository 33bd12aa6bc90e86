// Package session implements the translation session controller: it validates
// a request, asks the provider for exactly one translation and records every
// success in a history that lives as long as the session.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/valpere/lingobuddy/internal/language"
	"github.com/valpere/lingobuddy/internal/translator"
)

// resultPrefix is the label shown in front of a translation.
const resultPrefix = "Translation: "

// Request is one translation request as entered by the user.
type Request struct {
	Text       string
	SourceLang language.Code
	TargetLang language.Code
}

// Result is a successful translation. It is never modified after creation.
type Result struct {
	OriginalText   string
	SourceLang     language.Code
	TargetLang     language.Code
	TranslatedText string
	Service        string
	Latency        time.Duration
}

// HistoryLine formats the result the way it is recorded in the history.
func (r *Result) HistoryLine() string {
	return fmt.Sprintf("%s [%s] => %s [%s]", r.OriginalText, r.SourceLang, r.TranslatedText, r.TargetLang)
}

// Checker reports whether a translated text is written in the target language.
type Checker interface {
	IsValid(translatedText, targetLang string) (bool, error)
}

type Option func(*Controller)

// WithCatalog restricts requests to the languages of c.
func WithCatalog(c *language.Catalog) Option {
	return func(s *Controller) { s.catalog = c }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Controller) { s.log = l.With().Str("component", "session").Logger() }
}

// WithChecker logs a warning whenever a translation does not look like the
// target language. The result is still returned and recorded.
func WithChecker(c Checker) Option {
	return func(s *Controller) { s.checker = c }
}

// WithServiceConfig sets the provider config passed on every call.
func WithServiceConfig(cfg translator.ServiceConfig) Option {
	return func(s *Controller) { s.cfg = cfg }
}

// Controller owns the history and the current result of one session.
type Controller struct {
	service translator.Service
	cfg     translator.ServiceConfig
	catalog *language.Catalog
	checker Checker
	log     zerolog.Logger

	// reqMu keeps a single request in flight so history follows request order.
	reqMu sync.Mutex

	mu      sync.RWMutex
	history []string
	current *Result
}

func New(service translator.Service, opts ...Option) *Controller {
	c := &Controller{
		service: service,
		catalog: language.Default(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the languages the controller accepts.
func (c *Controller) Catalog() *language.Catalog {
	return c.catalog
}

// ServiceName returns the name of the provider in use.
func (c *Controller) ServiceName() string {
	return c.service.Name()
}

// Validate normalises req and checks it without calling the provider.
func (c *Controller) Validate(req Request) (Request, error) {
	req.Text = strings.ToLower(strings.TrimSpace(req.Text))

	switch {
	case req.Text == "":
		return req, &Error{Kind: KindInvalidInput, Op: "translate", Err: errors.New("invalid input: text is empty")}
	case !c.catalog.Contains(req.SourceLang):
		return req, &Error{Kind: KindInvalidInput, Op: "translate", Err: fmt.Errorf("invalid input: unknown source language %q", req.SourceLang)}
	case !c.catalog.Contains(req.TargetLang):
		return req, &Error{Kind: KindInvalidInput, Op: "translate", Err: fmt.Errorf("invalid input: unknown target language %q", req.TargetLang)}
	case req.SourceLang == req.TargetLang:
		return req, &Error{Kind: KindInvalidInput, Op: "translate", Err: errors.New("invalid input: source and target languages are the same")}
	}
	return req, nil
}

// RequestTranslation translates text from src to dst. Input is trimmed and
// lower-cased before it is sent. Invalid input never reaches the provider and
// a failed call leaves the history untouched.
func (c *Controller) RequestTranslation(ctx context.Context, text string, src, dst language.Code) (*Result, error) {
	req, err := c.Validate(Request{Text: text, SourceLang: src, TargetLang: dst})
	if err != nil {
		c.log.Debug().Err(err).Msg("rejected request")
		return nil, err
	}

	c.reqMu.Lock()
	defer c.reqMu.Unlock()

	res, err := c.service.Translate(ctx, c.cfg, translator.TranslateRequest{
		Text:       req.Text,
		SourceLang: req.SourceLang.String(),
		TargetLang: req.TargetLang.String(),
	})
	if err != nil {
		c.log.Debug().Err(err).Str("service", c.service.Name()).Msg("provider call failed")
		return nil, &Error{Kind: KindProvider, Op: "translate", Err: err}
	}
	if res == nil || res.Error != "" {
		msg := "empty provider response"
		if res != nil {
			msg = res.Error
		}
		return nil, &Error{Kind: KindProvider, Op: "translate", Err: errors.New(msg)}
	}

	if msg := res.Metadata["cache_error"]; msg != "" {
		c.log.Warn().Str("service", res.ServiceName).Msg(msg)
	}

	result := &Result{
		OriginalText:   req.Text,
		SourceLang:     req.SourceLang,
		TargetLang:     req.TargetLang,
		TranslatedText: res.TranslatedText,
		Service:        res.ServiceName,
		Latency:        res.Latency,
	}

	if c.checker != nil {
		if ok, cerr := c.checker.IsValid(result.TranslatedText, result.TargetLang.String()); !ok {
			c.log.Warn().Err(cerr).Str("target", result.TargetLang.String()).Msg("translation may not be in the target language")
		}
	}

	c.mu.Lock()
	c.history = append(c.history, result.HistoryLine())
	c.current = result
	c.mu.Unlock()

	c.log.Debug().
		Str("service", result.Service).
		Dur("latency", result.Latency).
		Str("pair", fmt.Sprintf("%s-%s", src, dst)).
		Msg("translated")

	return result, nil
}

// History returns a snapshot of the recorded lines, most recent last.
func (c *Controller) History() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.history))
	copy(out, c.history)
	return out
}

// HistoryText returns the history one line per entry.
func (c *Controller) HistoryText() string {
	return strings.Join(c.History(), "\n")
}

// Current returns the most recent successful result.
func (c *Controller) Current() (*Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current, c.current != nil
}

// ExportResult writes the plain translated text to path, replacing any
// existing file.
func (c *Controller) ExportResult(result *Result, path string) error {
	if result == nil {
		return &Error{Kind: KindIO, Op: "export", Err: errors.New("no translation to save")}
	}
	if path == "" {
		return &Error{Kind: KindIO, Op: "export", Err: errors.New("no destination path")}
	}

	if err := os.WriteFile(path, []byte(result.TranslatedText), 0644); err != nil {
		c.log.Debug().Err(err).Str("path", path).Msg("export failed")
		return &Error{Kind: KindIO, Op: "export", Err: fmt.Errorf("failed to save translation: %w", err)}
	}
	return nil
}

// CopyResultText returns the text to place on the clipboard, with every
// result label prefix removed.
func (c *Controller) CopyResultText(result *Result) string {
	if result == nil {
		return ""
	}
	return strings.ReplaceAll(result.TranslatedText, resultPrefix, "")
}

// DisplayText is the result label shown to the user.
func DisplayText(result *Result) string {
	return resultPrefix + result.TranslatedText
}
