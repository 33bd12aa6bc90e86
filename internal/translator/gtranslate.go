package translator

import (
	"context"
	"fmt"
	"time"

	"github.com/bregydoc/gtranslate"

	"github.com/valpere/lingobuddy/internal/language"
)

// GTranslateService talks to the free Google Translate web endpoint. It needs
// no credentials and serves the full default language catalog.
type GTranslateService struct {
	translate func(text string, params gtranslate.TranslationParams) (string, error)
}

func NewGTranslateService() *GTranslateService {
	return &GTranslateService{translate: gtranslate.TranslateWithParams}
}

func (s *GTranslateService) Name() string {
	return "gtranslate"
}

func (s *GTranslateService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	type reply struct {
		text string
		err  error
	}
	done := make(chan reply, 1)

	// gtranslate has no context support; an abandoned call finishes in the background.
	go func() {
		text, err := s.translate(req.Text, gtranslate.TranslationParams{
			From:  req.SourceLang,
			To:    req.TargetLang,
			Tries: 1,
		})
		done <- reply{text: text, err: err}
	}()

	select {
	case <-ctx.Done():
		result.Error = ctx.Err().Error()
		return result, ctx.Err()
	case r := <-done:
		if r.err != nil {
			result.Error = r.err.Error()
			return result, r.err
		}
		if r.text == "" {
			result.Error = "empty translation response"
			return result, fmt.Errorf("empty translation response")
		}
		result.TranslatedText = r.text
		result.Confidence = 1.0
		return result, nil
	}
}

func (s *GTranslateService) IsAvailable(ctx context.Context) error {
	return nil
}

func (s *GTranslateService) SupportedLanguages(ctx context.Context) ([]string, error) {
	entries := language.Default().Entries()
	codes := make([]string, len(entries))
	for i, e := range entries {
		codes[i] = e.Code.String()
	}
	return codes, nil
}
