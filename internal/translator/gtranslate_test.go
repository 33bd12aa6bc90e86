package translator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bregydoc/gtranslate"
)

func TestGTranslateService_Translate_Success(t *testing.T) {
	svc := &GTranslateService{
		translate: func(text string, params gtranslate.TranslationParams) (string, error) {
			if text != "hello" || params.From != "en" || params.To != "fr" {
				t.Errorf("unexpected call: %q %+v", text, params)
			}
			if params.Tries != 1 {
				t.Errorf("expected a single try, got %d", params.Tries)
			}
			return "Bonjour", nil
		},
	}

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "hello", SourceLang: "en", TargetLang: "fr"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TranslatedText != "Bonjour" {
		t.Errorf("expected 'Bonjour', got %q", result.TranslatedText)
	}
	if result.ServiceName != "gtranslate" {
		t.Errorf("expected 'gtranslate', got %q", result.ServiceName)
	}
}

func TestGTranslateService_Translate_Error(t *testing.T) {
	svc := &GTranslateService{
		translate: func(string, gtranslate.TranslationParams) (string, error) {
			return "", errors.New("429 Too Many Requests")
		},
	}

	result, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "hello", SourceLang: "en", TargetLang: "fr"})
	if err == nil || err.Error() != "429 Too Many Requests" {
		t.Errorf("expected provider error passed through, got %v", err)
	}
	if result.Error != "429 Too Many Requests" {
		t.Errorf("expected error in result, got %q", result.Error)
	}
}

func TestGTranslateService_Translate_Empty(t *testing.T) {
	svc := &GTranslateService{
		translate: func(string, gtranslate.TranslationParams) (string, error) { return "", nil },
	}

	if _, err := svc.Translate(context.Background(), ServiceConfig{}, TranslateRequest{Text: "hello", SourceLang: "en", TargetLang: "fr"}); err == nil {
		t.Error("expected error for empty response")
	}
}

func TestGTranslateService_Translate_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	svc := &GTranslateService{
		translate: func(string, gtranslate.TranslationParams) (string, error) {
			<-release
			return "late", nil
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := svc.Translate(ctx, ServiceConfig{}, TranslateRequest{Text: "hello", SourceLang: "en", TargetLang: "fr"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}
}

func TestGTranslateService_SupportedLanguages(t *testing.T) {
	langs, err := NewGTranslateService().SupportedLanguages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(langs) < 100 {
		t.Errorf("expected the full catalog, got %d languages", len(langs))
	}
}
