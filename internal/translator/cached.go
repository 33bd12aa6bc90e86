package translator

import (
	"context"
	"fmt"
	"time"
)

// Memory is a translation memory keyed by source text and language pair.
type Memory interface {
	GetCachedTranslation(ctx context.Context, sourceText, sourceLang, targetLang string) (string, bool, error)
	SaveToMemory(ctx context.Context, sourceText, sourceLang, targetLang, finalText, serviceUsed string) error
}

// CachedService answers from a translation memory before calling the wrapped
// service, and stores every successful answer. Memory failures never fail a
// translation; a failed save is reported in Metadata["cache_error"].
type CachedService struct {
	next   Service
	memory Memory
}

func NewCachedService(next Service, memory Memory) *CachedService {
	return &CachedService{next: next, memory: memory}
}

func (s *CachedService) Name() string {
	return s.next.Name()
}

func (s *CachedService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	start := time.Now()

	if cached, found, err := s.memory.GetCachedTranslation(ctx, req.Text, req.SourceLang, req.TargetLang); err == nil && found {
		return &ServiceResult{
			ServiceName:    s.next.Name(),
			TranslatedText: cached,
			Confidence:     1.0,
			Metadata:       map[string]string{"cache": "hit"},
			Latency:        time.Since(start),
		}, nil
	}

	result, err := s.next.Translate(ctx, cfg, req)
	if err != nil {
		return result, err
	}

	if err := s.memory.SaveToMemory(ctx, req.Text, req.SourceLang, req.TargetLang, result.TranslatedText, result.ServiceName); err != nil {
		if result.Metadata == nil {
			result.Metadata = map[string]string{}
		}
		result.Metadata["cache_error"] = fmt.Sprintf("failed to save to memory: %v", err)
	}
	return result, nil
}

func (s *CachedService) IsAvailable(ctx context.Context) error {
	return s.next.IsAvailable(ctx)
}

func (s *CachedService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return s.next.SupportedLanguages(ctx)
}
