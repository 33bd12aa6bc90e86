package translator

import (
	"context"
	"fmt"
	"time"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// GoogleService uses the Cloud Translation v2 API. Credentials come from the
// service config, falling back to Application Default Credentials.
type GoogleService struct {
	credentials string
}

func NewGoogleService(credentials string) *GoogleService {
	return &GoogleService{credentials: credentials}
}

func (s *GoogleService) Name() string {
	return "google"
}

func (s *GoogleService) clientOptions(cfg ServiceConfig) []option.ClientOption {
	creds := cfg.Credentials
	if creds == "" {
		creds = s.credentials
	}

	var opts []option.ClientOption
	if creds != "" {
		opts = append(opts, option.WithCredentialsFile(creds))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.ProjectID != "" {
		opts = append(opts, option.WithQuotaProject(cfg.ProjectID))
	}
	return opts
}

func (s *GoogleService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	targetTag, err := language.Parse(req.TargetLang)
	if err != nil {
		result.Error = fmt.Sprintf("invalid target language: %v", err)
		return result, fmt.Errorf("invalid target language: %w", err)
	}
	sourceTag, err := language.Parse(req.SourceLang)
	if err != nil {
		result.Error = fmt.Sprintf("invalid source language: %v", err)
		return result, fmt.Errorf("invalid source language: %w", err)
	}

	client, err := translate.NewClient(ctx, s.clientOptions(cfg)...)
	if err != nil {
		result.Error = fmt.Sprintf("failed to create client: %v", err)
		return result, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	translations, err := client.Translate(ctx, []string{req.Text}, targetTag, &translate.Options{
		Source: sourceTag,
		Format: translate.Text,
	})
	if err != nil {
		result.Error = fmt.Sprintf("translation failed: %v", err)
		return result, fmt.Errorf("translation failed: %w", err)
	}

	if len(translations) == 0 {
		result.Error = "no translation returned"
		return result, fmt.Errorf("no translation returned")
	}

	result.TranslatedText = translations[0].Text
	result.Confidence = 1.0

	return result, nil
}

func (s *GoogleService) IsAvailable(ctx context.Context) error {
	return nil
}

// SupportedLanguages asks the API for its language list.
func (s *GoogleService) SupportedLanguages(ctx context.Context) ([]string, error) {
	client, err := translate.NewClient(ctx, s.clientOptions(ServiceConfig{})...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	defer client.Close()

	langs, err := client.SupportedLanguages(ctx, language.English)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages: %w", err)
	}

	codes := make([]string, len(langs))
	for i, l := range langs {
		codes[i] = l.Tag.String()
	}
	return codes, nil
}
