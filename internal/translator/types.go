package translator

import (
	"context"
	"time"
)

// ServiceConfig carries per-call provider settings.
type ServiceConfig struct {
	Credentials string `mapstructure:"credentials" json:"credentials"`
	APIKey      string `mapstructure:"api_key" json:"api_key"`
	ProjectID   string `mapstructure:"project_id" json:"project_id"`
	BaseURL     string `mapstructure:"base_url" json:"base_url"`
}

type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

type ServiceResult struct {
	ServiceName    string            `json:"service_name"`
	TranslatedText string            `json:"translated_text"`
	Confidence     float64           `json:"confidence"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	Latency        time.Duration     `json:"latency"`
	Error          string            `json:"error,omitempty"`
}

// Service is an external translation provider. Translate makes exactly one
// attempt; callers decide whether to try again.
type Service interface {
	Name() string
	Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error)
	IsAvailable(ctx context.Context) error
	SupportedLanguages(ctx context.Context) ([]string, error)
}
