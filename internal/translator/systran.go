package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"

	"github.com/valpere/lingobuddy/internal/postprocess"
)

const (
	systranHost = "api-systran-systran-translation-v1.p.rapidapi.com"
	systranURL  = "https://" + systranHost + "/translation/text/translate"
)

// SystranService calls Systran through RapidAPI and needs an API key.
type SystranService struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewSystranService(apiKey string) *SystranService {
	return &SystranService{
		apiKey:   apiKey,
		endpoint: systranURL,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SystranService) Name() string {
	return "systran"
}

func (s *SystranService) Translate(ctx context.Context, cfg ServiceConfig, req TranslateRequest) (*ServiceResult, error) {
	result := &ServiceResult{ServiceName: s.Name()}
	start := time.Now()
	defer func() { result.Latency = time.Since(start) }()

	if s.apiKey == "" && cfg.APIKey == "" {
		result.Error = "Systran API key required"
		return result, fmt.Errorf("Systran API key required")
	}

	apiKey := s.apiKey
	if apiKey == "" {
		apiKey = cfg.APIKey
	}

	endpoint := s.endpoint
	if cfg.BaseURL != "" {
		endpoint = cfg.BaseURL
	}

	systranReq := struct {
		Text   []string `json:"text"`
		Source string   `json:"source"`
		Target string   `json:"target"`
		Format string   `json:"format"`
	}{
		Text:   []string{req.Text},
		Source: req.SourceLang,
		Target: req.TargetLang,
		Format: "text",
	}

	jsonData, err := json.Marshal(systranReq)
	if err != nil {
		result.Error = fmt.Sprintf("failed to marshal request: %v", err)
		return result, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonData))
	if err != nil {
		result.Error = fmt.Sprintf("failed to create request: %v", err)
		return result, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-RapidAPI-Key", apiKey)
	httpReq.Header.Set("X-RapidAPI-Host", systranHost)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		return result, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		result.Error = fmt.Sprintf("API returned status %d: %s", resp.StatusCode, string(body))
		return result, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		result.Error = fmt.Sprintf("failed to read response: %v", err)
		return result, err
	}

	output := gjson.GetBytes(body, "outputs.0.output").String()
	if output == "" {
		if msg := gjson.GetBytes(body, "error.message").String(); msg != "" {
			result.Error = msg
			return result, errors.New(msg)
		}
		result.Error = "empty translation response"
		return result, fmt.Errorf("empty translation response")
	}

	result.TranslatedText = postprocess.Clean(output)
	result.Confidence = 1.0

	return result, nil
}

func (s *SystranService) IsAvailable(ctx context.Context) error {
	if s.apiKey == "" {
		return fmt.Errorf("Systran API key not configured")
	}
	return nil
}

func (s *SystranService) SupportedLanguages(ctx context.Context) ([]string, error) {
	return []string{"en", "fr", "es", "de", "it", "pt", "ru", "zh", "ja", "ko", "ar"}, nil
}
