package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rpupo63/bilingual-portfolio-backend/config"
	"github.com/rpupo63/bilingual-portfolio-backend/errs"
)

// Translator converts text between languages. Implementations are expected
// to be synchronous with no retry; a timeout is a failure for the request
// that triggered it.
type Translator interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

const defaultTranslateBaseURL = "https://translate.googleapis.com"

// GoogleTranslator calls the public Google translate endpoint, the same
// service the legacy site used for its Arabic-to-English content pipeline.
type GoogleTranslator struct {
	baseURL string
	client  *http.Client
}

// NewGoogleTranslator builds a translator from configuration.
// Config keys:
//   - TRANSLATE_BASE_URL: override the endpoint (used by tests)
//   - TRANSLATE_TIMEOUT_SECONDS: request timeout, default 15
func NewGoogleTranslator(cfg map[string]string) *GoogleTranslator {
	return &GoogleTranslator{
		baseURL: config.GetString(cfg, "TRANSLATE_BASE_URL", defaultTranslateBaseURL),
		client: &http.Client{
			Timeout: config.GetSeconds(cfg, "TRANSLATE_TIMEOUT_SECONDS", 15*time.Second),
		},
	}
}

// Translate converts text from sourceLang to targetLang. Empty input
// short-circuits to empty output without a network call, so optional fields
// like the detailed description never cost a round trip.
func (t *GoogleTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	endpoint := fmt.Sprintf("%s/translate_a/single?%s", t.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create translate request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrTranslation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: translate endpoint returned status %d", errs.ErrTranslation, resp.StatusCode)
	}

	// The endpoint answers with nested arrays: the first element holds one
	// [translated, original, ...] entry per sentence segment.
	var payload []any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decoding response: %v", errs.ErrTranslation, err)
	}

	translated, err := joinSegments(payload)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrTranslation, err)
	}
	return translated, nil
}

func joinSegments(payload []any) (string, error) {
	if len(payload) == 0 {
		return "", fmt.Errorf("empty response payload")
	}

	segments, ok := payload[0].([]any)
	if !ok {
		return "", fmt.Errorf("unexpected response shape")
	}

	var sb strings.Builder
	for _, segment := range segments {
		parts, ok := segment.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if chunk, ok := parts[0].(string); ok {
			sb.WriteString(chunk)
		}
	}
	return sb.String(), nil
}
