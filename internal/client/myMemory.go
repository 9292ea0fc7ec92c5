package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DanRulev/ordkort.git/internal/config"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/goccy/go-json"
)

type MyMemoryAPI struct {
	baseURL    string
	email      string
	httpClient *http.Client
}

func NewMyMemoryAPI(cfg config.TranslatorConfig) *MyMemoryAPI {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &MyMemoryAPI{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		email:      cfg.Email,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Translate translates text from source to target language ("en", "da").
// A service-level failure is reported in the result's Error field.
func (m *MyMemoryAPI) Translate(ctx context.Context, text, source, target string) (models.MyMemoryTranslationResult, error) {
	q := url.Values{}
	q.Set("q", text)
	q.Set("langpair", source+"|"+target)
	if m.email != "" {
		q.Set("de", m.email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+"/get?"+q.Encode(), nil)
	if err != nil {
		return models.MyMemoryTranslationResult{}, err
	}
	resp, err := m.httpClient.Do(req)
	if err != nil {
		return models.MyMemoryTranslationResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.MyMemoryTranslationResult{}, fmt.Errorf("mymemory status %d", resp.StatusCode)
	}

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.MyMemoryTranslationResult{}, err
	}

	if data.ResponseBody.ResponseStatus != http.StatusOK {
		return models.MyMemoryTranslationResult{
			Error: data.ResponseBody.ResponseDetails,
		}, nil
	}

	var alternatives []string
	for _, m := range data.Matches {
		if m.Translation != "" && m.Translation != data.ResponseBody.TranslatedText {
			alternatives = append(alternatives, m.Translation)
		}
	}

	return models.MyMemoryTranslationResult{
		Text:         strings.TrimSpace(data.ResponseBody.TranslatedText),
		Match:        data.ResponseBody.Match,
		Source:       source,
		Target:       target,
		Reliable:     data.ResponseBody.Match >= 0.8,
		Alternatives: alternatives,
	}, nil
}
