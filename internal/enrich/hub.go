package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	hubBaseURL        = "https://api-inference.huggingface.co/models/"
	hubMaxInputChars  = 500
	hubDefaultTimeout = 8 * time.Second
)

// HubProvider calls one hosted inference model over HTTP. Hosted models cold
// start and rate limit freely, so a short timeout keeps the fallback chain
// moving.
type HubProvider struct {
	client  *http.Client
	token   string
	model   string
	baseURL string
}

type hubRequest struct {
	Inputs     string        `json:"inputs"`
	Parameters hubParameters `json:"parameters"`
}

type hubParameters struct {
	MaxLength   int     `json:"max_length"`
	Temperature float64 `json:"temperature"`
	DoSample    bool    `json:"do_sample"`
}

type hubResponseItem struct {
	GeneratedText string `json:"generated_text"`
	SummaryText   string `json:"summary_text"`
}

func NewHubProvider(token, model, baseURL string, timeout time.Duration) *HubProvider {
	if timeout <= 0 {
		timeout = hubDefaultTimeout
	}
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = hubBaseURL
	} else if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	return &HubProvider{
		client: &http.Client{
			Timeout: timeout,
		},
		token:   token,
		model:   model,
		baseURL: endpoint,
	}
}

func (p *HubProvider) Name() string {
	return "hub:" + p.model
}

func (p *HubProvider) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(p.token) == "" {
		return "", fmt.Errorf("hub token is required")
	}

	inputs := prompt
	if len(inputs) > hubMaxInputChars {
		inputs = inputs[:hubMaxInputChars]
	}
	body, err := json.Marshal(hubRequest{
		Inputs: inputs,
		Parameters: hubParameters{
			MaxLength:   200,
			Temperature: 0.6,
			DoSample:    true,
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+p.model, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+p.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("model %s request failed (%d): %s", p.model, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed []hubResponseItem
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed) == 0 {
		return "", fmt.Errorf("model %s returned no candidates", p.model)
	}
	text := parsed[0].GeneratedText
	if strings.TrimSpace(text) == "" {
		text = parsed[0].SummaryText
	}
	return cleanGeneratedOutput(text), nil
}
