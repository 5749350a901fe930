package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// DefaultHFEndpoint is the hosted summarization model used when the config
// does not override it.
const DefaultHFEndpoint = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

// MaxHFInputChars caps how much of the document is sent to the hosted
// summarizer. Text beyond the cap never appears in the outbound payload, so
// the summary may omit content past it; Result.Truncated reports when this
// happened.
const MaxHFInputChars = 3000

// ErrModelLoading marks the transient 503 "model loading" condition. It is
// retried once; if it persists, the caller should suggest trying again later.
var ErrModelLoading = errors.New("summarization model is loading")

// HuggingFace sends a truncated prefix of the document text to a hosted
// summarization endpoint using a service-wide token. An empty token is
// allowed at construction time and surfaces later as request failures.
type HuggingFace struct {
	endpoint string
	token    string
	client   *http.Client
}

func NewHuggingFace(endpoint, token string, timeout time.Duration) *HuggingFace {
	if endpoint == "" {
		endpoint = DefaultHFEndpoint
	}
	return &HuggingFace{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: timeout},
	}
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
	Options    hfOptions    `json:"options"`
}

type hfParameters struct {
	MaxLength int  `json:"max_length"`
	DoSample  bool `json:"do_sample"`
}

type hfOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

func (h *HuggingFace) Summarize(ctx context.Context, req Request) (*Result, error) {
	input := req.Text
	truncated := false
	// the cap counts characters, not bytes, so a multi-byte rune at the
	// boundary is never split
	if runes := []rune(input); len(runes) > MaxHFInputChars {
		input = string(runes[:MaxHFInputChars])
		truncated = true
	}

	body, err := json.Marshal(hfRequest{
		Inputs:     input,
		Parameters: hfParameters{MaxLength: 200, DoSample: false},
		Options:    hfOptions{WaitForModel: true},
	})
	if err != nil {
		return nil, err
	}

	var summary string

	// One bounded retry, for the transient 503 condition only.
	backoff := retry.WithMaxRetries(1, retry.NewConstant(2*time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		summary, err = h.doRequest(ctx, body)
		if errors.Is(err, ErrModelLoading) {
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return &Result{Summary: summary, Truncated: truncated}, nil
}

func (h *HuggingFace) doRequest(ctx context.Context, body []byte) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("hosted summarizer unreachable: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode == http.StatusServiceUnavailable {
		return "", ErrModelLoading
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("hosted summarizer error %d: %s", resp.StatusCode, respBody)
	}

	return parseHFResponse(respBody)
}

// parseHFResponse accepts either a list of objects or a single object
// carrying a summary_text field.
func parseHFResponse(body []byte) (string, error) {
	var list []hfSummary
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].SummaryText != "" {
		return list[0].SummaryText, nil
	}

	var single hfSummary
	if err := json.Unmarshal(body, &single); err == nil && single.SummaryText != "" {
		return single.SummaryText, nil
	}

	return "", fmt.Errorf("unexpected summarizer response shape: %s", body)
}
