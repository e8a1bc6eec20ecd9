package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// Hinter is the optional external path the inference engine consults.
// Implementations must never panic across this boundary: every failure
// collapses to ok=false and the caller falls back to the rule path.
type Hinter interface {
	Hint(ctx context.Context, text string) (priority int, ok bool)
}

const (
	// DefaultTimeout bounds the single remote attempt. No retries —
	// one shot, then immediate fallback.
	DefaultTimeout = 3 * time.Second

	// minConfidence is the score below which a returned label is
	// ignored and the neutral hint is used instead.
	minConfidence = 0.6

	maxResponseBytes = 1 << 16
)

// Client calls a hosted 3-class sentiment model over HTTP and maps its
// label to a coarse priority hint: a negative read on the task text
// suggests stress/urgency, a positive one suggests it can wait.
type Client struct {
	URL     string
	Token   string
	Timeout time.Duration

	// HTTPClient overrides the transport in tests. nil means a
	// dedicated client with Timeout applied.
	HTTPClient *http.Client
}

// New builds a sentiment client. An empty token disables nothing here —
// the caller decides whether to wire the client at all.
func New(url, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{URL: url, Token: token, Timeout: timeout}
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Hint issues one classification call and maps the top label to a
// priority hint (negative→4, neutral→3, positive→2). Any transport
// error, non-2xx status, or payload shape deviation returns ok=false;
// errors never propagate out of this boundary.
func (c *Client) Hint(ctx context.Context, text string) (int, bool) {
	if c == nil || c.URL == "" {
		return 0, false
	}

	body, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return 0, false
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return 0, false
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: c.Timeout}
	}

	res, err := httpClient.Do(req)
	if err != nil {
		return 0, false
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return 0, false
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBytes))
	if err != nil {
		return 0, false
	}

	top, ok := parseTopLabel(raw)
	if !ok {
		return 0, false
	}

	return hintFromLabel(top), true
}

// parseTopLabel accepts the two shapes the hosted endpoint is known to
// return: [[{label,score},...]] and [{label,score},...]. Anything else
// is a failure.
func parseTopLabel(raw []byte) (labelScore, bool) {
	var nested [][]labelScore
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 && len(nested[0]) > 0 {
		return topScored(nested[0]), true
	}

	var flat []labelScore
	if err := json.Unmarshal(raw, &flat); err == nil && len(flat) > 0 {
		return topScored(flat), true
	}

	return labelScore{}, false
}

func topScored(entries []labelScore) labelScore {
	top := entries[0]
	for _, e := range entries[1:] {
		if e.Score > top.Score {
			top = e
		}
	}
	return top
}

// hintFromLabel maps sentiment to a coarse priority. Low-confidence
// labels read as neutral.
func hintFromLabel(top labelScore) int {
	if top.Score <= minConfidence {
		return 3
	}
	switch strings.ToLower(top.Label) {
	case "negative", "label_0":
		return 4
	case "positive", "label_2":
		return 2
	default:
		return 3
	}
}
