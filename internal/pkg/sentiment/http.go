package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/qs3c/course_comment_server/internal/metrics"
)

const defaultTimeout = 5 * time.Second

type scoreRequest struct {
	Text string `json:"text"`
}

type scoreResponse struct {
	Score *float64 `json:"score"`
}

// HTTPAnalyzer 调用远程情感分析服务
//
// 请求: POST {"text": "..."}，响应: {"score": 0.93}
type HTTPAnalyzer struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	metrics    *metrics.Metrics
}

func NewHTTPAnalyzer(endpoint, apiKey string, timeout time.Duration, m *metrics.Metrics) *HTTPAnalyzer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPAnalyzer{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

func (a *HTTPAnalyzer) Name() string {
	return ProviderHTTP
}

func (a *HTTPAnalyzer) Score(ctx context.Context, text string) (float64, error) {
	start := time.Now()
	score, status, err := a.do(ctx, text)
	a.metrics.RecordScorerCall(ProviderHTTP, status, time.Since(start), err)
	return score, err
}

func (a *HTTPAnalyzer) do(ctx context.Context, text string) (float64, int, error) {
	body, err := json.Marshal(scoreRequest{Text: text})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to marshal score request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create score request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("sentiment service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, resp.StatusCode, fmt.Errorf("sentiment service returned status %d: %s", resp.StatusCode, bytes.TrimSpace(msg))
	}

	var result scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, resp.StatusCode, fmt.Errorf("failed to decode score response: %w", err)
	}
	if result.Score == nil {
		return 0, resp.StatusCode, fmt.Errorf("score response missing score field")
	}
	if !ValidScore(*result.Score) {
		return 0, resp.StatusCode, fmt.Errorf("%w: %v", ErrScoreOutOfRange, *result.Score)
	}

	return *result.Score, resp.StatusCode, nil
}
