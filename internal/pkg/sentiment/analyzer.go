package sentiment

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/qs3c/course_comment_server/config"
	"github.com/qs3c/course_comment_server/internal/metrics"
)

const (
	ProviderLexicon = "lexicon"
	ProviderHTTP    = "http"
)

var ErrScoreOutOfRange = errors.New("sentiment score out of range [0,1]")

// Analyzer 情感分析器，返回 [0,1] 的得分，越高越正面
type Analyzer interface {
	Score(ctx context.Context, text string) (float64, error)
	Name() string
}

// New 按配置创建情感分析器
func New(cfg *config.SentimentConfig, m *metrics.Metrics) (Analyzer, error) {
	switch cfg.Provider {
	case "", ProviderLexicon:
		a, err := NewLexiconAnalyzer()
		if err != nil {
			return nil, err
		}
		return a, nil
	case ProviderHTTP:
		if cfg.Endpoint == "" {
			return nil, fmt.Errorf("sentiment.endpoint is required for provider %q", ProviderHTTP)
		}
		return NewHTTPAnalyzer(cfg.Endpoint, cfg.APIKey, cfg.Timeout, m), nil
	default:
		return nil, fmt.Errorf("unsupported sentiment provider %q", cfg.Provider)
	}
}

// Round4 保留 4 位小数
func Round4(x float64) float64 {
	return math.Round(x*10000) / 10000
}

// ValidScore 检查得分是否为 [0,1] 内的有效数值
func ValidScore(x float64) bool {
	return !math.IsNaN(x) && x >= 0 && x <= 1
}
