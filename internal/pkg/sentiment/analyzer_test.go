package sentiment

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/course_comment_server/config"
)

func TestNew_Lexicon(t *testing.T) {
	a, err := New(&config.SentimentConfig{Provider: "lexicon"}, nil)
	require.NoError(t, err)
	assert.Equal(t, ProviderLexicon, a.Name())

	a, err = New(&config.SentimentConfig{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &LexiconAnalyzer{}, a)
}

func TestNew_HTTP(t *testing.T) {
	a, err := New(&config.SentimentConfig{
		Provider: "http",
		Endpoint: "http://localhost:9000/score",
		Timeout:  time.Second,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, ProviderHTTP, a.Name())
}

func TestNew_HTTPMissingEndpoint(t *testing.T) {
	_, err := New(&config.SentimentConfig{Provider: "http"}, nil)
	assert.Error(t, err)
}

func TestNew_Unsupported(t *testing.T) {
	_, err := New(&config.SentimentConfig{Provider: "snownlp"}, nil)
	assert.Error(t, err)
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 0.8576, Round4(0.857649))
	assert.Equal(t, 0.5, Round4(0.5))
	assert.Equal(t, 1.0, Round4(0.99999))
	assert.Equal(t, 0.0, Round4(0.00004))
}

func TestValidScore(t *testing.T) {
	assert.True(t, ValidScore(0))
	assert.True(t, ValidScore(1))
	assert.True(t, ValidScore(0.5))
	assert.False(t, ValidScore(-0.01))
	assert.False(t, ValidScore(1.01))
	assert.False(t, ValidScore(math.NaN()))
}
