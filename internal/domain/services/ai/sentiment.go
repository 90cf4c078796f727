package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"finguard/pkg/logger"
)

// SentimentLabel is the classifier's verdict on a piece of text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "POSITIVE"
	SentimentNegative SentimentLabel = "NEGATIVE"
	SentimentNeutral  SentimentLabel = "NEUTRAL"
)

// Sentiment is one classification: a label plus the model's confidence.
type Sentiment struct {
	Label SentimentLabel `json:"label"`
	Score float64        `json:"score"`
}

// Classifier classifies the sentiment of financial text. Implementations
// may fail; callers treat any failure as a missing signal.
type Classifier interface {
	Classify(ctx context.Context, text string) (Sentiment, error)
}

// InferenceConfig holds configuration for the hosted-inference classifier.
type InferenceConfig struct {
	APIURL  string
	APIKey  string
	Timeout time.Duration
}

// InferenceClassifier calls a hosted sentiment-analysis inference endpoint
// (HuggingFace-style: POST {"inputs": text} -> [[{"label","score"}]]).
// It is constructed once at startup and reused for all requests.
type InferenceClassifier struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewInferenceClassifier creates a classifier client.
func NewInferenceClassifier(cfg InferenceConfig, log *logger.Logger) *InferenceClassifier {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	return &InferenceClassifier{
		apiURL: cfg.APIURL,
		apiKey: cfg.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log.WithComponent("sentiment-classifier"),
	}
}

// Classify sends the text to the inference endpoint and returns the top
// label. The HTTP client timeout bounds the call.
func (c *InferenceClassifier) Classify(ctx context.Context, text string) (Sentiment, error) {
	if c.apiURL == "" {
		return Sentiment{}, fmt.Errorf("sentiment API URL not configured")
	}

	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return Sentiment{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return Sentiment{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Sentiment{}, fmt.Errorf("sentiment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Sentiment{}, fmt.Errorf("sentiment API returned status %d", resp.StatusCode)
	}

	var results [][]Sentiment
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return Sentiment{}, fmt.Errorf("failed to decode sentiment response: %w", err)
	}
	if len(results) == 0 || len(results[0]) == 0 {
		return Sentiment{}, fmt.Errorf("empty sentiment response")
	}

	top := results[0][0]
	top.Label = SentimentLabel(strings.ToUpper(string(top.Label)))
	return top, nil
}
