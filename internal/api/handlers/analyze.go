package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"finguard/internal/domain/models"
	"finguard/internal/domain/services"
	"finguard/pkg/logger"
)

// AnalyzeHandler handles text risk-analysis endpoints
type AnalyzeHandler struct {
	analyzer *services.Analyzer
	logger   *logger.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(analyzer *services.Analyzer, log *logger.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		logger:   log.WithComponent("analyze-handler"),
	}
}

// AnalyzeRequest is the request body for text analysis. The nested content
// block mirrors what the browser extension sends; the flat fields win when
// both are present.
type AnalyzeRequest struct {
	Text          string `json:"text"`
	Author        string `json:"author,omitempty"`
	FollowerCount *int   `json:"follower_count,omitempty"`
	URL           string `json:"url,omitempty"`
	Content       *struct {
		Text  string `json:"text"`
		Title string `json:"title"`
	} `json:"content,omitempty"`
}

// AnalyzeBatchRequest is the request body for batch analysis
type AnalyzeBatchRequest struct {
	Items []AnalyzeRequest `json:"items"`
}

func (r *AnalyzeRequest) toModel() *models.AnalysisRequest {
	req := &models.AnalysisRequest{
		ID:            uuid.New(),
		Text:          r.Text,
		Author:        r.Author,
		FollowerCount: r.FollowerCount,
		URL:           r.URL,
	}
	if r.Content != nil {
		if req.Text == "" {
			req.Text = r.Content.Text
		}
		if req.Author == "" {
			req.Author = r.Content.Title
		}
	}
	return req
}

// Analyze handles POST /api/v1/analyze - scores a single text.
// Empty text is not an error: it yields a zero-score report.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result := h.analyzer.Analyze(r.Context(), req.toModel())

	h.logger.Info().
		Int("scam_risk", result.ScamRisk).
		Str("severity", string(result.Severity)).
		Int("warnings", len(result.Warnings)).
		Msg("text analyzed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// AnalyzeBatch handles POST /api/v1/analyze/batch - scores multiple texts
func (h *AnalyzeHandler) AnalyzeBatch(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug().Err(err).Msg("invalid request body")
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if len(req.Items) == 0 {
		http.Error(w, "At least one item is required", http.StatusBadRequest)
		return
	}
	if len(req.Items) > 100 {
		http.Error(w, "Maximum 100 items per batch", http.StatusBadRequest)
		return
	}

	requests := make([]*models.AnalysisRequest, len(req.Items))
	for i := range req.Items {
		requests[i] = req.Items[i].toModel()
	}

	results := h.analyzer.AnalyzeBatch(r.Context(), requests)

	h.logger.Info().Int("items", len(results)).Msg("batch analyzed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(struct {
		Results []*models.AnalysisResult `json:"results"`
	}{Results: results})
}
