package services

import (
	"context"
	"sync"
	"time"

	"finguard/internal/domain/models"
	"finguard/pkg/logger"
)

// Analyzer orchestrates the signal detectors into one composite risk
// report. No condition inside the engine is fatal: Analyze always returns
// a well-formed result.
type Analyzer struct {
	patterns    *ScamPatternDetector
	blacklist   *BlacklistDetector
	sentiment   *SentimentSkewDetector
	credibility *CredibilityDetector
	aggregator  *RiskAggregator
	explainer   *ExplanationBuilder
	deepfake    *DeepfakeStub
	confidence  float64
	logger      *logger.Logger

	stats   AnalyzerStats
	statsMu sync.RWMutex
}

// AnalyzerStats tracks what the analyzer has seen since startup.
type AnalyzerStats struct {
	TotalAnalyzed int64                     `json:"total_analyzed"`
	BySeverity    map[models.Severity]int64 `json:"by_severity"`
	AvgScore      float64                   `json:"avg_score"`
}

// AnalyzerDeps holds the detectors the analyzer composes.
type AnalyzerDeps struct {
	Patterns    *ScamPatternDetector
	Blacklist   *BlacklistDetector
	Sentiment   *SentimentSkewDetector
	Credibility *CredibilityDetector
	Aggregator  *RiskAggregator
	Explainer   *ExplanationBuilder
	Deepfake    *DeepfakeStub
	Confidence  float64
}

// NewAnalyzer creates the analyzer.
func NewAnalyzer(deps AnalyzerDeps, log *logger.Logger) *Analyzer {
	return &Analyzer{
		patterns:    deps.Patterns,
		blacklist:   deps.Blacklist,
		sentiment:   deps.Sentiment,
		credibility: deps.Credibility,
		aggregator:  deps.Aggregator,
		explainer:   deps.Explainer,
		deepfake:    deps.Deepfake,
		confidence:  deps.Confidence,
		logger:      log.WithComponent("analyzer"),
		stats: AnalyzerStats{
			BySeverity: make(map[models.Severity]int64),
		},
	}
}

// Analyze runs all detectors over the request and aggregates their
// contributions. Identical input always produces an identical report.
func (a *Analyzer) Analyze(ctx context.Context, req *models.AnalysisRequest) *models.AnalysisResult {
	scan := a.patterns.Detect(req.Text)
	listed, blacklistBonus := a.blacklist.Detect(req.Author)
	sentimentBonus := a.sentiment.Detect(ctx, req.Text)

	score := a.aggregator.Aggregate(scan.Score, blacklistBonus, sentimentBonus)
	severity := a.aggregator.Severity(score)

	result := &models.AnalysisResult{
		RequestID:   req.ID,
		ScamRisk:    score,
		Severity:    severity,
		ScamMessage: a.aggregator.Message(score),
		Warnings:    a.explainer.Build(scan.Detections, listed),
		Confidence:  a.confidence,
		Credibility: a.credibility.Assess(req.Author, req.FollowerCount),
		Deepfake:    a.deepfake.Assess(),
		URL:         req.URL,
		Timestamp:   time.Now().UTC(),
	}

	a.updateStats(result)
	return result
}

// Report builds just the risk report portion of an analysis, without the
// credibility and deepfake sections.
func (a *Analyzer) Report(ctx context.Context, text, author string) *models.RiskReport {
	scan := a.patterns.Detect(text)
	listed, blacklistBonus := a.blacklist.Detect(author)
	sentimentBonus := a.sentiment.Detect(ctx, text)

	score := a.aggregator.Aggregate(scan.Score, blacklistBonus, sentimentBonus)
	return &models.RiskReport{
		Score:      score,
		Severity:   a.aggregator.Severity(score),
		Message:    a.aggregator.Message(score),
		Warnings:   a.explainer.Build(scan.Detections, listed),
		Confidence: a.confidence,
	}
}

// AnalyzeBatch analyzes multiple requests with bounded concurrency.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, requests []*models.AnalysisRequest) []*models.AnalysisResult {
	results := make([]*models.AnalysisResult, len(requests))

	const maxConcurrency = 5
	sem := make(chan struct{}, maxConcurrency)
	var wg sync.WaitGroup

	for i, req := range requests {
		wg.Add(1)
		go func(idx int, r *models.AnalysisRequest) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[idx] = a.Analyze(ctx, r)
		}(i, req)
	}

	wg.Wait()
	return results
}

// Stats returns a copy of the running statistics.
func (a *Analyzer) Stats() AnalyzerStats {
	a.statsMu.RLock()
	defer a.statsMu.RUnlock()

	stats := AnalyzerStats{
		TotalAnalyzed: a.stats.TotalAnalyzed,
		AvgScore:      a.stats.AvgScore,
		BySeverity:    make(map[models.Severity]int64, len(a.stats.BySeverity)),
	}
	for k, v := range a.stats.BySeverity {
		stats.BySeverity[k] = v
	}
	return stats
}

func (a *Analyzer) updateStats(result *models.AnalysisResult) {
	a.statsMu.Lock()
	defer a.statsMu.Unlock()

	a.stats.TotalAnalyzed++
	a.stats.BySeverity[result.Severity]++
	a.stats.AvgScore = (a.stats.AvgScore*float64(a.stats.TotalAnalyzed-1) + float64(result.ScamRisk)) / float64(a.stats.TotalAnalyzed)
}
