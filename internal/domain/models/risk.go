package models

import (
	"time"

	"github.com/google/uuid"
)

// ScamCategory identifies a known fraud tactic. The set is closed: every
// rule in the catalog belongs to exactly one category.
type ScamCategory string

const (
	CategoryPumpDump        ScamCategory = "pump_dump"
	CategoryUrgency         ScamCategory = "urgency"
	CategoryGuarantees      ScamCategory = "guarantees"
	CategoryInvestmentFraud ScamCategory = "investment_fraud"
)

// Severity is the discrete risk label derived from the composite score.
type Severity string

const (
	SeverityLow       Severity = "LOW"
	SeverityLowMedium Severity = "LOW-MEDIUM"
	SeverityMedium    Severity = "MEDIUM"
	SeverityHigh      Severity = "HIGH"
)

// Detection records one rule that fired during pattern scanning. All
// occurrences are kept as evidence but the rule's weight counts once.
type Detection struct {
	Category ScamCategory `json:"category"`
	Pattern  string       `json:"pattern"`
	Matches  []string     `json:"matches"`
	Weight   int          `json:"weight"`
}

// RiskReport is the bounded composite output of the risk engine.
type RiskReport struct {
	Score      int      `json:"scam_risk"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"scam_message"`
	Warnings   []string `json:"warnings"`
	Confidence float64  `json:"confidence"`
}

// CredibilityAssessment scores an author on a 1-10 scale.
type CredibilityAssessment struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Message string `json:"message"`
}

// DeepfakeAssessment is a static placeholder until video analysis lands.
type DeepfakeAssessment struct {
	Risk    int    `json:"risk"`
	Message string `json:"message"`
}

// BlacklistEntry is one known-bad author identifier from the static watch list.
type BlacklistEntry struct {
	Name string `json:"name"`
}

// AnalysisRequest carries the text plus optional author metadata.
type AnalysisRequest struct {
	ID            uuid.UUID `json:"id"`
	Text          string    `json:"text"`
	Author        string    `json:"author,omitempty"`
	FollowerCount *int      `json:"follower_count,omitempty"`
	URL           string    `json:"url,omitempty"`
}

// AnalysisResult is the composite response surfaced to callers.
type AnalysisResult struct {
	RequestID   uuid.UUID             `json:"request_id"`
	ScamRisk    int                   `json:"scam_risk"`
	Severity    Severity              `json:"severity"`
	ScamMessage string                `json:"scam_message"`
	Warnings    []string              `json:"warnings"`
	Confidence  float64               `json:"confidence"`
	Credibility CredibilityAssessment `json:"credibility"`
	Deepfake    DeepfakeAssessment    `json:"deepfake_risk"`
	URL         string                `json:"url,omitempty"`
	Timestamp   time.Time             `json:"timestamp"`
}

// RegistryCheck is the result of a verified-registry membership test.
type RegistryCheck struct {
	Entity     string `json:"entity"`
	Registered bool   `json:"registered"`
	Message    string `json:"message"`
}
