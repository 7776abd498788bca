// internal/models/query_types.go
package models

import "time"

// Query is the immutable inbound request. RequestedLanguage is an explicit
// routing override; detection stays authoritative for everything else.
type Query struct {
	RawText           string    `json:"raw_text"`
	RequestedLanguage *Language `json:"requested_language,omitempty"`
	ReceivedAt        time.Time `json:"received_at"`
}

// LanguageDetectionResult is produced once per query and never mutated.
type LanguageDetectionResult struct {
	DetectedLanguage Language `json:"detected_language"`
	PrimaryScript    Script   `json:"primary_script"`
	Confidence       float64  `json:"confidence"`
}

// CulturalMatch is a knowledge-base entry resolved from a phrase in the
// query. Confidence ranks competing matches for intent tie-breaking.
type CulturalMatch struct {
	Category       Category            `json:"category"`
	CanonicalName  string              `json:"canonical_name"`
	LocalizedNames map[Language]string `json:"localized_names"`
	Metadata       map[string]string   `json:"metadata,omitempty"`
	Confidence     float64             `json:"confidence"`
}

// IntentLabel is the closed set of query intents.
type IntentLabel string

const (
	IntentCulturalGuide    IntentLabel = "cultural_guide"
	IntentHealthcareAdvice IntentLabel = "healthcare_advice"
	IntentGeneralResponse  IntentLabel = "general_response"
)

// NodeResult is the structured partial result returned by exactly one
// language node per query.
type NodeResult struct {
	NodeID     string                  `json:"node_id"`
	Intent     IntentLabel             `json:"intent"`
	Payload    ResponsePayload         `json:"response_payload"`
	ScriptInfo LanguageDetectionResult `json:"script_info"`
	Confidence float64                 `json:"confidence"`
}

// SearchDocument is one relevance-ranked result from the external search
// provider. Treated as untrusted input.
type SearchDocument struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
	Source  string `json:"source"`
}

// AISummary condenses the top search documents.
type AISummary struct {
	SummaryText     string   `json:"summary_text"`
	KeyInsights     []string `json:"key_insights"`
	ConfidenceScore float64  `json:"confidence_score"`
	Method          string   `json:"method"`
}

// RealWorldData holds the search documents and their summary. A nil
// *RealWorldData means the external call failed or returned nothing usable;
// a non-nil value with zero documents never occurs.
type RealWorldData struct {
	SearchResults []SearchDocument `json:"search_results"`
	AISummary     *AISummary       `json:"ai_summary,omitempty"`
}

// ResponseBody is the per-query answer inside the envelope.
type ResponseBody struct {
	Intent          IntentLabel     `json:"intent"`
	Confidence      float64         `json:"confidence"`
	Script          Script          `json:"script"`
	NodeID          string          `json:"node_id"`
	CulturalContext []CulturalMatch `json:"cultural_context,omitempty"`
	RealWorldData   *RealWorldData  `json:"real_world_data,omitempty"`
	Payload         ResponsePayload `json:"response"`
}

// ResponseEnvelope is the terminal artifact returned to the caller. Never
// mutated after construction.
type ResponseEnvelope struct {
	Query            string       `json:"query"`
	DetectedLanguage Language     `json:"detected_language"`
	ProcessingTimeMs float64      `json:"processing_time_ms"`
	Timestamp        time.Time    `json:"timestamp"`
	Response         ResponseBody `json:"response"`
}
