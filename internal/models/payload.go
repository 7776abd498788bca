// internal/models/payload.go
package models

// PayloadKind tags the active variant of a ResponsePayload.
type PayloadKind string

const (
	PayloadCulturalGuide    PayloadKind = "cultural_guide"
	PayloadHealthcareAdvice PayloadKind = "healthcare_advice"
	PayloadGeneralResponse  PayloadKind = "general_response"
	PayloadEnhancedCultural PayloadKind = "enhanced_cultural_response"
	PayloadRealWorld        PayloadKind = "real_world_response"
)

// ResponsePayload is a closed tagged union. Exactly one of the variant
// pointers is non-nil, matching Kind; use the constructors below.
type ResponsePayload struct {
	Kind             PayloadKind               `json:"type"`
	CulturalGuide    *CulturalGuidePayload     `json:"cultural_guide,omitempty"`
	HealthcareAdvice *HealthcareAdvicePayload  `json:"healthcare_advice,omitempty"`
	General          *GeneralResponsePayload   `json:"general_response,omitempty"`
	EnhancedCultural *EnhancedCulturalPayload  `json:"enhanced_cultural_response,omitempty"`
	RealWorld        *RealWorldResponsePayload `json:"real_world_response,omitempty"`
}

// CulturalGuidePayload answers festival/tradition queries.
type CulturalGuidePayload struct {
	Title                string   `json:"title"`
	Content              string   `json:"content"`
	CulturalSignificance string   `json:"cultural_significance,omitempty"`
	TraditionalPractices []string `json:"traditional_practices,omitempty"`
}

// HealthcareAdvicePayload answers home-remedy/health queries.
type HealthcareAdvicePayload struct {
	Condition           string   `json:"condition"`
	TraditionalRemedies []string `json:"traditional_remedies,omitempty"`
	AyurvedicApproach   string   `json:"ayurvedic_approach,omitempty"`
	Disclaimer          string   `json:"disclaimer"`
}

// GeneralResponsePayload is the fallback answer.
type GeneralResponsePayload struct {
	Content    string `json:"content"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ResourceLink points at one supporting search document.
type ResourceLink struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Source  string `json:"source"`
	Snippet string `json:"snippet,omitempty"`
}

// EnhancedCulturalPayload combines cultural knowledge with real-world data.
type EnhancedCulturalPayload struct {
	CulturalIntroduction string         `json:"cultural_introduction"`
	MainContent          string         `json:"main_content"`
	PracticalAdvice      string         `json:"practical_advice,omitempty"`
	AdditionalResources  []ResourceLink `json:"additional_resources,omitempty"`
	ConfidenceLevel      string         `json:"confidence_level"`
}

// RealWorldResponsePayload carries a search-backed answer with no cultural
// context attached.
type RealWorldResponsePayload struct {
	Introduction        string         `json:"introduction"`
	MainContent         string         `json:"main_content"`
	PracticalAdvice     string         `json:"practical_advice,omitempty"`
	AdditionalResources []ResourceLink `json:"additional_resources,omitempty"`
}

func NewCulturalGuidePayload(p CulturalGuidePayload) ResponsePayload {
	return ResponsePayload{Kind: PayloadCulturalGuide, CulturalGuide: &p}
}

func NewHealthcareAdvicePayload(p HealthcareAdvicePayload) ResponsePayload {
	return ResponsePayload{Kind: PayloadHealthcareAdvice, HealthcareAdvice: &p}
}

func NewGeneralResponsePayload(p GeneralResponsePayload) ResponsePayload {
	return ResponsePayload{Kind: PayloadGeneralResponse, General: &p}
}

func NewEnhancedCulturalPayload(p EnhancedCulturalPayload) ResponsePayload {
	return ResponsePayload{Kind: PayloadEnhancedCultural, EnhancedCultural: &p}
}

func NewRealWorldResponsePayload(p RealWorldResponsePayload) ResponsePayload {
	return ResponsePayload{Kind: PayloadRealWorld, RealWorld: &p}
}
