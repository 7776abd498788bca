// internal/pipeline/detect-language/handler.go
package detectlanguage

import (
	"context"
	"strings"
	"unicode"

	"globalmind/internal/common/errors"
	"globalmind/internal/common/logger"
	"globalmind/internal/knowledge"
	"globalmind/internal/models"
)

const StageName = "detect-language"

// noLetterConfidence applies when the text carries no letters at all
// (digits, punctuation, emoji). The query still flows through the english
// node rather than being rejected.
const noLetterConfidence = 0.5

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.With(map[string]interface{}{
			"stage": StageName,
		}),
	}
}

// Execute determines the query's script by codepoint majority vote and maps
// it to a supported language. Same input always yields the same result.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	text := strings.TrimSpace(input.Query.RawText)
	if text == "" {
		return nil, errors.NewInvalidQueryError("query text is empty")
	}

	var devanagari, telugu, latin, letters int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		switch {
		case r >= 0x0900 && r <= 0x097F:
			devanagari++
		case r >= 0x0C00 && r <= 0x0C7F:
			telugu++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}

	if letters == 0 {
		h.logger.Debug("no letters in query, defaulting to english", map[string]interface{}{
			"query_length": len(text),
		})
		return &Output{Result: models.LanguageDetectionResult{
			DetectedLanguage: models.LanguageEnglish,
			PrimaryScript:    models.ScriptUnknown,
			Confidence:       noLetterConfidence,
		}}, nil
	}

	// ties resolve by fixed priority: devanagari, then telugu, then latin
	script := models.ScriptUnknown
	majority := 0
	switch {
	case devanagari >= telugu && devanagari >= latin && devanagari > 0:
		script, majority = models.ScriptDevanagari, devanagari
	case telugu >= latin && telugu > 0:
		script, majority = models.ScriptTelugu, telugu
	case latin > 0:
		script, majority = models.ScriptLatin, latin
	}

	confidence := float64(majority) / float64(letters)
	var language models.Language

	switch script {
	case models.ScriptTelugu:
		language = models.LanguageTelugu
	case models.ScriptLatin:
		language = models.LanguageEnglish
	case models.ScriptDevanagari:
		language, confidence = h.splitDevanagari(text, confidence)
	default:
		language = models.LanguageEnglish
		confidence = noLetterConfidence
	}

	result := models.LanguageDetectionResult{
		DetectedLanguage: language,
		PrimaryScript:    script,
		Confidence:       clamp(confidence),
	}

	h.logger.Debug("language detected", map[string]interface{}{
		"language":   string(result.DetectedLanguage),
		"script":     string(result.PrimaryScript),
		"confidence": result.Confidence,
	})

	return &Output{Result: result}, nil
}

// splitDevanagari decides between Hindi and Marathi, which share a script,
// by counting language-specific marker words. No markers means Hindi with
// reduced confidence.
func (h *Handler) splitDevanagari(text string, confidence float64) (models.Language, float64) {
	normalized := knowledge.Normalize(text)
	tokens := strings.Fields(normalized)

	hindiScore := countMarkers(tokens, h.config.HindiMarkers)
	marathiScore := countMarkers(tokens, h.config.MarathiMarkers)

	switch {
	case marathiScore > hindiScore:
		return models.LanguageMarathi, confidence
	case hindiScore > 0:
		return models.LanguageHindi, confidence
	default:
		return models.LanguageHindi, confidence * 0.8
	}
}

func countMarkers(tokens, markers []string) int {
	score := 0
	for _, tok := range tokens {
		for _, m := range markers {
			if tok == m {
				score++
				break
			}
		}
	}
	return score
}

func clamp(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}
