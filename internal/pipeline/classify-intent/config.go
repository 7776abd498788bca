// internal/pipeline/classify-intent/config.go
package classifyintent

// Config holds the keyword fallback vocabularies applied when the query
// matched no knowledge-base entry.
type Config struct {
	HealthKeywords   []string
	CulturalKeywords []string
}

func DefaultConfig() *Config {
	return &Config{
		HealthKeywords: []string{
			"इलाज", "दवा", "उपचार", "घरेलू नुस्खे", "औषध",
			"వైద్యం", "మందు", "చికిత్స",
			"remedy", "treatment", "medicine", "ayurvedic", "symptoms",
		},
		CulturalKeywords: []string{
			"त्योहार", "पूजा", "परंपरा", "सण", "उत्सव",
			"పండుగ", "పూజ", "సంప్రదాయం",
			"festival", "celebrate", "celebration", "ritual", "tradition",
		},
	}
}
