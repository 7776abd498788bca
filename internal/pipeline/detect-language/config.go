// internal/pipeline/detect-language/config.go
package detectlanguage

// Config carries the marker vocabularies used to split Hindi from Marathi
// when the script alone (Devanagari) is ambiguous.
type Config struct {
	HindiMarkers   []string
	MarathiMarkers []string
}

func DefaultConfig() *Config {
	return &Config{
		HindiMarkers: []string{
			"है", "हैं", "कैसे", "में", "क्या", "का", "की", "के", "और", "मनाएं",
		},
		MarathiMarkers: []string{
			"आहे", "आहेत", "कसा", "कशी", "कसे", "मध्ये", "काय", "साठी", "गुढी", "पाडवा", "साजरा",
		},
	}
}
