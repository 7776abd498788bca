// internal/pipeline/detect-language/models.go
package detectlanguage

import "globalmind/internal/models"

type Input struct {
	Query models.Query
}

type Output struct {
	Result models.LanguageDetectionResult
}
