// internal/models/language.go
package models

// Language identifies one of the supported query languages.
type Language string

const (
	LanguageHindi   Language = "hindi"
	LanguageTelugu  Language = "telugu"
	LanguageMarathi Language = "marathi"
	LanguageEnglish Language = "english"
)

// SupportedLanguages returns the languages with registered processing nodes,
// in a fixed order.
func SupportedLanguages() []Language {
	return []Language{LanguageHindi, LanguageTelugu, LanguageMarathi, LanguageEnglish}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	switch l {
	case LanguageHindi, LanguageTelugu, LanguageMarathi, LanguageEnglish:
		return true
	}
	return false
}

// Script identifies the writing system of the input text, distinct from its
// language: Hindi and Marathi both use Devanagari.
type Script string

const (
	ScriptDevanagari Script = "devanagari"
	ScriptTelugu     Script = "telugu"
	ScriptLatin      Script = "latin"
	ScriptUnknown    Script = "unknown"
)

// Category classifies a cultural knowledge-base entry.
type Category string

const (
	CategoryFestival  Category = "festival"
	CategoryFood      Category = "food"
	CategoryTradition Category = "tradition"
	CategoryPolicy    Category = "policy"
	CategoryHealth    Category = "health"
)
