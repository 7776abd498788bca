// internal/api/static.go
package api

import "globalmind/internal/models"

// LanguageInfo is the static metadata served by the languages endpoint.
type LanguageInfo struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	Script     string `json:"script"`
	Region     string `json:"region"`
}

var languageCatalog = []LanguageInfo{
	{
		Code:       string(models.LanguageHindi),
		Name:       "Hindi",
		NativeName: "हिन्दी",
		Script:     string(models.ScriptDevanagari),
		Region:     "North India",
	},
	{
		Code:       string(models.LanguageTelugu),
		Name:       "Telugu",
		NativeName: "తెలుగు",
		Script:     string(models.ScriptTelugu),
		Region:     "Andhra Pradesh and Telangana",
	},
	{
		Code:       string(models.LanguageMarathi),
		Name:       "Marathi",
		NativeName: "मराठी",
		Script:     string(models.ScriptDevanagari),
		Region:     "Maharashtra",
	},
	{
		Code:       string(models.LanguageEnglish),
		Name:       "English",
		NativeName: "English",
		Script:     string(models.ScriptLatin),
		Region:     "Pan-India",
	},
}

var exampleQueries = map[string][]string{
	string(models.LanguageHindi): {
		"दिवाली कैसे मनाएं",
		"सर्दी खांसी का घरेलू इलाज",
		"प्रधानमंत्री आवास योजना की जानकारी",
	},
	string(models.LanguageTelugu): {
		"ఉగాది పండుగ ఎలా జరుపుకోవాలి",
		"జలుబు దగ్గు ఇంటి వైద్యం",
		"శ్రీరామనవమి విశేషాలు",
	},
	string(models.LanguageMarathi): {
		"गुढी पाडवा कसा साजरा करावा",
		"सर्दी खोकला घरगुती उपाय",
		"गणेश चतुर्थी पूजा विधी",
	},
	string(models.LanguageEnglish): {
		"how to celebrate diwali",
		"home remedy for common cold",
		"what is ayushman bharat scheme",
	},
}
