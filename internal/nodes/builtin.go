// internal/nodes/builtin.go
package nodes

import (
	"context"
	"fmt"
	"strings"

	"globalmind/internal/common/logger"
	"globalmind/internal/models"
)

const (
	baseConfidence          = 0.6
	culturalMatchBonus      = 0.2
	defaultConditionEnglish = "general wellness"
)

// templates holds the per-language response text. Format verbs receive the
// entity name or the raw query.
type templates struct {
	culturalIntro     string
	culturalContent   string
	practices         []string
	healthDisclaimer  string
	healthRemedies    []string
	ayurvedicApproach string
	generalContent    string
	generalSuggestion string
}

type builtinNode struct {
	id       string
	language models.Language
	t        templates
	logger   logger.Logger
}

func newBuiltinNode(language models.Language, t templates, log logger.Logger) Node {
	id := fmt.Sprintf("%s-node", language)
	return &builtinNode{
		id:       id,
		language: language,
		t:        t,
		logger:   log.With(map[string]interface{}{"node": id}),
	}
}

func (n *builtinNode) ID() string                { return n.id }
func (n *builtinNode) Language() models.Language { return n.language }

func (n *builtinNode) Process(ctx context.Context, req *Request) (*models.NodeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	confidence := baseConfidence
	if len(req.Matches) > 0 {
		confidence += culturalMatchBonus
	}

	var payload models.ResponsePayload
	switch req.Intent {
	case models.IntentCulturalGuide:
		payload = n.culturalGuide(req)
	case models.IntentHealthcareAdvice:
		payload = n.healthcareAdvice(req)
	default:
		payload = n.generalResponse(req)
	}

	n.logger.Debug("node produced result", map[string]interface{}{
		"intent":     string(req.Intent),
		"confidence": confidence,
	})

	return &models.NodeResult{
		NodeID:     n.id,
		Intent:     req.Intent,
		Payload:    payload,
		ScriptInfo: req.Detection,
		Confidence: confidence,
	}, nil
}

// entityName returns the best display name for the strongest match, in the
// node's own language when available.
func (n *builtinNode) entityName(req *Request) string {
	if len(req.Matches) == 0 {
		return strings.TrimSpace(req.Query.RawText)
	}
	m := req.Matches[0]
	if name, ok := m.LocalizedNames[n.language]; ok {
		return name
	}
	return m.CanonicalName
}

func (n *builtinNode) culturalGuide(req *Request) models.ResponsePayload {
	name := n.entityName(req)

	significance := ""
	if len(req.Matches) > 0 {
		significance = req.Matches[0].Metadata["significance"]
	}

	return models.NewCulturalGuidePayload(models.CulturalGuidePayload{
		Title:                fmt.Sprintf(n.t.culturalIntro, name),
		Content:              fmt.Sprintf(n.t.culturalContent, name),
		CulturalSignificance: significance,
		TraditionalPractices: n.t.practices,
	})
}

func (n *builtinNode) healthcareAdvice(req *Request) models.ResponsePayload {
	condition := defaultConditionEnglish
	remedies := n.t.healthRemedies

	if len(req.Matches) > 0 && req.Matches[0].Category == models.CategoryHealth {
		condition = n.entityName(req)
		if r := req.Matches[0].Metadata["traditional_remedy"]; r != "" {
			remedies = strings.Split(r, ", ")
		}
	} else if text := strings.TrimSpace(req.Query.RawText); text != "" {
		condition = text
	}

	return models.NewHealthcareAdvicePayload(models.HealthcareAdvicePayload{
		Condition:           condition,
		TraditionalRemedies: remedies,
		AyurvedicApproach:   n.t.ayurvedicApproach,
		Disclaimer:          n.t.healthDisclaimer,
	})
}

func (n *builtinNode) generalResponse(req *Request) models.ResponsePayload {
	return models.NewGeneralResponsePayload(models.GeneralResponsePayload{
		Content:    fmt.Sprintf(n.t.generalContent, strings.TrimSpace(req.Query.RawText)),
		Suggestion: n.t.generalSuggestion,
	})
}

// NewHindiNode returns the in-process Hindi language node.
func NewHindiNode(log logger.Logger) Node {
	return newBuiltinNode(models.LanguageHindi, templates{
		culturalIntro:     "%s भारतीय संस्कृति का एक महत्वपूर्ण हिस्सा है",
		culturalContent:   "%s के बारे में जानकारी: यह त्योहार परिवार और समुदाय को जोड़ता है। इसे पारंपरिक रीति-रिवाजों के साथ मनाया जाता है।",
		practices:         []string{"दीप जलाना", "पूजा करना", "मिठाई बांटना"},
		healthDisclaimer:  "यह सामान्य जानकारी है। गंभीर समस्या होने पर डॉक्टर से संपर्क करें।",
		healthRemedies:    []string{"अदरक-तुलसी की चाय", "हल्दी वाला दूध", "पर्याप्त आराम"},
		ayurvedicApproach: "आयुर्वेद में संतुलित आहार और नियमित दिनचर्या पर जोर दिया जाता है।",
		generalContent:    "आपके प्रश्न \"%s\" के लिए सामान्य जानकारी उपलब्ध है।",
		generalSuggestion: "कृपया त्योहार, स्वास्थ्य या सरकारी योजनाओं के बारे में पूछें।",
	}, log)
}

// NewTeluguNode returns the in-process Telugu language node.
func NewTeluguNode(log logger.Logger) Node {
	return newBuiltinNode(models.LanguageTelugu, templates{
		culturalIntro:     "%s భారతీయ సంస్కృతిలో ఒక ముఖ్యమైన భాగం",
		culturalContent:   "%s గురించి సమాచారం: ఈ పండుగ కుటుంబాలను మరియు సమాజాన్ని కలుపుతుంది. దీనిని సంప్రదాయ పద్ధతుల్లో జరుపుకుంటారు.",
		practices:         []string{"దీపాలు వెలిగించడం", "పూజ చేయడం", "పిండివంటలు పంచడం"},
		healthDisclaimer:  "ఇది సాధారణ సమాచారం మాత్రమే. తీవ్రమైన సమస్యలకు వైద్యుడిని సంప్రదించండి.",
		healthRemedies:    []string{"అల్లం తులసి కషాయం", "పసుపు పాలు", "తగినంత విశ్రాంతి"},
		ayurvedicApproach: "ఆయుర్వేదం సమతుల్య ఆహారం మరియు క్రమమైన దినచర్యపై దృష్టి పెడుతుంది.",
		generalContent:    "మీ ప్రశ్న \"%s\" కోసం సాధారణ సమాచారం అందుబాటులో ఉంది.",
		generalSuggestion: "దయచేసి పండుగలు, ఆరోగ్యం లేదా ప్రభుత్వ పథకాల గురించి అడగండి.",
	}, log)
}

// NewMarathiNode returns the in-process Marathi language node.
func NewMarathiNode(log logger.Logger) Node {
	return newBuiltinNode(models.LanguageMarathi, templates{
		culturalIntro:     "%s हा भारतीय संस्कृतीचा एक महत्त्वाचा भाग आहे",
		culturalContent:   "%s बद्दल माहिती: हा सण कुटुंब आणि समाजाला जोडतो. तो पारंपरिक पद्धतीने साजरा केला जातो.",
		practices:         []string{"दिवे लावणे", "पूजा करणे", "गोडधोड वाटणे"},
		healthDisclaimer:  "ही सामान्य माहिती आहे. गंभीर त्रास असल्यास डॉक्टरांचा सल्ला घ्या.",
		healthRemedies:    []string{"आले-तुळस काढा", "हळदीचे दूध", "पुरेशी विश्रांती"},
		ayurvedicApproach: "आयुर्वेदात संतुलित आहार आणि नियमित दिनचर्येवर भर दिला जातो.",
		generalContent:    "तुमच्या \"%s\" या प्रश्नासाठी सामान्य माहिती उपलब्ध आहे.",
		generalSuggestion: "कृपया सण, आरोग्य किंवा सरकारी योजनांबद्दल विचारा.",
	}, log)
}

// NewEnglishNode returns the in-process English language node.
func NewEnglishNode(log logger.Logger) Node {
	return newBuiltinNode(models.LanguageEnglish, templates{
		culturalIntro:     "%s is an important part of Indian culture",
		culturalContent:   "About %s: this celebration brings families and communities together and is observed with traditional customs.",
		practices:         []string{"lighting lamps", "performing puja", "sharing sweets"},
		healthDisclaimer:  "This is general information only. Consult a doctor for serious conditions.",
		healthRemedies:    []string{"ginger tulsi tea", "turmeric milk", "adequate rest"},
		ayurvedicApproach: "Ayurveda emphasizes a balanced diet and a regular daily routine.",
		generalContent:    "General information is available for your question \"%s\".",
		generalSuggestion: "Try asking about festivals, health remedies or government schemes.",
	}, log)
}

// BuiltinNodes returns one in-process node per supported language.
func BuiltinNodes(log logger.Logger) []Node {
	return []Node{
		NewHindiNode(log),
		NewTeluguNode(log),
		NewMarathiNode(log),
		NewEnglishNode(log),
	}
}
