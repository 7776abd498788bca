// internal/pipeline/enrich-real-world/summarizer.go
package enrichrealworld

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	commonhttp "globalmind/internal/common/http"
	"globalmind/internal/common/logger"
	"globalmind/internal/knowledge"
	"globalmind/internal/models"
)

const (
	positionWeight = 0.4
	lengthWeight   = 0.3
	keywordWeight  = 0.3

	summaryCharBudget = 400
	maxKeyInsights    = 3
)

var stopWords = map[models.Language][]string{
	models.LanguageHindi: {
		"का", "की", "के", "में", "से", "है", "हैं", "और", "को", "पर", "यह", "वह", "एक", "कैसे", "क्या",
	},
	models.LanguageMarathi: {
		"आहे", "आणि", "या", "च्या", "ला", "मध्ये", "एक", "तो", "ती", "ते", "कसा", "काय",
	},
	models.LanguageTelugu: {
		"మరియు", "ఒక", "లో", "కి", "గా", "ఉంది", "ఈ", "ఆ", "ఎలా",
	},
	models.LanguageEnglish: {
		"the", "a", "an", "is", "are", "was", "in", "on", "of", "to", "for", "and", "how", "what", "with",
	},
}

// Summarizer condenses search snippets into a short summary. The extractive
// path is pure and deterministic; when an external abstractive endpoint is
// configured it is tried first and the extractive path covers any failure.
type Summarizer struct {
	endpoint string
	client   *commonhttp.Client
	logger   logger.Logger
}

func NewSummarizer(endpoint string, timeout time.Duration, log logger.Logger) *Summarizer {
	s := &Summarizer{
		endpoint: endpoint,
		logger:   log.With(map[string]interface{}{"component": "summarizer"}),
	}
	if endpoint != "" {
		s.client = commonhttp.NewClient(timeout)
	}
	return s
}

// Summarize never fails: the extractive fallback always produces a result
// for a non-empty document set.
func (s *Summarizer) Summarize(ctx context.Context, query string, lang models.Language, docs []models.SearchDocument) *models.AISummary {
	if len(docs) == 0 {
		return nil
	}

	if s.endpoint != "" {
		if summary := s.abstractive(ctx, query, lang, docs); summary != nil {
			return summary
		}
		s.logger.Warn("abstractive summarizer unavailable, falling back", map[string]interface{}{
			"endpoint": s.endpoint,
		})
	}

	return s.extractive(query, lang, docs)
}

type abstractiveRequest struct {
	Query    string   `json:"query"`
	Language string   `json:"language"`
	Snippets []string `json:"snippets"`
}

type abstractiveResponse struct {
	Summary     string   `json:"summary"`
	KeyInsights []string `json:"key_insights"`
	Confidence  float64  `json:"confidence"`
}

func (s *Summarizer) abstractive(ctx context.Context, query string, lang models.Language, docs []models.SearchDocument) *models.AISummary {
	snippets := make([]string, len(docs))
	for i, d := range docs {
		snippets[i] = d.Snippet
	}

	body, err := json.Marshal(abstractiveRequest{
		Query:    query,
		Language: string(lang),
		Snippets: snippets,
	})
	if err != nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var parsed abstractiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || parsed.Summary == "" {
		return nil
	}

	return &models.AISummary{
		SummaryText:     parsed.Summary,
		KeyInsights:     parsed.KeyInsights,
		ConfidenceScore: clampScore(parsed.Confidence),
		Method:          "abstractive",
	}
}

type scoredSentence struct {
	text  string
	doc   int
	score float64
}

func (s *Summarizer) extractive(query string, lang models.Language, docs []models.SearchDocument) *models.AISummary {
	keywords := queryKeywords(query, lang)

	var sentences []scoredSentence
	for docIdx, doc := range docs {
		parts := splitSentences(doc.Snippet)
		for i, sent := range parts {
			sentences = append(sentences, scoredSentence{
				text:  sent,
				doc:   docIdx,
				score: scoreSentence(sent, i, len(parts), keywords),
			})
		}
	}
	if len(sentences) == 0 {
		return nil
	}

	sort.SliceStable(sentences, func(i, j int) bool {
		return sentences[i].score > sentences[j].score
	})

	selected := selectDiverse(sentences)

	var b strings.Builder
	total := 0.0
	insights := make([]string, 0, maxKeyInsights)
	for i, sent := range selected {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(sent.text)
		total += sent.score
		if len(insights) < maxKeyInsights {
			insights = append(insights, sent.text)
		}
	}

	return &models.AISummary{
		SummaryText:     b.String(),
		KeyInsights:     insights,
		ConfidenceScore: clampScore(total / float64(len(selected))),
		Method:          "extractive",
	}
}

// selectDiverse walks sentences in score order preferring sources not yet
// represented, stopping at the character budget.
func selectDiverse(sentences []scoredSentence) []scoredSentence {
	var selected []scoredSentence
	seenDocs := make(map[int]bool)
	used := 0

	// pass one favors one sentence per document
	for _, sent := range sentences {
		if seenDocs[sent.doc] {
			continue
		}
		if used > 0 && used+len(sent.text) > summaryCharBudget {
			continue
		}
		selected = append(selected, sent)
		seenDocs[sent.doc] = true
		used += len(sent.text)
	}

	// pass two fills remaining budget with the best leftovers
	for _, sent := range sentences {
		if containsSentence(selected, sent.text) {
			continue
		}
		if used+len(sent.text) > summaryCharBudget {
			continue
		}
		selected = append(selected, sent)
		used += len(sent.text)
	}

	return selected
}

func containsSentence(selected []scoredSentence, text string) bool {
	for _, s := range selected {
		if s.text == text {
			return true
		}
	}
	return false
}

func scoreSentence(sentence string, index, total int, keywords []string) float64 {
	position := 1.0
	if total > 1 {
		position = 1.0 - float64(index)/float64(total)
	}

	length := 0.0
	runes := len([]rune(sentence))
	switch {
	case runes >= 50 && runes <= 200:
		length = 1.0
	case runes < 50:
		length = float64(runes) / 50.0
	default:
		length = 200.0 / float64(runes)
	}

	keyword := 0.0
	if len(keywords) > 0 {
		normalized := knowledge.Normalize(sentence)
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(normalized, kw) {
				matched++
			}
		}
		keyword = float64(matched) / float64(len(keywords))
	}

	return positionWeight*position + lengthWeight*length + keywordWeight*keyword
}

func queryKeywords(query string, lang models.Language) []string {
	stops := stopWords[lang]
	tokens := strings.Fields(knowledge.Normalize(query))

	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if isStopWord(tok, stops) {
			continue
		}
		keywords = append(keywords, tok)
	}
	return keywords
}

func isStopWord(token string, stops []string) bool {
	for _, s := range stops {
		if token == s {
			return true
		}
	}
	return false
}

// splitSentences breaks text on terminal punctuation including the
// Devanagari danda.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '.', '?', '!', '।', '॥':
			return true
		}
		return false
	})

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func clampScore(v float64) float64 {
	if v > 1.0 {
		return 1.0
	}
	if v < 0 {
		return 0
	}
	return v
}
