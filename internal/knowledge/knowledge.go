// internal/knowledge/knowledge.go
package knowledge

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"globalmind/internal/common/errors"
	"globalmind/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed kb.json
var defaultKB []byte

//go:embed kb_schema.json
var kbSchema []byte

const (
	nameMatchConfidence    = 0.9
	keywordMatchConfidence = 0.7
)

// Load reads and validates the knowledge base. An empty path loads the
// embedded default dataset.
func Load(path string) (*Base, error) {
	raw := defaultKB
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read knowledge base %s: %w", path, err)
		}
		raw = data
	}
	return Parse(raw)
}

// Parse validates raw JSON against the entry schema and builds the
// match index. Invalid data fails startup rather than degrading matching.
func Parse(raw []byte) (*Base, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(kbSchema),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return nil, errors.NewKnowledgeBaseInvalidError(err.Error())
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}
		return nil, errors.NewKnowledgeBaseInvalidError(strings.Join(details, "; "))
	}

	var doc struct {
		Entries []Entry `json:"entries"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.NewKnowledgeBaseInvalidError(err.Error())
	}

	b := &Base{
		entries: doc.Entries,
		index:   make(map[string][]indexRef),
	}
	for i, e := range b.entries {
		b.addTerm(Normalize(e.CanonicalName), i, true)
		for _, name := range e.LocalizedNames {
			b.addTerm(Normalize(name), i, true)
		}
		for _, kw := range e.Keywords {
			b.addTerm(Normalize(kw), i, false)
		}
	}
	return b, nil
}

func (b *Base) addTerm(term string, entry int, nameMatch bool) {
	if term == "" {
		return
	}
	b.index[term] = append(b.index[term], indexRef{entry: entry, nameMatch: nameMatch})
}

// Match scans the normalized query text for known cultural terms and
// returns matches ordered by confidence. An empty result is a valid
// outcome, not an error.
func (b *Base) Match(text string) []models.CulturalMatch {
	normalized := Normalize(text)
	if normalized == "" {
		return nil
	}

	best := make(map[int]float64)
	for term, refs := range b.index {
		if !strings.Contains(normalized, term) {
			continue
		}
		for _, ref := range refs {
			conf := keywordMatchConfidence
			if ref.nameMatch {
				conf = nameMatchConfidence
			}
			if conf > best[ref.entry] {
				best[ref.entry] = conf
			}
		}
	}

	matches := make([]models.CulturalMatch, 0, len(best))
	for i, conf := range best {
		e := b.entries[i]
		matches = append(matches, models.CulturalMatch{
			Category:       e.Category,
			CanonicalName:  e.CanonicalName,
			LocalizedNames: e.LocalizedNames,
			Metadata:       e.Metadata,
			Confidence:     conf,
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Confidence != matches[j].Confidence {
			return matches[i].Confidence > matches[j].Confidence
		}
		return matches[i].CanonicalName < matches[j].CanonicalName
	})
	return matches
}
