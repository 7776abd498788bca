// internal/nodes/registry.go
package nodes

import (
	"fmt"

	"globalmind/internal/models"
)

// Registry maps each supported language to its node. Built once at startup
// and immutable afterwards, so lookups need no locking.
type Registry struct {
	byLanguage map[models.Language]Node
}

func NewRegistry(nodes ...Node) (*Registry, error) {
	byLanguage := make(map[models.Language]Node, len(nodes))
	for _, n := range nodes {
		lang := n.Language()
		if !lang.Valid() {
			return nil, fmt.Errorf("node %s registered for unknown language %q", n.ID(), lang)
		}
		if existing, ok := byLanguage[lang]; ok {
			return nil, fmt.Errorf("duplicate node for language %q: %s and %s", lang, existing.ID(), n.ID())
		}
		byLanguage[lang] = n
	}
	return &Registry{byLanguage: byLanguage}, nil
}

// Resolve returns the node for a language, or false when none is registered.
func (r *Registry) Resolve(lang models.Language) (Node, bool) {
	n, ok := r.byLanguage[lang]
	return n, ok
}

// Languages returns the languages with a registered node.
func (r *Registry) Languages() []models.Language {
	langs := make([]models.Language, 0, len(r.byLanguage))
	for _, l := range models.SupportedLanguages() {
		if _, ok := r.byLanguage[l]; ok {
			langs = append(langs, l)
		}
	}
	return langs
}
