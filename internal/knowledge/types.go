// internal/knowledge/types.go
package knowledge

import "globalmind/internal/models"

// Entry is a single cultural knowledge base record. LocalizedNames carries
// the entry's name per language; Keywords are additional normalized match
// terms in any script.
type Entry struct {
	Category       models.Category            `json:"category"`
	CanonicalName  string                     `json:"canonical_name"`
	LocalizedNames map[models.Language]string `json:"localized_names"`
	Keywords       []string                   `json:"keywords"`
	Metadata       map[string]string          `json:"metadata,omitempty"`
}

// Base is an immutable, validated set of entries loaded at startup.
type Base struct {
	entries []Entry

	// index maps normalized match terms to entry positions
	index map[string][]indexRef
}

type indexRef struct {
	entry     int
	nameMatch bool
}

// Entries returns all loaded entries.
func (b *Base) Entries() []Entry {
	return b.entries
}

// Len returns the number of loaded entries.
func (b *Base) Len() int {
	return len(b.entries)
}
