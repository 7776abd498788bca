// internal/pipeline/enrich-real-world/provider.go
package enrichrealworld

import (
	"context"
	"net/url"
	"strings"

	"globalmind/internal/models"
)

// SearchProvider fetches relevance-ranked documents for a query. Results
// are snippet-only and treated as untrusted input.
type SearchProvider interface {
	Name() string
	Search(ctx context.Context, query string, lang models.Language, maxResults int) ([]models.SearchDocument, error)
}

// languageRestrict maps a supported language to the provider's language
// restriction code.
func languageRestrict(lang models.Language) string {
	switch lang {
	case models.LanguageHindi:
		return "lang_hi"
	case models.LanguageTelugu:
		return "lang_te"
	case models.LanguageMarathi:
		return "lang_mr"
	default:
		return "lang_en"
	}
}

// sourceFromLink extracts a display source from a result URL, dropping the
// leading www.
func sourceFromLink(link string) string {
	u, err := url.Parse(link)
	if err != nil || u.Host == "" {
		return link
	}
	return strings.TrimPrefix(u.Host, "www.")
}
