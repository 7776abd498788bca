// internal/pipeline/enrich-real-world/elastic.go
package enrichrealworld

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"globalmind/internal/common/database"
	"globalmind/internal/common/errors"
	"globalmind/internal/common/logger"
	"globalmind/internal/models"
)

// ElasticProvider serves search from a self-hosted document index instead
// of the external API. Documents are indexed with title, content, link and
// language fields.
type ElasticProvider struct {
	es     *database.ElasticsearchClient
	index  string
	logger logger.Logger
}

func NewElasticProvider(es *database.ElasticsearchClient, index string, log logger.Logger) *ElasticProvider {
	return &ElasticProvider{
		es:     es,
		index:  index,
		logger: log.With(map[string]interface{}{"provider": "elasticsearch"}),
	}
}

func (p *ElasticProvider) Name() string { return "elasticsearch" }

type elasticHit struct {
	Source struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Link    string `json:"link"`
	} `json:"_source"`
}

type elasticSearchResponse struct {
	Hits struct {
		Hits []elasticHit `json:"hits"`
	} `json:"hits"`
}

func (p *ElasticProvider) Search(ctx context.Context, query string, lang models.Language, maxResults int) ([]models.SearchDocument, error) {
	body := map[string]interface{}{
		"size": maxResults,
		"query": map[string]interface{}{
			"bool": map[string]interface{}{
				"must": map[string]interface{}{
					"multi_match": map[string]interface{}{
						"query":  query,
						"fields": []string{"title^2", "content"},
					},
				},
				"filter": map[string]interface{}{
					"term": map[string]interface{}{"language": string(lang)},
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, errors.NewSearchProviderFailureError(p.Name(), err)
	}

	res, err := p.es.Client.Search(
		p.es.Client.Search.WithContext(ctx),
		p.es.Client.Search.WithIndex(p.index),
		p.es.Client.Search.WithBody(&buf),
	)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.NewSearchTimeoutError(p.Name())
		}
		return nil, errors.NewSearchProviderFailureError(p.Name(), err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusTooManyRequests {
			return nil, errors.NewSearchRateLimitedError(p.Name())
		}
		return nil, errors.NewSearchProviderFailureError(p.Name(),
			fmt.Errorf("search returned %s", res.Status()))
	}

	var parsed elasticSearchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, errors.NewSearchProviderFailureError(p.Name(), err)
	}

	docs := make([]models.SearchDocument, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		if hit.Source.Content == "" {
			continue
		}
		docs = append(docs, models.SearchDocument{
			Title:   hit.Source.Title,
			Snippet: hit.Source.Content,
			Link:    hit.Source.Link,
			Source:  sourceFromLink(hit.Source.Link),
		})
		if len(docs) >= maxResults {
			break
		}
	}

	p.logger.Debug("search completed", map[string]interface{}{
		"results": len(docs),
	})
	return docs, nil
}
