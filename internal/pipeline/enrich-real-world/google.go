// internal/pipeline/enrich-real-world/google.go
package enrichrealworld

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"globalmind/internal/common/errors"
	commonhttp "globalmind/internal/common/http"
	"globalmind/internal/common/logger"
	"globalmind/internal/models"
)

// GoogleProvider queries the Google Custom Search JSON API, restricted to
// Indian results in the query's language.
type GoogleProvider struct {
	baseURL  string
	apiKey   string
	engineID string
	client   *commonhttp.Client
	logger   logger.Logger
}

func NewGoogleProvider(baseURL, apiKey, engineID string, timeout time.Duration, log logger.Logger) *GoogleProvider {
	return &GoogleProvider{
		baseURL:  baseURL,
		apiKey:   apiKey,
		engineID: engineID,
		client:   commonhttp.NewClient(timeout),
		logger:   log.With(map[string]interface{}{"provider": "google"}),
	}
}

func (p *GoogleProvider) Name() string { return "google" }

type googleSearchResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"items"`
}

func (p *GoogleProvider) Search(ctx context.Context, query string, lang models.Language, maxResults int) ([]models.SearchDocument, error) {
	params := url.Values{}
	params.Set("key", p.apiKey)
	params.Set("cx", p.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(maxResults))
	params.Set("lr", languageRestrict(lang))
	params.Set("gl", "IN")
	params.Set("cr", "countryIN")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.NewSearchProviderFailureError(p.Name(), err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() != nil || stderrors.Is(err, context.DeadlineExceeded) {
			return nil, errors.NewSearchTimeoutError(p.Name())
		}
		return nil, errors.NewSearchProviderFailureError(p.Name(), err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, errors.NewSearchRateLimitedError(p.Name())
	case resp.StatusCode != http.StatusOK:
		return nil, errors.NewSearchProviderFailureError(p.Name(),
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, errors.NewSearchProviderFailureError(p.Name(), err)
	}

	var parsed googleSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.NewSearchProviderFailureError(p.Name(), err)
	}

	docs := make([]models.SearchDocument, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Snippet == "" {
			continue
		}
		docs = append(docs, models.SearchDocument{
			Title:   item.Title,
			Snippet: item.Snippet,
			Link:    item.Link,
			Source:  sourceFromLink(item.Link),
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
