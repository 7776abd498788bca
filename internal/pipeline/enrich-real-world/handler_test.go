package enrichrealworld

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"globalmind/internal/common/database"
	"globalmind/internal/common/errors"
	"globalmind/internal/common/logger"
	"globalmind/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	docs  []models.SearchDocument
	err   error
	calls int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Search(ctx context.Context, query string, lang models.Language, maxResults int) ([]models.SearchDocument, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.docs, nil
}

func testConfig() *Config {
	return &Config{
		Provider:      "google",
		Timeout:       2 * time.Second,
		MaxResults:    3,
		MaxConcurrent: 2,
		CacheTTL:      time.Hour,
	}
}

func testDocs() []models.SearchDocument {
	return []models.SearchDocument{
		{
			Title:   "Diwali celebration guide",
			Snippet: "Diwali is celebrated with lamps and sweets across India. Families gather for Lakshmi puja in the evening.",
			Link:    "https://www.example.org/diwali",
			Source:  "example.org",
		},
		{
			Title:   "Festival of lights",
			Snippet: "The festival spans five days with distinct rituals each day. Homes are decorated with rangoli and diyas.",
			Link:    "https://culture.example.com/lights",
			Source:  "culture.example.com",
		},
	}
}

func newRedisCache(t *testing.T) *database.RedisClient {
	t.Helper()
	srv := miniredis.RunT(t)
	return &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: srv.Addr()})}
}

func TestExecuteReturnsEnrichedData(t *testing.T) {
	provider := &stubProvider{docs: testDocs()}
	h := NewHandler(testConfig(), provider, nil, NewSummarizer("", 0, logger.Nop()), logger.Nop())

	out := h.Execute(context.Background(), &Input{
		Query:    models.Query{RawText: "how is diwali celebrated"},
		Language: models.LanguageEnglish,
	})

	require.NotNil(t, out.Data)
	assert.Len(t, out.Data.SearchResults, 2)
	require.NotNil(t, out.Data.AISummary)
	assert.Equal(t, "extractive", out.Data.AISummary.Method)
	assert.NotEmpty(t, out.Data.AISummary.SummaryText)
}

func TestExecuteDegradesOnProviderFailure(t *testing.T) {
	provider := &stubProvider{err: errors.NewSearchProviderFailureError("stub", stderrors.New("boom"))}
	h := NewHandler(testConfig(), provider, nil, NewSummarizer("", 0, logger.Nop()), logger.Nop())

	out := h.Execute(context.Background(), &Input{
		Query:    models.Query{RawText: "दिवाली"},
		Language: models.LanguageHindi,
	})
	assert.Nil(t, out.Data)
}

func TestExecuteEmptyResultsMeansAbsent(t *testing.T) {
	provider := &stubProvider{docs: nil}
	h := NewHandler(testConfig(), provider, nil, NewSummarizer("", 0, logger.Nop()), logger.Nop())

	out := h.Execute(context.Background(), &Input{
		Query:    models.Query{RawText: "no results for this"},
		Language: models.LanguageEnglish,
	})
	assert.Nil(t, out.Data)
}

func TestExecuteNoProviderConfigured(t *testing.T) {
	h := NewHandler(testConfig(), nil, nil, NewSummarizer("", 0, logger.Nop()), logger.Nop())

	out := h.Execute(context.Background(), &Input{
		Query:    models.Query{RawText: "anything"},
		Language: models.LanguageEnglish,
	})
	assert.Nil(t, out.Data)
}

func TestExecuteCachesResults(t *testing.T) {
	provider := &stubProvider{docs: testDocs()}
	cache := newRedisCache(t)
	h := NewHandler(testConfig(), provider, cache, NewSummarizer("", 0, logger.Nop()), logger.Nop())

	input := &Input{
		Query:    models.Query{RawText: "How is Diwali  celebrated"},
		Language: models.LanguageEnglish,
	}

	first := h.Execute(context.Background(), input)
	require.NotNil(t, first.Data)
	assert.Equal(t, 1, provider.calls)

	second := h.Execute(context.Background(), input)
	require.NotNil(t, second.Data)
	assert.Equal(t, 1, provider.calls, "second call must be served from cache")
	assert.Equal(t, first.Data.SearchResults, second.Data.SearchResults)
}

func TestGoogleProviderSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "test-key", q.Get("key"))
		assert.Equal(t, "test-cx", q.Get("cx"))
		assert.Equal(t, "दिवाली कैसे मनाएं", q.Get("q"))
		assert.Equal(t, "3", q.Get("num"))
		assert.Equal(t, "lang_hi", q.Get("lr"))
		assert.Equal(t, "IN", q.Get("gl"))
		assert.Equal(t, "countryIN", q.Get("cr"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"title": "दिवाली गाइड", "snippet": "दिवाली रोशनी का त्योहार है।", "link": "https://www.bharat.example/diwali"},
				{"title": "Diwali", "snippet": "Festival of lights.", "link": "https://news.example.in/festivals"},
				{"title": "No snippet entry", "snippet": "", "link": "https://skip.example/x"},
				{"title": "Extra", "snippet": "Should be capped.", "link": "https://extra.example/y"}
			]
		}`))
	}))
	defer server.Close()

	p := NewGoogleProvider(server.URL, "test-key", "test-cx", 2*time.Second, logger.Nop())

	docs, err := p.Search(context.Background(), "दिवाली कैसे मनाएं", models.LanguageHindi, 3)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "bharat.example", docs[0].Source)
	assert.Equal(t, "news.example.in", docs[1].Source)
	assert.Equal(t, "Should be capped.", docs[2].Snippet)
}

func TestGoogleProviderRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	p := NewGoogleProvider(server.URL, "k", "cx", 2*time.Second, logger.Nop())

	_, err := p.Search(context.Background(), "test", models.LanguageEnglish, 3)
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeSearchRateLimited, stdErr.Code)
}

func TestGoogleProviderTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer server.Close()

	p := NewGoogleProvider(server.URL, "k", "cx", 2*time.Second, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := p.Search(ctx, "test", models.LanguageEnglish, 3)
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeSearchTimeout, stdErr.Code)
}

func TestGoogleProviderServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewGoogleProvider(server.URL, "k", "cx", 2*time.Second, logger.Nop())

	_, err := p.Search(context.Background(), "test", models.LanguageEnglish, 3)
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeSearchProviderFailure, stdErr.Code)
}
