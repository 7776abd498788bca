package classifyintent

import (
	"context"
	"testing"

	"globalmind/internal/common/logger"
	"globalmind/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(DefaultConfig(), logger.Nop())
}

func TestExecuteClassifiesByStrongestMatch(t *testing.T) {
	tests := []struct {
		name           string
		matches        []models.CulturalMatch
		wantIntent     models.IntentLabel
		wantConfidence float64
	}{
		{
			name: "festival match yields cultural guide",
			matches: []models.CulturalMatch{
				{Category: models.CategoryFestival, CanonicalName: "Diwali", Confidence: 0.9},
			},
			wantIntent:     models.IntentCulturalGuide,
			wantConfidence: 0.8,
		},
		{
			name: "health match yields healthcare advice",
			matches: []models.CulturalMatch{
				{Category: models.CategoryHealth, CanonicalName: "Fever", Confidence: 0.9},
				{Category: models.CategoryFestival, CanonicalName: "Holi", Confidence: 0.7},
			},
			wantIntent:     models.IntentHealthcareAdvice,
			wantConfidence: 0.85,
		},
		{
			name: "food match yields cultural guide",
			matches: []models.CulturalMatch{
				{Category: models.CategoryFood, CanonicalName: "Biryani", Confidence: 0.9},
			},
			wantIntent:     models.IntentCulturalGuide,
			wantConfidence: 0.8,
		},
		{
			name: "policy match yields general response",
			matches: []models.CulturalMatch{
				{Category: models.CategoryPolicy, CanonicalName: "Ayushman Bharat", Confidence: 0.9},
			},
			wantIntent:     models.IntentGeneralResponse,
			wantConfidence: 0.7,
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), &Input{
				Query:   models.Query{RawText: "some query"},
				Matches: tt.matches,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantIntent, out.Intent)
			assert.InDelta(t, tt.wantConfidence, out.Confidence, 0.001)
		})
	}
}

func TestExecuteKeywordFallbacks(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantIntent models.IntentLabel
	}{
		{name: "hindi health keyword", text: "पेट दर्द का इलाज बताओ", wantIntent: models.IntentHealthcareAdvice},
		{name: "english health keyword", text: "home remedy for headache", wantIntent: models.IntentHealthcareAdvice},
		{name: "telugu cultural keyword", text: "మా ఊరి పండుగ గురించి చెప్పు", wantIntent: models.IntentCulturalGuide},
		{name: "no keywords", text: "what time is it in mumbai", wantIntent: models.IntentGeneralResponse},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), &Input{
				Query: models.Query{RawText: tt.text},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantIntent, out.Intent)
		})
	}
}

func TestExecuteBaselineConfidence(t *testing.T) {
	h := newTestHandler()

	out, err := h.Execute(context.Background(), &Input{
		Query: models.Query{RawText: "random text with no signals"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.IntentGeneralResponse, out.Intent)
	assert.InDelta(t, 0.6, out.Confidence, 0.001)
}

func TestExecuteDeterministic(t *testing.T) {
	h := newTestHandler()
	input := &Input{
		Query: models.Query{RawText: "दिवाली की पूजा विधि"},
		Matches: []models.CulturalMatch{
			{Category: models.CategoryFestival, CanonicalName: "Diwali", Confidence: 0.9},
		},
	}

	first, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := h.Execute(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
