package knowledge

import (
	"testing"

	"globalmind/internal/common/errors"
	"globalmind/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	base, err := Load("")
	require.NoError(t, err)
	assert.Greater(t, base.Len(), 10)
}

func TestParseRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "unknown category",
			raw:  `{"entries":[{"category":"sport","canonical_name":"Cricket","localized_names":{"english":"Cricket"}}]}`,
		},
		{
			name: "missing localized names",
			raw:  `{"entries":[{"category":"festival","canonical_name":"Diwali","localized_names":{}}]}`,
		},
		{
			name: "unknown language key",
			raw:  `{"entries":[{"category":"festival","canonical_name":"Diwali","localized_names":{"tamil":"தீபாவளி"}}]}`,
		},
		{
			name: "not json",
			raw:  `not json at all`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			require.Error(t, err)
			stdErr, ok := errors.AsStandardError(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeKnowledgeBaseInvalid, stdErr.Code)
		})
	}
}

func TestMatchFindsFestivalByHindiName(t *testing.T) {
	base, err := Load("")
	require.NoError(t, err)

	matches := base.Match("दिवाली कैसे मनाएं")
	require.NotEmpty(t, matches)
	assert.Equal(t, "Diwali", matches[0].CanonicalName)
	assert.Equal(t, models.CategoryFestival, matches[0].Category)
	assert.InDelta(t, 0.9, matches[0].Confidence, 0.001)
}

func TestMatchFindsTeluguFestival(t *testing.T) {
	base, err := Load("")
	require.NoError(t, err)

	matches := base.Match("ఉగాది పండుగ ఎలా జరుపుకోవాలి")
	require.NotEmpty(t, matches)
	assert.Equal(t, "Ugadi", matches[0].CanonicalName)
}

func TestMatchKeywordLowerConfidence(t *testing.T) {
	base, err := Load("")
	require.NoError(t, err)

	matches := base.Match("best immunity booster for winter")
	require.NotEmpty(t, matches)
	assert.Equal(t, "Immunity", matches[0].CanonicalName)
	assert.InDelta(t, 0.7, matches[0].Confidence, 0.001)
}

func TestMatchEmptyResultIsValid(t *testing.T) {
	base, err := Load("")
	require.NoError(t, err)

	assert.Empty(t, base.Match("quantum chromodynamics lattice simulation"))
	assert.Empty(t, base.Match(""))
}

func TestMatchDeterministicOrder(t *testing.T) {
	base, err := Load("")
	require.NoError(t, err)

	first := base.Match("दिवाली और होली में रंगोली")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, base.Match("दिवाली और होली में रंगोली"))
	}
	require.GreaterOrEqual(t, len(first), 3)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "latin diacritics stripped", in: "Dīwālī  Pūjā", want: "diwali puja"},
		{name: "devanagari matras survive", in: "दिवाली", want: "दिवाली"},
		{name: "telugu vowel signs survive", in: "దీపావళి", want: "దీపావళి"},
		{name: "whitespace collapsed", in: "  होली   कब  है ", want: "होली कब है"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}
