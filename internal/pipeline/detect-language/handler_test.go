package detectlanguage

import (
	"context"
	"testing"

	"globalmind/internal/common/errors"
	"globalmind/internal/common/logger"
	"globalmind/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() *Handler {
	return NewHandler(DefaultConfig(), logger.Nop())
}

func TestExecuteDetectsLanguages(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantLanguage models.Language
		wantScript   models.Script
	}{
		{
			name:         "hindi festival query",
			text:         "दिवाली कैसे मनाएं",
			wantLanguage: models.LanguageHindi,
			wantScript:   models.ScriptDevanagari,
		},
		{
			name:         "marathi festival query",
			text:         "गुढी पाडवा कसा साजरा करावा",
			wantLanguage: models.LanguageMarathi,
			wantScript:   models.ScriptDevanagari,
		},
		{
			name:         "telugu festival query",
			text:         "ఉగాది పండుగ ఎలా జరుపుకోవాలి",
			wantLanguage: models.LanguageTelugu,
			wantScript:   models.ScriptTelugu,
		},
		{
			name:         "english query",
			text:         "how to celebrate diwali",
			wantLanguage: models.LanguageEnglish,
			wantScript:   models.ScriptLatin,
		},
		{
			name:         "devanagari without markers falls back to hindi",
			text:         "दिवाली",
			wantLanguage: models.LanguageHindi,
			wantScript:   models.ScriptDevanagari,
		},
	}

	h := newTestHandler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := h.Execute(context.Background(), &Input{Query: models.Query{RawText: tt.text}})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLanguage, out.Result.DetectedLanguage)
			assert.Equal(t, tt.wantScript, out.Result.PrimaryScript)
			assert.Greater(t, out.Result.Confidence, 0.0)
			assert.LessOrEqual(t, out.Result.Confidence, 1.0)
		})
	}
}

func TestExecuteMixedScriptMajorityWins(t *testing.T) {
	h := newTestHandler()

	// mostly devanagari with a latin brand name
	out, err := h.Execute(context.Background(), &Input{
		Query: models.Query{RawText: "दिवाली पूजा का समय google में कैसे खोजें"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.ScriptDevanagari, out.Result.PrimaryScript)
	assert.Equal(t, models.LanguageHindi, out.Result.DetectedLanguage)
	assert.Less(t, out.Result.Confidence, 1.0)
}

func TestExecuteEmptyQueryRejected(t *testing.T) {
	h := newTestHandler()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := h.Execute(context.Background(), &Input{Query: models.Query{RawText: text}})
		require.Error(t, err)
		stdErr, ok := errors.AsStandardError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeInvalidQuery, stdErr.Code)
	}
}

func TestExecuteNoLettersDefaultsToEnglish(t *testing.T) {
	h := newTestHandler()

	out, err := h.Execute(context.Background(), &Input{Query: models.Query{RawText: "1234 ?!"}})
	require.NoError(t, err)
	assert.Equal(t, models.LanguageEnglish, out.Result.DetectedLanguage)
	assert.Equal(t, models.ScriptUnknown, out.Result.PrimaryScript)
	assert.Equal(t, 0.5, out.Result.Confidence)
}

func TestExecuteDeterministic(t *testing.T) {
	h := newTestHandler()
	input := &Input{Query: models.Query{RawText: "होळीला पुरण पोळी कशी करावी"}}

	first, err := h.Execute(context.Background(), input)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := h.Execute(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
