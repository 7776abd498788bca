package matchculturalcontext

import (
	"context"
	"testing"

	"globalmind/internal/common/logger"
	"globalmind/internal/knowledge"
	"globalmind/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	base, err := knowledge.Load("")
	require.NoError(t, err)
	return NewHandler(base, logger.Nop())
}

func TestExecuteMatchesFestival(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		Query: models.Query{RawText: "दिवाली कैसे मनाएं"},
		Detection: models.LanguageDetectionResult{
			DetectedLanguage: models.LanguageHindi,
			PrimaryScript:    models.ScriptDevanagari,
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Matches)
	assert.Equal(t, "Diwali", out.Matches[0].CanonicalName)
	assert.Equal(t, models.CategoryFestival, out.Matches[0].Category)
	assert.Contains(t, out.Matches[0].LocalizedNames, models.LanguageHindi)
}

func TestExecuteNoMatchesIsNotAnError(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		Query: models.Query{RawText: "what is the weather today"},
		Detection: models.LanguageDetectionResult{
			DetectedLanguage: models.LanguageEnglish,
			PrimaryScript:    models.ScriptLatin,
		},
	})
	require.NoError(t, err)
	assert.Empty(t, out.Matches)
}

func TestExecuteMatchesHealthEntry(t *testing.T) {
	h := newTestHandler(t)

	out, err := h.Execute(context.Background(), &Input{
		Query: models.Query{RawText: "सर्दी खांसी का घरेलू इलाज"},
		Detection: models.LanguageDetectionResult{
			DetectedLanguage: models.LanguageHindi,
			PrimaryScript:    models.ScriptDevanagari,
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out.Matches)
	assert.Equal(t, models.CategoryHealth, out.Matches[0].Category)
}
