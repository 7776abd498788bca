package routelanguagenode

import (
	"context"
	stderrors "errors"
	"testing"
	"time"

	"globalmind/internal/common/errors"
	"globalmind/internal/common/logger"
	"globalmind/internal/models"
	"globalmind/internal/nodes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNode struct {
	id       string
	language models.Language
	result   *models.NodeResult
	err      error
	delay    time.Duration
}

func (s *stubNode) ID() string                { return s.id }
func (s *stubNode) Language() models.Language { return s.language }

func (s *stubNode) Process(ctx context.Context, req *nodes.Request) (*models.NodeResult, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestHandler(t *testing.T, timeout time.Duration, testNodes ...nodes.Node) *Handler {
	t.Helper()
	reg, err := nodes.NewRegistry(testNodes...)
	require.NoError(t, err)
	return NewHandler(reg, timeout, logger.Nop())
}

func TestResolveUsesDetectedLanguage(t *testing.T) {
	hindi := &stubNode{id: "hindi-node", language: models.LanguageHindi}
	english := &stubNode{id: "english-node", language: models.LanguageEnglish}
	h := newTestHandler(t, time.Second, hindi, english)

	node, err := h.Resolve(models.Query{RawText: "दिवाली"}, models.LanguageHindi)
	require.NoError(t, err)
	assert.Equal(t, "hindi-node", node.ID())
}

func TestResolveExplicitOverrideWins(t *testing.T) {
	hindi := &stubNode{id: "hindi-node", language: models.LanguageHindi}
	english := &stubNode{id: "english-node", language: models.LanguageEnglish}
	h := newTestHandler(t, time.Second, hindi, english)

	requested := models.LanguageEnglish
	node, err := h.Resolve(
		models.Query{RawText: "दिवाली कैसे मनाएं", RequestedLanguage: &requested},
		models.LanguageHindi,
	)
	require.NoError(t, err)
	assert.Equal(t, "english-node", node.ID())
}

func TestResolveUnsupportedLanguage(t *testing.T) {
	h := newTestHandler(t, time.Second, &stubNode{id: "hindi-node", language: models.LanguageHindi})

	requested := models.Language("tamil")
	_, err := h.Resolve(models.Query{RawText: "வணக்கம்", RequestedLanguage: &requested}, models.LanguageHindi)
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUnsupportedLanguage, stdErr.Code)
}

func TestResolveLanguageWithoutNode(t *testing.T) {
	h := newTestHandler(t, time.Second, &stubNode{id: "hindi-node", language: models.LanguageHindi})

	_, err := h.Resolve(models.Query{RawText: "hello"}, models.LanguageEnglish)
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeUnsupportedLanguage, stdErr.Code)
}

func TestDispatchSuccess(t *testing.T) {
	want := &models.NodeResult{NodeID: "hindi-node", Intent: models.IntentCulturalGuide, Confidence: 0.8}
	node := &stubNode{id: "hindi-node", language: models.LanguageHindi, result: want}
	h := newTestHandler(t, time.Second, node)

	result, err := h.Dispatch(context.Background(), node, &nodes.Request{})
	require.NoError(t, err)
	assert.Equal(t, want, result)
}

func TestDispatchTimeout(t *testing.T) {
	node := &stubNode{id: "slow-node", language: models.LanguageHindi, delay: 500 * time.Millisecond}
	h := newTestHandler(t, 20*time.Millisecond, node)

	_, err := h.Dispatch(context.Background(), node, &nodes.Request{})
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNodeTimeout, stdErr.Code)
}

func TestDispatchNodeFailure(t *testing.T) {
	node := &stubNode{id: "broken-node", language: models.LanguageHindi, err: stderrors.New("boom")}
	h := newTestHandler(t, time.Second, node)

	_, err := h.Dispatch(context.Background(), node, &nodes.Request{})
	require.Error(t, err)

	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeNodeUnavailable, stdErr.Code)
}
