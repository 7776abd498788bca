// internal/nodes/node.go
package nodes

import (
	"context"

	"globalmind/internal/models"
)

// Request carries everything a language node needs to produce its partial
// result. Nodes never see provider credentials or other nodes' output.
type Request struct {
	Query            models.Query                   `json:"query"`
	Detection        models.LanguageDetectionResult `json:"detection"`
	Intent           models.IntentLabel             `json:"intent"`
	IntentConfidence float64                        `json:"intent_confidence"`
	Matches          []models.CulturalMatch         `json:"matches,omitempty"`
}

// Node is a per-language processing unit. Exactly one node handles each
// query. Implementations must be safe for concurrent use.
type Node interface {
	ID() string
	Language() models.Language
	Process(ctx context.Context, req *Request) (*models.NodeResult, error)
}
