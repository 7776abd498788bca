// internal/nodes/remote.go
package nodes

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"time"

	commonhttp "globalmind/internal/common/http"
	"globalmind/internal/common/logger"
	"globalmind/internal/models"
)

var (
	ErrRemoteNodeFailed      = stderrors.New("REMOTE_NODE_FAILED")
	ErrRemoteNodeBadResponse = stderrors.New("REMOTE_NODE_BAD_RESPONSE")
)

// RemoteNode proxies a language node running as a separate service. The
// remote endpoint accepts a Request and answers with a NodeResult.
type RemoteNode struct {
	id       string
	language models.Language
	endpoint string
	client   *commonhttp.Client
	logger   logger.Logger
}

func NewRemoteNode(language models.Language, endpoint string, timeout time.Duration, log logger.Logger) *RemoteNode {
	id := fmt.Sprintf("%s-node-remote", language)
	return &RemoteNode{
		id:       id,
		language: language,
		endpoint: endpoint,
		client:   commonhttp.NewClient(timeout),
		logger:   log.With(map[string]interface{}{"node": id}),
	}
}

func (n *RemoteNode) ID() string                { return n.id }
func (n *RemoteNode) Language() models.Language { return n.language }

func (n *RemoteNode) Process(ctx context.Context, req *Request) (*models.NodeResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteNodeFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint+"/process", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteNodeFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteNodeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		n.logger.Warn("remote node returned non-200", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: status %d", ErrRemoteNodeFailed, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteNodeBadResponse, err)
	}

	var result models.NodeResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRemoteNodeBadResponse, err)
	}
	if result.NodeID == "" {
		result.NodeID = n.id
	}
	return &result, nil
}
