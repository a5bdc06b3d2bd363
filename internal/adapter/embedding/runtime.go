package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vexa/internal/port"
)

// HTTPRuntime talks to a local inference sidecar over HTTP: token ids
// and attention mask in, per-token hidden states and/or a pooled
// embedding out.
type HTTPRuntime struct {
	endpoint string
	client   *http.Client
}

type forwardRequest struct {
	InputIDs      []int64 `json:"input_ids"`
	AttentionMask []int64 `json:"attention_mask"`
	TokenTypeIDs  []int64 `json:"token_type_ids,omitempty"`
}

type forwardResponse struct {
	LastHiddenState [][]float32 `json:"last_hidden_state"`
	Pooled          []float32   `json:"pooled,omitempty"`
	Error           string      `json:"error,omitempty"`
}

// NewHTTPRuntime creates a runtime client for the given forward
// endpoint.
func NewHTTPRuntime(endpoint string) *HTTPRuntime {
	return &HTTPRuntime{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// Forward runs one sequence through the model.
func (r *HTTPRuntime) Forward(ctx context.Context, inputIDs, attentionMask, tokenTypeIDs []int64) (port.RuntimeOutput, error) {
	body, err := json.Marshal(forwardRequest{
		InputIDs:      inputIDs,
		AttentionMask: attentionMask,
		TokenTypeIDs:  tokenTypeIDs,
	})
	if err != nil {
		return port.RuntimeOutput{}, fmt.Errorf("failed to marshal forward request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return port.RuntimeOutput{}, fmt.Errorf("failed to create forward request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return port.RuntimeOutput{}, fmt.Errorf("inference request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return port.RuntimeOutput{}, fmt.Errorf("failed to read inference response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var fr forwardResponse
		if json.Unmarshal(data, &fr) == nil && fr.Error != "" {
			return port.RuntimeOutput{}, fmt.Errorf("inference error (status %d): %s", resp.StatusCode, fr.Error)
		}
		return port.RuntimeOutput{}, fmt.Errorf("inference error: status %d", resp.StatusCode)
	}

	var fr forwardResponse
	if err := json.Unmarshal(data, &fr); err != nil {
		return port.RuntimeOutput{}, fmt.Errorf("failed to parse inference response: %w", err)
	}
	if len(fr.LastHiddenState) == 0 && len(fr.Pooled) == 0 {
		return port.RuntimeOutput{}, fmt.Errorf("inference response contains no hidden states or pooled output")
	}

	return port.RuntimeOutput{
		HiddenStates: fr.LastHiddenState,
		Pooled:       fr.Pooled,
	}, nil
}
