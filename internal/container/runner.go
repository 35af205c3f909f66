package container

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxResponseBytes = 16 << 20

// RunRequest is the payload posted to a container's service endpoint.
type RunRequest struct {
	RequestID      string `json:"request_id"`
	SubscriptionID uint64 `json:"subscription_id"`
	Interval       uint32 `json:"interval"`
	Input          string `json:"input"`
}

// RunResponse is the container's reply. Output must be the 0x-prefixed hex
// encoding of the bytes to submit on chain; anything else fails the request.
type RunResponse struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// Runner executes compute requests against container service endpoints over
// HTTP. The caller bounds execution through the request context.
type Runner struct {
	client *http.Client
}

func NewRunner(requestTimeout time.Duration) *Runner {
	return &Runner{
		client: &http.Client{Timeout: requestTimeout},
	}
}

// Run posts the request to the container endpoint and returns its output.
// An unreachable endpoint, a non-200 reply and a container-reported error all
// come back as errors; the caller decides which status they map to.
func (r *Runner) Run(ctx context.Context, desc Descriptor, req RunRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal run request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, desc.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build run request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("call container %s: %w", desc.Name, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("container %s replied %d", desc.Name, resp.StatusCode)
	}

	var out RunResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode container %s response: %w", desc.Name, err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("container %s: %s", desc.Name, out.Error)
	}
	return out.Output, nil
}
