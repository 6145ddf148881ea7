// Package client implements the synchronous cross-service call the
// booking service makes into the load service.  The boundary is kept
// behind an interface so the workflow can be tested against fakes.
package client

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "net/http"
    "time"

    "github.com/BhanuPrakash2047/live-easy/internal/model"
)

// ErrLoadNotFound reports that the referenced load does not exist.
// It is distinct from ErrRemote: a 404 is an answer, not a failure.
var ErrLoadNotFound = errors.New("load not found")

// ErrRemote reports that the load service could not be reached or
// answered with an unexpected status.  The wrapped cause carries the
// transport or status detail.
var ErrRemote = errors.New("load service call failed")

// LoadStatus is the booking workflow's view of the load service.
// Both calls are blocking with a bounded timeout; SetLoadStatus is
// idempotent at the load-status level, so callers may safely retry.
type LoadStatus interface {
    GetLoad(ctx context.Context, loadID string) (*model.Load, error)
    SetLoadStatus(ctx context.Context, loadID string, status model.LoadStatus) (*model.Load, error)
}

// HTTPLoadClient implements LoadStatus over the load service's HTTP
// API.  The base URL points directly at the load service; internal
// calls do not round-trip through the gateway.
type HTTPLoadClient struct {
    base string
    hc   *http.Client
}

// NewHTTPLoadClient returns a client for the load service at base
// with the given per-call timeout.
func NewHTTPLoadClient(base string, timeout time.Duration) *HTTPLoadClient {
    return &HTTPLoadClient{base: base, hc: &http.Client{Timeout: timeout}}
}

// GetLoad fetches a load by id.  404 maps to ErrLoadNotFound, any
// transport error or non-200 status to ErrRemote.
func (c *HTTPLoadClient) GetLoad(ctx context.Context, loadID string) (*model.Load, error) {
    req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/api/load/"+loadID, nil)
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrRemote, err)
    }
    resp, err := c.hc.Do(req)
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrRemote, err)
    }
    defer resp.Body.Close()
    return decodeLoad(resp)
}

// SetLoadStatus asks the load service to move the load to the given
// status.  The call is synchronous and its outcome decides whether
// the enclosing workflow operation succeeds.
func (c *HTTPLoadClient) SetLoadStatus(ctx context.Context, loadID string, status model.LoadStatus) (*model.Load, error) {
    body, err := json.Marshal(map[string]string{"status": string(status)})
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrRemote, err)
    }
    req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.base+"/api/load/"+loadID+"/status", bytes.NewReader(body))
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrRemote, err)
    }
    req.Header.Set("Content-Type", "application/json")
    resp, err := c.hc.Do(req)
    if err != nil {
        return nil, fmt.Errorf("%w: %v", ErrRemote, err)
    }
    defer resp.Body.Close()
    return decodeLoad(resp)
}

func decodeLoad(resp *http.Response) (*model.Load, error) {
    switch {
    case resp.StatusCode == http.StatusNotFound:
        return nil, ErrLoadNotFound
    case resp.StatusCode != http.StatusOK:
        detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
        return nil, fmt.Errorf("%w: status %d: %s", ErrRemote, resp.StatusCode, bytes.TrimSpace(detail))
    }
    var l model.Load
    if err := json.NewDecoder(resp.Body).Decode(&l); err != nil {
        return nil, fmt.Errorf("%w: decode body: %v", ErrRemote, err)
    }
    return &l, nil
}
