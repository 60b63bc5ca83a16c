package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"backendservice/internal/model"
)

// ErrUnresolvable is returned when the endpoint does not yield an asset.
var ErrUnresolvable = errors.New("asset could not be resolved")

// AssetResolver resolves the asset reference of an inbound transfer request.
type AssetResolver interface {
	Resolve(ctx context.Context, req model.TransferRequest) (string, error)
}

// HTTPResolver resolves assets by calling the transfer endpoint.
// The asset reference is the final URL the endpoint answered from, after redirects.
type HTTPResolver struct {
	client *http.Client
}

// NewHTTPResolver builds a resolver whose requests are traced and bounded by timeout.
func NewHTTPResolver(timeout time.Duration) *HTTPResolver {
	return &HTTPResolver{
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

var _ AssetResolver = (*HTTPResolver)(nil)

// Resolve issues GET endpoint, sending "authKey: authCode" when an auth key is given.
func (r *HTTPResolver) Resolve(ctx context.Context, req model.TransferRequest) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.Endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrUnresolvable, err)
	}
	if req.AuthKey != "" {
		httpReq.Header.Set(req.AuthKey, req.AuthCode)
	}

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnresolvable, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: endpoint returned %d", ErrUnresolvable, resp.StatusCode)
	}
	return resp.Request.URL.String(), nil
}
