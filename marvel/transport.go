package marvel

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/chronoarc/marvel-go/internal/errors"
)

// Transport performs GET requests against the API and returns the raw body
// of successful responses.
type Transport interface {
	Get(ctx context.Context, endpoint string, query url.Values) ([]byte, error)
}

// HTTPTransport is the net/http Transport. It makes exactly one attempt per
// call.
type HTTPTransport struct {
	baseURL      string
	client       *http.Client
	defaultQuery func() url.Values
	logger       zerolog.Logger
}

// NewHTTPTransport builds the default transport from cfg.
func NewHTTPTransport(cfg Config) *HTTPTransport {
	cfg.fillDefaults()
	return &HTTPTransport{
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		client:       cfg.HTTPClient,
		defaultQuery: cfg.DefaultQuery,
		logger:       cfg.Logger.With().Str("component", "transport").Logger(),
	}
}

// Get requests endpoint, a path such as "/comics/42", with query merged over
// the default query.
func (t *HTTPTransport) Get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	u, err := url.Parse(t.baseURL + "/" + strings.TrimLeft(endpoint, "/"))
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("invalid endpoint %q", endpoint), err)
	}

	params := url.Values{}
	if t.defaultQuery != nil {
		for k, v := range t.defaultQuery() {
			params[k] = v
		}
	}
	for k, v := range query {
		params[k] = v
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.NewTransportError("failed to build request", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	res, err := t.client.Do(req)
	if err != nil {
		t.logger.Debug().Str("endpoint", endpoint).Err(err).Msg("request failed")
		return nil, errors.NewTransportError(fmt.Sprintf("GET %s failed", endpoint), err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.NewTransportError(fmt.Sprintf("failed to read response of %s", endpoint), err)
	}

	t.logger.Debug().
		Str("endpoint", endpoint).
		Int("status", res.StatusCode).
		Dur("duration", time.Since(start)).
		Int("bytes", len(body)).
		Msg("request completed")

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return nil, errors.NewAPIError(
			fmt.Sprintf("GET %s returned status %d", endpoint, res.StatusCode),
			newAPIError(res.StatusCode, body),
		)
	}
	return body, nil
}
