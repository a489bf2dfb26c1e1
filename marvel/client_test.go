package marvel

import (
	"bytes"
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chronoarc/marvel-go/internal/errors"
)

type recordedRequest struct {
	path  string
	query url.Values
}

func newTestServer(t *testing.T, status int, body []byte) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var (
		mu       sync.Mutex
		requests []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests = append(requests, recordedRequest{path: r.URL.Path, query: r.URL.Query()})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write(body)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]recordedRequest(nil), requests...)
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient()
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Same(t, DefaultCodec(), c.Codec())
	assert.Equal(t, DefaultTimeout, c.cfg.Timeout)
	assert.Equal(t, DefaultTimeout, c.cfg.HTTPClient.Timeout)

	c = NewClient(WithBaseURL("http://localhost:9999/v1/public"), WithTimeout(time.Second), nil)
	assert.Equal(t, "http://localhost:9999/v1/public", c.BaseURL())
	assert.Equal(t, time.Second, c.cfg.HTTPClient.Timeout)
}

func TestClient_ComicsGet(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusOK, loadComicPayload(t))

	c := NewClient(
		WithBaseURL(srv.URL+"/v1/public/"),
		WithStaticQuery(url.Values{"apikey": {"public"}, "ts": {"1"}}),
	)

	wrapper, err := c.Comics().Get(context.Background(), 21464)
	require.NoError(t, err)
	require.Len(t, wrapper.Data.Results, 1)
	assert.Equal(t, "Ultimate Spider-Man (2000) #110", *wrapper.Data.Results[0].Title)

	reqs := requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/v1/public/comics/21464", reqs[0].path)
	assert.Equal(t, "public", reqs[0].query.Get("apikey"))
	assert.Equal(t, "1", reqs[0].query.Get("ts"))
}

func TestClient_SubCollectionQuery(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusOK, []byte(`{"code": 200, "data": {"count": 0, "results": []}}`))

	calls := 0
	c := NewClient(
		WithBaseURL(srv.URL),
		WithDefaultQuery(func() url.Values {
			calls++
			return url.Values{"apikey": {"public"}, "limit": {"5"}}
		}),
	)

	wrapper, err := c.Characters().Comics(context.Background(), 1009610, &ComicQuery{
		Format:  Ptr(FormatComic),
		OrderBy: []OrderBy{OrderByOnsaleDateDesc},
		Limit:   Ptr(20),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, *wrapper.Data.Count)
	assert.Empty(t, wrapper.Data.Results)
	assert.Equal(t, 1, calls)

	reqs := requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/characters/1009610/comics", reqs[0].path)
	assert.Equal(t, "comic", reqs[0].query.Get("format"))
	assert.Equal(t, "-onsaleDate", reqs[0].query.Get("orderBy"))
	assert.Equal(t, "20", reqs[0].query.Get("limit"))
	assert.Equal(t, "public", reqs[0].query.Get("apikey"))
}

func TestClient_ResourceEndpoints(t *testing.T) {
	srv, requests := newTestServer(t, http.StatusOK, []byte(`{"code": 200}`))
	c := NewClient(WithBaseURL(srv.URL))
	ctx := context.Background()

	calls := []struct {
		path string
		call func() error
	}{
		{"/characters", func() error { _, err := c.Characters().List(ctx, nil); return err }},
		{"/characters/1/events", func() error { _, err := c.Characters().Events(ctx, 1, nil); return err }},
		{"/characters/1/series", func() error { _, err := c.Characters().Series(ctx, 1, nil); return err }},
		{"/characters/1/stories", func() error { _, err := c.Characters().Stories(ctx, 1, nil); return err }},
		{"/comics", func() error { _, err := c.Comics().List(ctx, nil); return err }},
		{"/comics/2/characters", func() error { _, err := c.Comics().Characters(ctx, 2, nil); return err }},
		{"/comics/2/creators", func() error { _, err := c.Comics().Creators(ctx, 2, nil); return err }},
		{"/comics/2/events", func() error { _, err := c.Comics().Events(ctx, 2, nil); return err }},
		{"/comics/2/stories", func() error { _, err := c.Comics().Stories(ctx, 2, nil); return err }},
		{"/creators/3", func() error { _, err := c.Creators().Get(ctx, 3); return err }},
		{"/creators/3/comics", func() error { _, err := c.Creators().Comics(ctx, 3, nil); return err }},
		{"/creators/3/series", func() error { _, err := c.Creators().Series(ctx, 3, nil); return err }},
		{"/events/4", func() error { _, err := c.Events().Get(ctx, 4); return err }},
		{"/events/4/creators", func() error { _, err := c.Events().Creators(ctx, 4, nil); return err }},
		{"/series", func() error { _, err := c.Series().List(ctx, nil); return err }},
		{"/series/5/comics", func() error { _, err := c.Series().Comics(ctx, 5, nil); return err }},
		{"/stories/6", func() error { _, err := c.Stories().Get(ctx, 6); return err }},
		{"/stories/6/events", func() error { _, err := c.Stories().Events(ctx, 6, nil); return err }},
		{"/stories/6/series", func() error { _, err := c.Stories().Series(ctx, 6, nil); return err }},
	}

	for _, call := range calls {
		require.NoError(t, call.call(), call.path)
	}

	reqs := requests()
	require.Len(t, reqs, len(calls))
	for i, call := range calls {
		assert.Equal(t, call.path, reqs[i].path)
	}
}

func TestClient_APIError(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantCode   string
		wantDetail string
	}{
		{
			name:       "string code",
			status:     http.StatusUnauthorized,
			body:       `{"code": "InvalidCredentials", "message": "The passed API key is invalid."}`,
			wantCode:   "InvalidCredentials",
			wantDetail: "The passed API key is invalid.",
		},
		{
			name:       "numeric code",
			status:     http.StatusConflict,
			body:       `{"code": 409, "status": "You must provide a user key."}`,
			wantCode:   "409",
			wantDetail: "You must provide a user key.",
		},
		{
			name:   "non-json body",
			status: http.StatusBadGateway,
			body:   `<html>bad gateway</html>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, []byte(tt.body))
			c := NewClient(WithBaseURL(srv.URL))

			_, err := c.Series().Get(context.Background(), 1)
			require.Error(t, err)

			var appErr *Error
			require.True(t, stderrors.As(err, &appErr))
			assert.Equal(t, errors.ErrorTypeAPI, appErr.Type)

			var apiErr *APIError
			require.True(t, stderrors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, []byte(tt.body), apiErr.RawBody)
			if tt.wantDetail != "" {
				assert.Contains(t, apiErr.Error(), tt.wantDetail)
			}
		})
	}
}

func TestClient_TransportError(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, nil)
	srv.Close()

	c := NewClient(WithBaseURL(srv.URL))
	_, err := c.Stories().List(context.Background(), nil)
	require.Error(t, err)

	var appErr *Error
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorTypeTransport, appErr.Type)
}

func TestClient_DecodeErrorIsReturned(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, []byte(`{"data": {"results": [{"format": "Pamphlet"}]}}`))

	var logs bytes.Buffer
	c := NewClient(WithBaseURL(srv.URL), WithLogger(zerolog.New(&logs).Level(zerolog.DebugLevel)))

	_, err := c.Comics().List(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrUnknownEnumValue))
	assert.Contains(t, logs.String(), `"endpoint":"/comics"`)
	assert.Contains(t, logs.String(), `"status":200`)
}

type stubTransport struct {
	endpoint string
	query    url.Values
	body     []byte
}

func (s *stubTransport) Get(_ context.Context, endpoint string, query url.Values) ([]byte, error) {
	s.endpoint = endpoint
	s.query = query
	return s.body, nil
}

func TestClient_CustomTransport(t *testing.T) {
	stub := &stubTransport{body: []byte(`{"code": 200, "data": {"results": [{"id": 30, "fullName": "Stan Lee"}]}}`)}
	c := NewClient(WithTransport(stub))

	wrapper, err := c.Creators().List(context.Background(), &CreatorQuery{LastName: Ptr("Lee")})
	require.NoError(t, err)
	assert.Equal(t, "Stan Lee", *wrapper.Data.Results[0].FullName)
	assert.Equal(t, "/creators", stub.endpoint)
	assert.Equal(t, "Lee", stub.query.Get("lastName"))
}

func TestClient_ContextCanceled(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, []byte(`{}`))
	c := NewClient(WithBaseURL(srv.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Events().List(ctx, nil)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, context.Canceled))
}
