package marvel

import (
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public endpoint of the catalog API.
	DefaultBaseURL = "https://gateway.marvel.com/v1/public"
	// DefaultTimeout bounds a single request when no HTTP client is given.
	DefaultTimeout = 30 * time.Second
)

// Config describes a Client. Zero values fall back to defaults.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// HTTPClient replaces the client built from Timeout.
	HTTPClient *http.Client

	// DefaultQuery is called once per request; its values are sent with
	// every call unless the request sets the same parameter. This is where
	// callers inject their credentials.
	DefaultQuery func() url.Values

	// Transport replaces the HTTP transport entirely. BaseURL, Timeout,
	// HTTPClient and DefaultQuery are ignored when it is set.
	Transport Transport

	// Codec decodes responses. Defaults to the package codec.
	Codec *Codec

	Logger *zerolog.Logger
}

// Option adjusts a Config.
type Option func(*Config)

// WithBaseURL sets the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		if baseURL != "" {
			c.BaseURL = baseURL
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Timeout = d
		}
	}
}

// WithHTTPClient sets the HTTP client used by the default transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Config) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithDefaultQuery sets the hook providing parameters sent with every request.
func WithDefaultQuery(fn func() url.Values) Option {
	return func(c *Config) {
		c.DefaultQuery = fn
	}
}

// WithStaticQuery sends the given parameters with every request.
func WithStaticQuery(values url.Values) Option {
	return WithDefaultQuery(func() url.Values {
		out := make(url.Values, len(values))
		for k, v := range values {
			out[k] = append([]string(nil), v...)
		}
		return out
	})
}

// WithTransport replaces the HTTP transport.
func WithTransport(t Transport) Option {
	return func(c *Config) {
		if t != nil {
			c.Transport = t
		}
	}
}

// WithCodec sets the codec responses are decoded with.
func WithCodec(cd *Codec) Option {
	return func(c *Config) {
		if cd != nil {
			c.Codec = cd
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Config) {
		c.Logger = &l
	}
}

func (c *Config) fillDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	if c.Codec == nil {
		c.Codec = defaultCodec
	}
	if c.Logger == nil {
		nop := zerolog.Nop()
		c.Logger = &nop
	}
}
