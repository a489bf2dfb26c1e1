package marvel

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/chronoarc/marvel-go/internal/codec"
)

// Client calls the catalog API and decodes its responses into typed data
// wrappers. A Client is safe for concurrent use.
type Client struct {
	cfg       Config
	transport Transport
	codec     *Codec
	logger    zerolog.Logger
}

// NewClient creates a client. Without options it talks to DefaultBaseURL
// with no default query, so callers normally pass WithDefaultQuery to supply
// credentials.
func NewClient(opts ...Option) *Client {
	var cfg Config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	cfg.fillDefaults()

	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport(cfg)
	}

	return &Client{
		cfg:       cfg,
		transport: transport,
		codec:     cfg.Codec,
		logger:    cfg.Logger.With().Str("component", "client").Logger(),
	}
}

// BaseURL returns the base URL the default transport targets.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// Codec returns the codec responses are decoded with.
func (c *Client) Codec() *Codec {
	return c.codec
}

// Raw requests endpoint and returns the undecoded body.
func (c *Client) Raw(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	return c.transport.Get(ctx, endpoint, query)
}

func (c *Client) Characters() *CharacterResource { return &CharacterResource{c: c} }
func (c *Client) Comics() *ComicResource         { return &ComicResource{c: c} }
func (c *Client) Creators() *CreatorResource     { return &CreatorResource{c: c} }
func (c *Client) Events() *EventResource         { return &EventResource{c: c} }
func (c *Client) Series() *SeriesResource        { return &SeriesResource{c: c} }
func (c *Client) Stories() *StoryResource        { return &StoryResource{c: c} }

// fetch requests endpoint and decodes the body into a *T.
func fetch[T any, PT ptrObject[T]](ctx context.Context, c *Client, endpoint string, q any) (PT, error) {
	values, err := Values(q)
	if err != nil {
		return nil, err
	}
	body, err := c.Raw(ctx, endpoint, values)
	if err != nil {
		return nil, err
	}
	out, err := codec.DecodeBytes[T, PT](c.codec, body)
	if err != nil {
		c.logger.Debug().Str("endpoint", endpoint).Err(err).Msg("failed to decode response")
		return nil, err
	}
	return out, nil
}

func path(collection string, id int, sub ...string) string {
	p := fmt.Sprintf("/%s/%d", collection, id)
	for _, s := range sub {
		p += "/" + s
	}
	return p
}
