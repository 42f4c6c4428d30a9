package randomuser

import (
	"context"
	_ "embed"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	rhttp "github.com/wesleyorama2/randomuser/internal/http"
	"github.com/wesleyorama2/randomuser/internal/schema"
)

// DefaultBaseURL is the versioned endpoint of the public randomuser.me API.
const DefaultBaseURL = "https://randomuser.me/api/1.4/"

//go:embed result.schema.json
var resultSchemaSource []byte

var resultSchema = sync.OnceValues(func() (*schema.Schema, error) {
	return schema.Compile("result.schema.json", resultSchemaSource)
})

type config struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	headers    map[string]string
	httpClient *http.Client
	logger     *slog.Logger
	validate   bool
}

// Option configures a Generator.
type Option func(*config)

// WithBaseURL points the generator at another endpoint, e.g. a test server.
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

// WithTimeout bounds each round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *config) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *config) {
		c.userAgent = ua
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *config) {
		c.headers[key] = value
	}
}

// WithHTTPClient supplies the net/http client used as transport.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for debug traces of each request.
// Errors are returned, never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithSchemaValidation toggles validation of every successful payload
// against the full record schema before decoding. It is on by default; with
// it off, only the envelope shape is checked and missing record fields decode
// as zero values.
func WithSchemaValidation(enabled bool) Option {
	return func(c *config) {
		c.validate = enabled
	}
}

// Generator fetches users. It holds one reusable transport and is safe for
// concurrent use; every fetch is an independent round trip.
type Generator struct {
	client     *rhttp.Client
	logger     *slog.Logger
	validate   bool
	pickGender func() Gender
}

// NewGenerator creates a generator for DefaultBaseURL unless overridden.
func NewGenerator(opts ...Option) *Generator {
	cfg := &config{
		baseURL:  DefaultBaseURL,
		timeout:  rhttp.DefaultTimeout,
		headers:  make(map[string]string),
		validate: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	clientOpts := []rhttp.ClientOption{
		rhttp.WithBaseURL(cfg.baseURL),
		rhttp.WithTimeout(cfg.timeout),
		rhttp.WithHeader("Accept", "application/json, text/plain"),
	}
	if cfg.userAgent != "" {
		clientOpts = append(clientOpts, rhttp.WithHeader("User-Agent", cfg.userAgent))
	}
	for k, v := range cfg.headers {
		clientOpts = append(clientOpts, rhttp.WithHeader(k, v))
	}
	if cfg.httpClient != nil {
		clientOpts = append(clientOpts, rhttp.WithHTTPClient(cfg.httpClient))
	}

	return &Generator{
		client:     rhttp.NewClient(clientOpts...),
		logger:     cfg.logger,
		validate:   cfg.validate,
		pickGender: RandomGender,
	}
}

// BaseURL returns the endpoint requests are sent to.
func (g *Generator) BaseURL() string {
	return g.client.BaseURL()
}

// Get starts a request with no filters.
func (g *Generator) Get() Builder {
	return Builder{gen: g}
}

// Fetch returns n unfiltered users.
func (g *Generator) Fetch(ctx context.Context, n int) ([]User, error) {
	return g.Get().Fetch(ctx, n)
}

// FetchOne returns a single unfiltered user.
func (g *Generator) FetchOne(ctx context.Context) (User, error) {
	return g.Get().FetchOne(ctx)
}

// FetchWithInfo returns n unfiltered users along with the batch info.
func (g *Generator) FetchWithInfo(ctx context.Context, n int) (*Result, error) {
	return g.Get().FetchWithInfo(ctx, n)
}
