package fetcher

import (
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/hytalemodding/modinit/internal/branding"
)

// DefaultMaxRedirects is the redirect budget for a single download.
const DefaultMaxRedirects = 5

// acceptHeader asks for a binary archive.
const acceptHeader = "application/zip,application/octet-stream"

// Fetcher downloads and extracts template archives.
type Fetcher struct {
	httpClient   *http.Client
	userAgent    string
	maxRedirects int
	logger       *log.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client (useful for testing). The client's
// own redirect policy is ignored; the Fetcher follows redirects itself.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.httpClient = c
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxRedirects sets the redirect budget. Negative values are ignored.
func WithMaxRedirects(n int) Option {
	return func(f *Fetcher) {
		if n >= 0 {
			f.maxRedirects = n
		}
	}
}

// WithLogger sets the logger used for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(f *Fetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// New creates a Fetcher with the given options.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient:   http.DefaultClient,
		userAgent:    branding.UserAgent(""),
		maxRedirects: DefaultMaxRedirects,
		logger:       log.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// noFollow returns a shallow copy of the configured client that hands every
// redirect response back to the caller.
func (f *Fetcher) noFollow() *http.Client {
	c := *f.httpClient
	c.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	return &c
}
