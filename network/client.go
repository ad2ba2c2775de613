// Package network provides the pre-configured HTTP client shared by catalog discovery, manifest resolution and transfers.
package network

import (
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/laradl/laradl/constant"
	"github.com/samber/lo"
	"golang.org/x/net/publicsuffix"
)

// Client is the default client used when a component is not handed one explicitly.
var Client = New()

type options struct {
	userAgent string
	spoofTLS  bool
	jar       http.CookieJar
}

// Option configures a client built by New.
type Option func(*options)

// WithUserAgent sets the User-Agent header added to requests that do not carry one.
func WithUserAgent(ua string) Option {
	return func(o *options) {
		if ua != "" {
			o.userAgent = ua
		}
	}
}

// WithSpoofedTLS routes HTTPS requests through a transport presenting a Chrome TLS fingerprint.
func WithSpoofedTLS(enabled bool) Option {
	return func(o *options) {
		o.spoofTLS = enabled
	}
}

// WithJar replaces the session cookie jar.
func WithJar(jar http.CookieJar) Option {
	return func(o *options) {
		o.jar = jar
	}
}

// New creates a client with a cookie jar and the configured transport.
// The client has no overall timeout: media bodies can take arbitrarily long to stream.
// Only the wait for response headers is bounded.
func New(opts ...Option) *http.Client {
	o := &options{userAgent: constant.UserAgent}
	for _, opt := range opts {
		opt(o)
	}

	if o.jar == nil {
		o.jar = lo.Must(cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List}))
	}

	var base http.RoundTripper = newTransport()
	if o.spoofTLS {
		base = newChromeTransport()
	}

	return &http.Client{
		Jar: o.jar,
		Transport: &userAgentTransport{
			userAgent: o.userAgent,
			base:      base,
		},
	}
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters suited to sequential scraping.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}

type userAgentTransport struct {
	userAgent string
	base      http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.base.RoundTrip(req)
}
