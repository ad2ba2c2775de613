// Package laracasts discovers the catalog of laracasts.com.
//
// The site has no API, so topics, series and episodes are scraped from the
// browse pages of a signed-in session. Selectors live in this package only.
package laracasts

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/laradl/laradl/catalog"
	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/network"
	"github.com/laradl/laradl/util"
)

// Credentials identify the account used to sign in.
type Credentials struct {
	Email    string
	Password string
}

// Empty reports whether no account is configured.
func (c Credentials) Empty() bool {
	return c.Email == "" || c.Password == ""
}

// Laracasts is a catalog.Discoverer backed by a site session.
type Laracasts struct {
	base        *url.URL
	client      *http.Client
	credentials Credentials
}

var _ catalog.Discoverer = (*Laracasts)(nil)

// Option configures a Laracasts session.
type Option func(*Laracasts)

// WithClient sets the client used for every page request. Its cookie jar carries the session.
func WithClient(client *http.Client) Option {
	return func(l *Laracasts) {
		if client != nil {
			l.client = client
		}
	}
}

// WithBaseURL points the session at another host.
func WithBaseURL(base *url.URL) Option {
	return func(l *Laracasts) {
		if base != nil {
			l.base = base
		}
	}
}

// New creates a session for credentials. Nothing is requested until Login or a listing call.
func New(credentials Credentials, opts ...Option) *Laracasts {
	base, _ := url.Parse(constant.SiteURL)

	l := &Laracasts{
		base:        base,
		client:      network.Client,
		credentials: credentials,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ParseBaseURL parses a configured base URL, rejecting values without a scheme or host.
func ParseBaseURL(raw string) (*url.URL, error) {
	base, err := url.Parse(strings.TrimRight(raw, "/"))
	if err != nil {
		return nil, err
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", raw)
	}
	return base, nil
}

// BaseURL returns the site root.
func (l *Laracasts) BaseURL() string {
	return l.base.String()
}

// resolve turns an href found on a page into an absolute URL.
func (l *Laracasts) resolve(href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return href
	}
	return l.base.ResolveReference(ref).String()
}

func (l *Laracasts) document(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: pageURL, Status: resp.Status, Code: resp.StatusCode}
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// StatusError is returned when a page answers with a non-200 status.
type StatusError struct {
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("get %s: %s", e.URL, e.Status)
}

// slug returns the last non-empty path segment of href.
func slug(href string) string {
	if u, err := url.Parse(href); err == nil {
		href = u.Path
	}
	href = strings.TrimRight(href, "/")
	if i := strings.LastIndex(href, "/"); i >= 0 {
		return href[i+1:]
	}
	return href
}
