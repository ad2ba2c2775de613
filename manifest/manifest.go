// Package manifest resolves the direct media URL of a video from the player page embedding it.
//
// The player page carries its configuration inline as a script assignment. The object is
// located textually, parsed as JSON, and its progressive renditions are searched for the
// best quality below the configured ceiling.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/log"
	"github.com/laradl/laradl/network"
	"github.com/laradl/laradl/util"
	"github.com/samber/mo"
	"github.com/tidwall/gjson"
)

var (
	// ErrManifestNotFound means the page does not embed a player config object.
	ErrManifestNotFound = errors.New("manifest not found")
	// ErrManifestMalformed means the located object is not valid JSON.
	ErrManifestMalformed = errors.New("manifest malformed")
	// ErrNoVariants means the manifest lists no progressive renditions.
	ErrNoVariants = errors.New("manifest has no progressive variants")
)

// progressivePath is the gjson path of the rendition list inside the player config.
const progressivePath = "request.files.progressive"

// Resolver fetches player pages and picks a rendition.
type Resolver struct {
	client     *http.Client
	referer    string
	maxQuality int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithReferer sets the Referer header sent with the page request.
func WithReferer(referer string) Option {
	return func(r *Resolver) {
		r.referer = referer
	}
}

// WithMaxQuality sets the quality ceiling. Non-positive values keep the default.
func WithMaxQuality(height int) Option {
	return func(r *Resolver) {
		if height > 0 {
			r.maxQuality = height
		}
	}
}

// New creates a resolver using client, or the shared network client when nil.
func New(client *http.Client, opts ...Option) *Resolver {
	if client == nil {
		client = network.Client
	}
	r := &Resolver{
		client:     client,
		referer:    constant.DefaultReferer,
		maxQuality: constant.DefaultMaxQuality,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MaxQuality returns the ceiling the resolver selects under.
func (r *Resolver) MaxQuality() int {
	return r.maxQuality
}

// Resolve returns the direct URL of the best rendition of the video embedded at pageURL.
// An absent result means the manifest is valid but every rendition exceeds the ceiling.
func (r *Resolver) Resolve(ctx context.Context, pageURL string) (mo.Option[string], error) {
	variants, err := r.Variants(ctx, pageURL)
	if err != nil {
		return mo.None[string](), err
	}

	selected := Select(variants, r.maxQuality)
	log.Debugf("manifest %s: %d variants, ceiling %d, selected %t", pageURL, len(variants), r.maxQuality, selected.IsPresent())
	return selected, nil
}

// Variants fetches pageURL and returns its renditions in page order.
func (r *Resolver) Variants(ctx context.Context, pageURL string) ([]Variant, error) {
	page, err := r.fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	variants, err := Parse(page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", pageURL, err)
	}
	return variants, nil
}

func (r *Resolver) fetch(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create page request: %w", err)
	}
	if r.referer != "" {
		req.Header.Set("Referer", r.referer)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get player page: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("get player page %s: %s", pageURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read player page: %w", err)
	}
	return body, nil
}

// Parse extracts the progressive renditions from a raw player page.
// Renditions without a URL are dropped.
func Parse(page []byte) ([]Variant, error) {
	raw := locate(page, configAnchor, configTrailer)
	if raw == nil {
		return nil, ErrManifestNotFound
	}

	if !gjson.ValidBytes(raw) {
		return nil, ErrManifestMalformed
	}

	list := gjson.GetBytes(raw, progressivePath)
	if !list.IsArray() {
		return nil, ErrNoVariants
	}

	var variants []Variant
	list.ForEach(func(_, value gjson.Result) bool {
		v := Variant{
			Height: int(value.Get("height").Int()),
			URL:    value.Get("url").String(),
		}
		if v.URL != "" {
			variants = append(variants, v)
		}
		return true
	})

	if len(variants) == 0 {
		return nil, ErrNoVariants
	}
	return variants, nil
}
