// Package transfer streams a resolved video to disk while reporting progress.
package transfer

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/laradl/laradl/constant"
	"github.com/laradl/laradl/filesystem"
	"github.com/laradl/laradl/log"
	"github.com/laradl/laradl/network"
	"github.com/laradl/laradl/util"
	"github.com/samber/mo"
)

// chunkSize is the buffer used to copy the body, one event is emitted per chunk.
const chunkSize = 32 * 1024

// defaultExtension is used when the response does not carry a usable content type.
const defaultExtension = "bin"

// Resolver turns a player page into a direct media URL.
type Resolver interface {
	Resolve(ctx context.Context, pageURL string) (mo.Option[string], error)
}

// Request describes one episode to download.
type Request struct {
	// SourceURL is the player page embedding the video.
	SourceURL string
	// TargetDirectory is where the file is written.
	TargetDirectory string
	// TargetBaseName is the file name without extension. It is sanitized before use.
	TargetBaseName string
	// Force re-downloads even when the target already has the expected size.
	Force bool
}

// Engine downloads requests one at a time.
type Engine struct {
	resolver Resolver
	client   *http.Client
	referer  string
	hook     func(State)
	state    State
}

// Option configures an Engine.
type Option func(*Engine)

// WithClient sets the client used for the media request.
func WithClient(client *http.Client) Option {
	return func(e *Engine) {
		if client != nil {
			e.client = client
		}
	}
}

// WithReferer sets the Referer header sent with the media request.
func WithReferer(referer string) Option {
	return func(e *Engine) {
		e.referer = referer
	}
}

// WithStateHook registers a function called on every state transition.
func WithStateHook(hook func(State)) Option {
	return func(e *Engine) {
		e.hook = hook
	}
}

// New creates an engine resolving pages with resolver.
func New(resolver Resolver, opts ...Option) *Engine {
	e := &Engine{
		resolver: resolver,
		client:   network.Client,
		referer:  constant.DefaultReferer,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the state of the most recent transfer.
func (e *Engine) State() State {
	return e.state
}

func (e *Engine) transition(s State) {
	log.Debugf("transfer state %s -> %s", e.state, s)
	e.state = s
	if e.hook != nil {
		e.hook(s)
	}
}

func (e *Engine) fail(err error) error {
	e.transition(Failed)
	return err
}

// Download resolves req.SourceURL and streams the selected rendition to disk.
// Every event of the transfer goes to sink. A non-nil error always means the transfer failed.
func (e *Engine) Download(ctx context.Context, req Request, sink Sink) error {
	if sink == nil {
		sink = Discard
	}
	e.state = Pending

	e.transition(Resolving)
	resolved, err := e.resolver.Resolve(ctx, req.SourceURL)
	if err != nil {
		return e.fail(fmt.Errorf("resolve %s: %w", req.SourceURL, err))
	}

	mediaURL, ok := resolved.Get()
	if !ok {
		return e.fail(fmt.Errorf("resolve %s: %w", req.SourceURL, ErrNoQualifyingVariant))
	}

	resp, err := e.get(ctx, mediaURL)
	if err != nil {
		return e.fail(err)
	}
	defer util.Ignore(resp.Body.Close)

	total := resp.ContentLength
	name := util.SanitizeFilename(req.TargetBaseName) + "." + Extension(resp.Header.Get("Content-Type"))
	path := filepath.Join(req.TargetDirectory, name)

	entry := log.WithFields(log.Fields{
		"file": path,
		"size": total,
	})

	if !req.Force && e.complete(path, total) {
		e.transition(Skipped)
		entry.WithField("state", Skipped).Info("skipping, file already downloaded")
		sink.Accept(Event{
			Skipped:  true,
			Delta:    total,
			Total:    total,
			FileName: name,
			FilePath: path,
		})
		return nil
	}

	e.transition(Streaming)
	entry.WithField("state", Streaming).Info("downloading")

	if err := e.stream(resp.Body, path, name, total, sink); err != nil {
		entry.WithField("state", Failed).Errorf("download failed: %v", err)
		return e.fail(err)
	}

	e.transition(Completed)
	entry.WithField("state", Completed).Info("downloaded")
	return nil
}

func (e *Engine) get(ctx context.Context, mediaURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create media request: %w", err)
	}
	if e.referer != "" {
		req.Header.Set("Referer", e.referer)
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, &TransferError{Op: "get", Path: mediaURL, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		util.Ignore(resp.Body.Close)
		return nil, &TransferError{Op: "get", Path: mediaURL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}
	return resp, nil
}

// complete reports whether path already holds exactly total bytes.
func (e *Engine) complete(path string, total int64) bool {
	if total < 0 {
		return false
	}

	info, err := filesystem.API().Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir() && info.Size() == total
}

func (e *Engine) stream(body io.Reader, path, name string, total int64, sink Sink) (err error) {
	file, err := filesystem.API().OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return &TransferError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = &TransferError{Op: "close", Path: path, Err: cerr}
		}
	}()

	var (
		buf     = make([]byte, chunkSize)
		written int64
	)

	for {
		nr, rerr := body.Read(buf)
		if nr > 0 {
			nw, werr := file.Write(buf[:nr])
			if nw > 0 {
				written += int64(nw)
				sink.Accept(Event{
					Delta:    int64(nw),
					Total:    total,
					FileName: name,
					FilePath: path,
				})
			}
			if werr != nil {
				return &TransferError{Op: "write", Path: path, Err: werr}
			}
			if nw != nr {
				return &TransferError{Op: "write", Path: path, Err: io.ErrShortWrite}
			}
		}

		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return &TransferError{Op: "read", Path: path, Err: rerr}
		}
	}

	if total >= 0 && written != total {
		return &TransferError{Op: "read", Path: path, Err: fmt.Errorf("got %d of %d bytes: %w", written, total, io.ErrUnexpectedEOF)}
	}
	return nil
}

// Extension derives a file extension from a Content-Type header value.
// "video/mp4; codecs=avc1" gives "mp4". Values without a subtype give "bin".
func Extension(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = strings.TrimSpace(strings.Split(contentType, ";")[0])
	}

	_, subtype, found := strings.Cut(mediaType, "/")
	subtype = util.SanitizeFilename(subtype)
	if !found || subtype == "" {
		return defaultExtension
	}
	return strings.ToLower(subtype)
}
