package network

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// chromeTransport mimics Chrome's Client Hello so that bot protection in front of the catalog
// accepts the session. HTTPS goes through HTTP/2 first and falls back to a forced HTTP/1.1
// handshake when the server refuses h2. Plain HTTP uses the standard transport.
type chromeTransport struct {
	h2    http.RoundTripper
	h1    http.RoundTripper
	plain http.RoundTripper
}

// dialError marks a failure before any request byte reached the server.
// Only these are retried over HTTP/1.1.
type dialError struct {
	err error
}

func (e *dialError) Error() string { return e.err.Error() }

func (e *dialError) Unwrap() error { return e.err }

func newChromeTransport() *chromeTransport {
	h1 := newTransport()
	h1.DialTLSContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
		conn, err := dialChrome(ctx, network, addr, []string{"http/1.1"})
		if err != nil {
			return nil, err
		}
		return conn, nil
	}

	return &chromeTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				conn, err := dialChrome(ctx, network, addr, nil)
				if err != nil {
					return nil, err
				}
				if proto := conn.ConnectionState().NegotiatedProtocol; proto != http2.NextProtoTLS {
					conn.Close()
					return nil, &dialError{fmt.Errorf("alpn: server selected %q", proto)}
				}
				return conn, nil
			},
		},
		h1:    h1,
		plain: newTransport(),
	}
}

func (t *chromeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil || !errors.As(err, new(*dialError)) {
		return resp, err
	}

	retry := req.Clone(req.Context())
	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, err
		}
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, bodyErr
		}
		retry.Body = body
	}

	return t.h1.RoundTrip(retry)
}

// dialChrome opens a TLS connection with the Chrome 120 fingerprint.
// nextProtos overrides ALPN; nil keeps Chrome's own h2 + http/1.1 advertisement.
// Every error it returns is a *dialError.
func dialChrome(ctx context.Context, network, addr string, nextProtos []string) (*utls.UConn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, &dialError{err}
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: nextProtos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, &dialError{fmt.Errorf("tls handshake: %w", err)}
	}

	return tlsConn, nil
}
