package network

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"sync"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// fingerprintTransport sends https requests with a Chrome ClientHello.
// HTTP/2 is tried first; servers that refuse it are retried over HTTP/1.1.
// Plain http requests go through the wrapped transport unchanged.
type fingerprintTransport struct {
	plain http.RoundTripper

	once sync.Once
	h2   *http2.Transport
	h1   *http.Transport
}

func (t *fingerprintTransport) init() {
	t.h2 = &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			return dialTLS(ctx, network, addr, "h2", "http/1.1")
		},
	}
	t.h1 = &http.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialTLS(ctx, network, addr, "http/1.1")
		},
	}
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.plain.RoundTrip(req)
	}

	t.once.Do(t.init)

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}
	if !replayable(req) {
		return nil, err
	}

	return t.h1.RoundTrip(req.Clone(req.Context()))
}

// dialTLS opens a TLS connection mimicking Chrome's fingerprint and
// advertising the given protocols.
func dialTLS(ctx context.Context, network, addr string, protos ...string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return tlsConn, nil
}
