// Package network provides the HTTP client every service request goes through.
package network

import (
	"net/http"
	"sync"
	"time"

	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/key"
)

var (
	client     *http.Client
	clientOnce sync.Once
)

// Client returns the shared HTTP client, built from the network settings on
// first use.
func Client() *http.Client {
	clientOnce.Do(func() {
		client = NewClient()
	})
	return client
}

// NewClient builds a client from the current network settings.
// Idempotent requests are retried; https requests may use a browser TLS
// fingerprint when network.tls_fingerprint is set.
func NewClient() *http.Client {
	var base http.RoundTripper = newTransport()
	if viper.GetBool(key.NetworkTLSFingerprint) {
		base = &fingerprintTransport{plain: base}
	}

	return &http.Client{
		Timeout: time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
		Transport: &Transport{
			Base:      base,
			Retries:   viper.GetInt(key.NetworkRetries),
			UserAgent: viper.GetString(key.NetworkUserAgent),
			Backoff:   250 * time.Millisecond,
		},
	}
}

// newTransport initializes a tuned http.Transport with pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 20
	t.MaxIdleConnsPerHost = 10
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
