package network

import (
	"errors"
	"net/http"
	"time"

	"github.com/tvdbx/tvdbx/log"
)

// Transport adds a User-Agent and bounded retries to a base round tripper.
//
// Only replayable requests are retried: GET and HEAD without a body. A
// request is retried after a transport error or a 5xx response.
type Transport struct {
	Base http.RoundTripper

	// Retries is the number of attempts after the first one.
	Retries int

	// UserAgent is set on requests that carry none.
	UserAgent string

	// Backoff is the pause before the first retry. It grows linearly.
	Backoff time.Duration
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	retries := max(t.Retries, 0)
	if !replayable(req) {
		retries = 0
	}

	var (
		resp *http.Response
		err  error
	)
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			log.Debugf("retrying %s %s (attempt %d)", req.Method, req.URL, attempt+1)
			if !sleep(req, time.Duration(attempt)*t.Backoff) {
				return nil, req.Context().Err()
			}
		}

		r := req.Clone(req.Context())
		if r.Header.Get("User-Agent") == "" && t.UserAgent != "" {
			r.Header.Set("User-Agent", t.UserAgent)
		}

		resp, err = base.RoundTrip(r)
		if err == nil && resp.StatusCode < http.StatusInternalServerError {
			return resp, nil
		}
		if req.Context().Err() != nil {
			break
		}
		if err == nil && attempt < retries {
			_ = resp.Body.Close()
		}
	}

	return resp, err
}

func replayable(req *http.Request) bool {
	return (req.Method == http.MethodGet || req.Method == http.MethodHead) &&
		(req.Body == nil || req.Body == http.NoBody)
}

// sleep waits for d and reports false if the request was canceled meanwhile.
func sleep(req *http.Request, d time.Duration) bool {
	if d <= 0 {
		return req.Context().Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-req.Context().Done():
		return false
	}
}
