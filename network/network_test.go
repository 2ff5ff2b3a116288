package network

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func testClient(retries int) *http.Client {
	return &http.Client{
		Timeout: 5 * time.Second,
		Transport: &Transport{
			Base:      newTransport(),
			Retries:   retries,
			UserAgent: "tvdbx/test",
		},
	}
}

func TestDownloader(t *testing.T) {
	Convey("Given a test server", t, func() {
		var hits atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			switch r.URL.Path {
			case "/ok":
				_, _ = w.Write([]byte(r.Header.Get("User-Agent")))
			case "/flaky":
				if hits.Load() < 3 {
					w.WriteHeader(http.StatusBadGateway)
					return
				}
				_, _ = w.Write([]byte("recovered"))
			case "/down":
				w.WriteHeader(http.StatusServiceUnavailable)
			default:
				http.NotFound(w, r)
			}
		}))
		Reset(server.Close)

		download := NewDownloader(testClient(2))
		ctx := context.Background()

		Convey("The body is returned with the user agent set", func() {
			data, err := download(ctx, server.URL+"/ok")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "tvdbx/test")
		})

		Convey("A missing resource is a status error without retries", func() {
			_, err := download(ctx, server.URL+"/missing")

			var status *HTTPStatusError
			So(errors.As(err, &status), ShouldBeTrue)
			So(status.StatusCode, ShouldEqual, http.StatusNotFound)
			So(status.Error(), ShouldEndWith, "404 Not Found")
			So(hits.Load(), ShouldEqual, 1)
		})

		Convey("Server errors are retried", func() {
			data, err := download(ctx, server.URL+"/flaky")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "recovered")
			So(hits.Load(), ShouldEqual, 3)
		})

		Convey("Retries are bounded", func() {
			_, err := download(ctx, server.URL+"/down")

			var status *HTTPStatusError
			So(errors.As(err, &status), ShouldBeTrue)
			So(status.StatusCode, ShouldEqual, http.StatusServiceUnavailable)
			So(hits.Load(), ShouldEqual, 3)
		})

		Convey("Without retries a single attempt is made", func() {
			_, err := NewDownloader(testClient(0))(ctx, server.URL+"/down")
			So(err, ShouldNotBeNil)
			So(hits.Load(), ShouldEqual, 1)
		})

		Convey("Requests with a body are not retried", func() {
			req, _ := http.NewRequest(http.MethodPost, server.URL+"/down", strings.NewReader("x"))
			resp, err := testClient(2).Do(req)
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, http.StatusServiceUnavailable)
			_ = resp.Body.Close()
			So(hits.Load(), ShouldEqual, 1)
		})

		Convey("A canceled context stops the download", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := download(canceled, server.URL+"/ok")
			So(errors.Is(err, context.Canceled), ShouldBeTrue)
		})
	})
}

func TestClient(t *testing.T) {
	Convey("The shared client is built once", t, func() {
		So(Client(), ShouldPointTo, Client())

		transport, ok := Client().Transport.(*Transport)
		So(ok, ShouldBeTrue)
		So(transport.Retries, ShouldBeGreaterThanOrEqualTo, 0)
	})

	Convey("A plain request bypasses the fingerprint transport", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("plain"))
		}))
		Reset(server.Close)

		client := &http.Client{Transport: &fingerprintTransport{plain: newTransport()}}
		data, err := NewDownloader(client)(context.Background(), server.URL)
		So(err, ShouldBeNil)
		So(string(data), ShouldEqual, "plain")
	})
}
