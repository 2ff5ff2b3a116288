// Package web talks to the metadata service: mirror discovery, language
// listing, series search and full series bundles.
package web

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/tvdbx/tvdbx/constant"
	"github.com/tvdbx/tvdbx/document"
	"github.com/tvdbx/tvdbx/log"
	"github.com/tvdbx/tvdbx/model"
	"github.com/tvdbx/tvdbx/network"
	"github.com/tvdbx/tvdbx/where"
)

// ErrOffline is returned when the mirror list cannot be downloaded.
var ErrOffline = errors.New("source seems to be offline")

// Client is a service session bound to one API key.
//
// Lookups return a nil result without error when a required argument is
// missing or the download fails. Only mirror discovery reports transport
// failures.
type Client struct {
	apiKey        string
	rootURL       string
	fileDirectory string
	download      network.Downloader

	defaultMirror atomic.Pointer[model.Mirror]
}

// Option customizes a Client.
type Option func(*Client)

// WithFileDirectory sets where bundles are stored and extracted.
func WithFileDirectory(dir string) Option {
	return func(c *Client) {
		c.fileDirectory = dir
	}
}

// WithDownloader replaces the HTTP downloader.
func WithDownloader(download network.Downloader) Option {
	return func(c *Client) {
		c.download = download
	}
}

// WithRootURL replaces the service root used for mirror discovery.
func WithRootURL(url string) Option {
	return func(c *Client) {
		c.rootURL = strings.TrimSuffix(url, "/")
	}
}

// New returns a client for apiKey.
func New(apiKey string, options ...Option) *Client {
	c := &Client{
		apiKey:   apiKey,
		rootURL:  constant.RootURL,
		download: network.Download,
	}

	for _, option := range options {
		option(c)
	}

	if c.fileDirectory == "" {
		c.fileDirectory = where.Downloads()
	}

	return c
}

// FileDirectory returns where bundles are stored.
func (c *Client) FileDirectory() string {
	return c.fileDirectory
}

// fetch downloads url and returns the container of the response document.
// A transport failure is logged and yields a nil node.
func (c *Client) fetch(ctx context.Context, url string) (*document.Node, error) {
	log.Infof("requesting %s", c.redact(url))

	data, err := c.download(ctx, url)
	if err != nil {
		log.Warnf("request %s failed: %s", c.redact(url), err)
		return nil, nil
	}

	doc, err := document.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.redact(url), err)
	}

	return doc.Container(), nil
}

// redact hides the API key in logged URLs.
func (c *Client) redact(url string) string {
	if c.apiKey == "" {
		return url
	}
	return strings.ReplaceAll(url, c.apiKey, "<key>")
}

type deserializer interface {
	Deserialize(node *document.Node) error
}

// records deserializes every child of container.
func records[R deserializer](container *document.Node, create func() R) ([]R, error) {
	if container == nil {
		return []R{}, nil
	}

	result := make([]R, 0, len(container.Children))
	for _, node := range container.Children {
		record := create()
		if err := record.Deserialize(node); err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	return result, nil
}
