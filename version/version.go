package version

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/metafates/gache"
	"github.com/tvdbx/tvdbx/filesystem"
	"github.com/tvdbx/tvdbx/network"
	"github.com/tvdbx/tvdbx/util"
	"github.com/tvdbx/tvdbx/where"
)

// Repository hosts the releases.
const Repository = "tvdbx/tvdbx"

var (
	releaseURL = "https://api.github.com/repos/" + Repository + "/releases/latest"

	cacher     *gache.Cache[string]
	cacherOnce sync.Once
)

func store() *gache.Cache[string] {
	cacherOnce.Do(func() {
		cacher = gache.New[string](&gache.Options{
			Path:       filepath.Join(where.Cache(), "version.json"),
			Lifetime:   time.Hour * 24 * 2,
			FileSystem: &filesystem.GacheFs{},
		})
	})
	return cacher
}

// Latest returns the newest released version without the "v" prefix.
// The answer is cached for two days.
func Latest(ctx context.Context) (string, error) {
	cached, expired, err := store().Get()
	if err == nil && !expired && cached != "" {
		return cached, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, releaseURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := network.Client().Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", &network.HTTPStatusError{URL: releaseURL, StatusCode: resp.StatusCode}
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	version := strings.TrimPrefix(release.TagName, "v")
	_ = store().Set(version)
	return version, nil
}

// ReleaseURL links the release page of version.
func ReleaseURL(version string) string {
	return "https://github.com/" + Repository + "/releases/tag/v" + version
}
