// Package where resolves the application's filesystem locations.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/constant"
	"github.com/tvdbx/tvdbx/filesystem"
	"github.com/tvdbx/tvdbx/key"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "TVDBX_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory, XDG_CONFIG_HOME or the platform
// equivalent unless TVDBX_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Tvdbx))
}

// Cache is the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Tvdbx))
}

// Logs is the directory log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Downloads is where series bundles are stored. The downloads.path key
// takes precedence over the cache directory.
func Downloads() string {
	if custom := viper.GetString(key.DownloadsPath); custom != "" {
		return ensureDir(custom)
	}
	return ensureDir(filepath.Join(Cache(), "downloads"))
}

// Queries is the search history file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp is a volatile directory for transient artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Tvdbx))
}
