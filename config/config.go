// Package config wires viper to the application's defaults, environment and TOML config file.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/constant"
	"github.com/tvdbx/tvdbx/filesystem"
	"github.com/tvdbx/tvdbx/where"
)

// EnvKeyReplacer maps dotted config keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup registers defaults and env bindings, then reads tvdbx.toml when present.
// A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.Tvdbx)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Tvdbx)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}

// Path returns the location of the TOML config file, whether or not it exists.
func Path() string {
	return filepath.Join(where.Config(), constant.Tvdbx+".toml")
}
