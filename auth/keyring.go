// Package auth stores the service API key in the system keyring.
package auth

import (
	"errors"

	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/constant"
	"github.com/tvdbx/tvdbx/key"
	"github.com/zalando/go-keyring"
)

const user = "api-key"

// ErrNoAPIKey is returned by APIKey when neither the config nor the keyring has one.
var ErrNoAPIKey = errors.New("no API key configured, run `" + constant.Tvdbx + " auth set` or set " + key.APIKey)

// SetAPIKey persists apiKey to the keyring.
func SetAPIKey(apiKey string) error {
	return keyring.Set(constant.Tvdbx, user, apiKey)
}

// GetAPIKey reads the key stored in the keyring.
func GetAPIKey() (string, error) {
	return keyring.Get(constant.Tvdbx, user)
}

// DeleteAPIKey removes the stored key.
func DeleteAPIKey() error {
	return keyring.Delete(constant.Tvdbx, user)
}

// APIKey returns the configured key, falling back to the keyring.
func APIKey() (string, error) {
	if apiKey := viper.GetString(key.APIKey); apiKey != "" {
		return apiKey, nil
	}

	apiKey, err := GetAPIKey()
	if errors.Is(err, keyring.ErrNotFound) || (err == nil && apiKey == "") {
		return "", ErrNoAPIKey
	}

	return apiKey, err
}
