package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/key"
	"github.com/zalando/go-keyring"
)

func TestAPIKey(t *testing.T) {
	Convey("Given a mock keyring", t, func() {
		keyring.MockInit()
		viper.Set(key.APIKey, "")
		Reset(func() { viper.Set(key.APIKey, "") })

		Convey("Without any key an error is reported", func() {
			_, err := APIKey()
			So(err, ShouldEqual, ErrNoAPIKey)
		})

		Convey("A stored key is returned", func() {
			So(SetAPIKey("0123456789ABCDEF"), ShouldBeNil)
			apiKey, err := APIKey()
			So(err, ShouldBeNil)
			So(apiKey, ShouldEqual, "0123456789ABCDEF")

			Convey("The config takes precedence", func() {
				viper.Set(key.APIKey, "FEDCBA9876543210")
				apiKey, err := APIKey()
				So(err, ShouldBeNil)
				So(apiKey, ShouldEqual, "FEDCBA9876543210")
			})

			Convey("A deleted key is gone", func() {
				So(DeleteAPIKey(), ShouldBeNil)
				_, err := APIKey()
				So(err, ShouldEqual, ErrNoAPIKey)
			})
		})
	})
}
