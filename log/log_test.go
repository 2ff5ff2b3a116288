package log

import (
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/tvdbx/tvdbx/filesystem"
	"github.com/tvdbx/tvdbx/key"
	"github.com/tvdbx/tvdbx/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging configuration", t, func() {
		Reset(func() {
			viper.Set(key.LogsWrite, false)
			enabled = false
		})

		Convey("When logging is disabled nothing is written", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeFalse)
			Info("dropped")
		})

		Convey("When logging is enabled messages reach the dated file", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsJson, true)
			viper.Set(key.LogsLevel, "debug")
			So(Setup(), ShouldBeNil)
			So(Enabled(), ShouldBeTrue)

			Debugf("fetched %d mirrors", 3)

			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			data, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldContainSubstring, "fetched 3 mirrors")
		})
	})
}
