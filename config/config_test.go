package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vkgrab-cli/vkgrab/filesystem"
	"github.com/vkgrab-cli/vkgrab/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("downloads.chunk_size")
			So(result, ShouldEqual, "downloads_chunk_size")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Field", t, func() {
		Convey("Env name should carry the application prefix", func() {
			f := Default[key.DownloadsChunkSize]
			So(f.Env(), ShouldEqual, "VKGRAB_DOWNLOADS_CHUNK_SIZE")
		})

		Convey("Every registered field should describe itself", func() {
			for _, f := range Default {
				So(f.Description, ShouldNotBeEmpty)
				So(f.Key, ShouldNotBeEmpty)
			}
		})
	})
}
