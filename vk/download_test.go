package vk

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vkgrab-cli/vkgrab/filesystem"
	"github.com/vkgrab-cli/vkgrab/key"
	"github.com/vkgrab-cli/vkgrab/source"
)

func TestDownload(t *testing.T) {
	Convey("Download", t, func() {
		filesystem.SetMemMapFs()
		viper.Set(key.DownloadsChunkSize, 1024)

		payload := bytes.Repeat([]byte("vkgrab"), 1000)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Length", strconv.Itoa(len(payload)))
			_, _ = w.Write(payload)
		}))
		defer server.Close()

		variant := &source.Variant{Quality: "mp4_480", URL: server.URL + "/480.mp4"}

		Convey("Should stream the variant to the given path", func() {
			var percents []int
			err := New(nil).Download(variant, "/downloads/video.mp4", func(percent int) {
				percents = append(percents, percent)
			})

			So(err, ShouldBeNil)

			written, err := afero.ReadFile(filesystem.API(), "/downloads/video.mp4")
			So(err, ShouldBeNil)
			So(written, ShouldResemble, payload)

			So(percents, ShouldNotBeEmpty)
			So(percents[len(percents)-1], ShouldEqual, 100)
			So(sorted(percents), ShouldBeTrue)
		})

		Convey("Should fail on a non-2xx status", func() {
			failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer failing.Close()

			missing := &source.Variant{Quality: "mp4_240", URL: failing.URL + "/gone.mp4"}
			err := New(nil).Download(missing, "/downloads/gone.mp4", nil)
			So(err, ShouldNotBeNil)
		})
	})
}

func sorted(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			return false
		}
	}

	return true
}
