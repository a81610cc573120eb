package vk

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/spf13/viper"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vkgrab-cli/vkgrab/key"
	"github.com/vkgrab-cli/vkgrab/source"
)

func TestProbeSizes(t *testing.T) {
	Convey("ProbeSizes", t, func(c C) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c.So(r.Method, ShouldEqual, http.MethodHead)

			switch r.URL.Path {
			case "/240.mp4":
				w.Header().Set("Content-Length", strconv.Itoa(1024))
			case "/720.mp4":
				w.Header().Set("Content-Length", strconv.Itoa(1048576))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer server.Close()

		video := &source.Video{
			Variants: []*source.Variant{
				{Quality: "mp4_240", URL: server.URL + "/240.mp4"},
				{Quality: "mp4_720", URL: server.URL + "/720.mp4"},
				{Quality: "mp4_1080", URL: server.URL + "/missing.mp4"},
				{Quality: source.AdaptiveQuality, URL: server.URL + "/master.m3u8"},
			},
		}

		assertSizes := func() {
			So(video.Variants[0].Size, ShouldEqual, 1024)
			So(video.Variants[1].Size, ShouldEqual, 1048576)
			So(video.Variants[2].Size, ShouldEqual, 0)
			So(video.Variants[3].Size, ShouldEqual, 0)
		}

		client := New(nil)

		Convey("Concurrent probing should fill sizes and skip the adaptive stream", func() {
			viper.Set(key.ProbeConcurrent, true)
			client.ProbeSizes(video)
			assertSizes()
		})

		Convey("Sequential probing should behave the same", func() {
			viper.Set(key.ProbeConcurrent, false)
			client.ProbeSizes(video)
			assertSizes()
		})
	})
}
