package vk

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vkgrab-cli/vkgrab/auth"
	"github.com/vkgrab-cli/vkgrab/source"
)

func testClient(server *httptest.Server, credentials auth.Credentials) *Client {
	client := New(credentials)
	client.BaseURL = server.URL
	return client
}

func TestResolve(t *testing.T) {
	ref := source.Reference{Owner: "-1", Item: "2"}

	Convey("Resolve", t, func() {
		Convey("Should parse a direct json response", func(c C) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.Method, ShouldEqual, http.MethodPost)
				c.So(r.URL.Path, ShouldEqual, "/al_video.php")
				c.So(r.FormValue("act"), ShouldEqual, "show")
				c.So(r.FormValue("video"), ShouldEqual, "-1_2")
				c.So(r.Header.Get("X-Requested-With"), ShouldEqual, "XMLHttpRequest")

				_, _ = w.Write(playerResponse(`{"url360": "https://cdn.example.com/360.mp4", "md_title": "Direct"}`))
			}))
			defer server.Close()

			video, err := testClient(server, nil).Resolve(ref)
			So(err, ShouldBeNil)
			So(video.Title, ShouldEqual, "Direct")
			So(video.Variants, ShouldHaveLength, 1)
		})

		Convey("Should send stored cookies with the request", func(c C) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				c.So(r.Header.Get("Cookie"), ShouldEqual, "remixsid=abc")
				_, _ = w.Write(playerResponse(`{"url240": "https://cdn.example.com/240.mp4"}`))
			}))
			defer server.Close()

			credentials := auth.Credentials{"remixsid": "abc"}
			_, err := testClient(server, credentials).Resolve(ref)
			So(err, ShouldBeNil)
		})

		Convey("Should dig the json block out of an html envelope", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				body := `<div>noise</div><!json>` +
					string(playerResponse(`{"url480": "https://cdn.example.com/480.mp4", "md_title": "Wrapped"}`)) +
					`<!><div>more noise</div>`
				_, _ = w.Write([]byte(body))
			}))
			defer server.Close()

			video, err := testClient(server, nil).Resolve(ref)
			So(err, ShouldBeNil)
			So(video.Title, ShouldEqual, "Wrapped")
			So(video.Variants, ShouldHaveLength, 1)
		})

		Convey("Should fail on a non-2xx status", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			}))
			defer server.Close()

			_, err := testClient(server, nil).Resolve(ref)
			So(errors.Is(err, ErrRequestFailed), ShouldBeTrue)
		})

		Convey("Should fail on an unrecognizable body", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html><body>nothing to see</body></html>"))
			}))
			defer server.Close()

			_, err := testClient(server, nil).Resolve(ref)
			So(errors.Is(err, ErrBadResponse), ShouldBeTrue)
		})

		Convey("Should scrape the public page when the player has no links", func(c C) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/al_video.php" {
					_, _ = w.Write([]byte(`{"payload": [0, []]}`))
					return
				}

				c.So(r.URL.Path, ShouldEqual, "/video-1_2")
				_, _ = w.Write([]byte(`<html><body>` +
					`<div class="mv_title">Scraped Title</div>` +
					`<script>var x = {"url480":"https:\/\/cdn.example.com\/page.mp4"};</script>` +
					`</body></html>`))
			}))
			defer server.Close()

			video, err := testClient(server, nil).Resolve(ref)
			So(err, ShouldBeNil)
			So(video.Title, ShouldEqual, "Scraped Title")
			So(video.Variants, ShouldHaveLength, 1)
			So(video.Variants[0].Quality, ShouldEqual, "mp4_480")
			So(video.Variants[0].URL, ShouldEqual, "https://cdn.example.com/page.mp4")
		})

		Convey("Should keep an empty video when the page scrape finds nothing", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/al_video.php" {
					_, _ = w.Write([]byte(`{"payload": [0, []]}`))
					return
				}

				_, _ = w.Write([]byte(`<html><body>nothing here</body></html>`))
			}))
			defer server.Close()

			video, err := testClient(server, nil).Resolve(ref)
			So(err, ShouldBeNil)
			So(video.Variants, ShouldBeEmpty)
		})
	})
}
