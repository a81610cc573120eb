package vk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/vkgrab-cli/vkgrab/log"
	"github.com/vkgrab-cli/vkgrab/network"
	"github.com/vkgrab-cli/vkgrab/source"
	"github.com/vkgrab-cli/vkgrab/util"
)

var embeddedJsonRegex = regexp.MustCompile(`(?s)<!json>(.+?)<!>`)

// Resolve fetches the video described by ref through the internal
// al_video.php endpoint and returns its metadata with direct links.
// When the endpoint yields no links the public page is scraped as a
// fallback, so a video with an empty variant list is a valid result.
func (c *Client) Resolve(ref source.Reference) (*source.Video, error) {
	body, err := c.fetchPlayerResponse(ref)
	if err != nil {
		return nil, err
	}

	raw, ok := extractJson(body)
	if !ok {
		log.Error("al_video.php response is neither json nor an embedded json block")
		return nil, ErrBadResponse
	}

	video := parsePayload(raw)

	if len(video.Variants) == 0 {
		log.Infof("no links in player response for %s, scraping the public page", ref)

		page, err := c.fetchPage(ref)
		if err == nil {
			video = parsePage(page)
		} else {
			log.Error(err)
		}
	}

	return video, nil
}

func (c *Client) fetchPlayerResponse(ref source.Reference) ([]byte, error) {
	form := url.Values{
		"act":      {"show"},
		"al":       {"1"},
		"video":    {ref.String()},
		"autoplay": {"0"},
		"module":   {""},
		"list":     {""},
	}

	req, err := http.NewRequest(http.MethodPost, c.base()+"/al_video.php", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}

	for name, value := range c.headers() {
		req.Header.Set(name, value)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := network.Client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %s", ErrRequestFailed, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func (c *Client) fetchPage(ref source.Reference) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, c.base()+"/video"+ref.String(), nil)
	if err != nil {
		return nil, err
	}

	for name, value := range c.headers() {
		req.Header.Set(name, value)
	}

	resp, err := network.Client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRequestFailed, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %s", ErrRequestFailed, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// extractJson locates the json document inside an al_video.php response.
// The endpoint usually answers with plain json but sometimes wraps it in
// a <!json>...<!> block inside an html-ish envelope.
func extractJson(body []byte) ([]byte, bool) {
	if json.Valid(body) {
		return body, true
	}

	match := embeddedJsonRegex.FindSubmatch(body)
	if match != nil {
		return match[1], true
	}

	return nil, false
}
