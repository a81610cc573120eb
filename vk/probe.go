package vk

import (
	"net/http"
	"sync"

	"github.com/spf13/viper"

	"github.com/vkgrab-cli/vkgrab/key"
	"github.com/vkgrab-cli/vkgrab/network"
	"github.com/vkgrab-cli/vkgrab/source"
	"github.com/vkgrab-cli/vkgrab/util"
)

// ProbeSizes fills in the sizes of the downloadable variants with HEAD
// requests. Probe failures leave the size at zero, a missing size is
// not worth failing the whole resolution over. Each probe writes only
// to its own variant so they can run concurrently.
func (c *Client) ProbeSizes(video *source.Video) {
	variants := video.Downloadable()

	if !viper.GetBool(key.ProbeConcurrent) {
		for _, variant := range variants {
			variant.Size = c.probe(variant.URL)
		}

		return
	}

	var wg sync.WaitGroup
	wg.Add(len(variants))

	for _, variant := range variants {
		go func(variant *source.Variant) {
			defer wg.Done()
			variant.Size = c.probe(variant.URL)
		}(variant)
	}

	wg.Wait()
}

func (c *Client) probe(url string) int64 {
	req, err := http.NewRequest(http.MethodHead, url, nil)
	if err != nil {
		return 0
	}

	for name, value := range c.headers() {
		req.Header.Set(name, value)
	}

	resp, err := network.Client().Do(req)
	if err != nil {
		return 0
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || resp.ContentLength < 0 {
		return 0
	}

	return resp.ContentLength
}
