package vk

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/vkgrab-cli/vkgrab/filesystem"
	"github.com/vkgrab-cli/vkgrab/key"
	"github.com/vkgrab-cli/vkgrab/network"
	"github.com/vkgrab-cli/vkgrab/source"
	"github.com/vkgrab-cli/vkgrab/util"
)

// Download streams a variant to path, reporting integer percentages
// through progress when the server reports a content length. The write
// goes through the filesystem layer so tests can run against an
// in-memory fs.
func (c *Client) Download(variant *source.Variant, path string, progress func(percent int)) error {
	req, err := http.NewRequest(http.MethodGet, variant.URL, nil)
	if err != nil {
		return err
	}

	for name, value := range c.headers() {
		req.Header.Set(name, value)
	}

	resp, err := network.DownloadClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrRequestFailed, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: status %s", ErrRequestFailed, resp.Status)
	}

	fs := filesystem.API()
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := fs.Create(path)
	if err != nil {
		return err
	}
	defer util.Ignore(file.Close)

	chunkSize := viper.GetInt64(key.DownloadsChunkSize)
	if chunkSize <= 0 {
		chunkSize = 1024
	}

	total := resp.ContentLength
	var written int64
	lastPercent := -1

	buffer := make([]byte, chunkSize)
	for {
		n, readErr := io.ReadFull(resp.Body, buffer)
		if n > 0 {
			if _, err := file.Write(buffer[:n]); err != nil {
				return err
			}

			written += int64(n)
			if progress != nil && total > 0 {
				percent := int(written * 100 / total)
				if percent != lastPercent {
					lastPercent = percent
					progress(percent)
				}
			}
		}

		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}

		if readErr != nil {
			return readErr
		}
	}

	if progress != nil && total <= 0 {
		progress(100)
	}

	return nil
}
