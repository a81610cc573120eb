// Package network provides pre-configured HTTP clients shared by all outbound platform communication.
package network

import (
	"net/http"
	"sync"
	"time"

	"github.com/spf13/viper"
	"github.com/vkgrab-cli/vkgrab/key"
)

var (
	once           sync.Once
	apiClient      *http.Client
	downloadClient *http.Client
)

// Client returns the shared HTTP client used for metadata and size-probe requests.
// It carries a one-minute overall timeout; every platform operation is attempted exactly once.
func Client() *http.Client {
	setup()
	return apiClient
}

// DownloadClient returns the HTTP client used for streaming video files to disk.
// It shares the transport with Client but carries no overall timeout, since a
// large download legitimately outlives any fixed deadline.
func DownloadClient() *http.Client {
	setup()
	return downloadClient
}

func setup() {
	once.Do(func() {
		var transport http.RoundTripper = newTransport()
		if viper.GetBool(key.NetworkSpoofTLS) {
			transport = newSpoofedTransport()
		}

		apiClient = &http.Client{
			Timeout:   time.Minute,
			Transport: transport,
		}
		downloadClient = &http.Client{
			Transport: transport,
		}
	})
}

// newTransport initializes a tuned http.Transport with optimized pool and timeout parameters.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxIdleConnsPerHost = 100
	t.MaxConnsPerHost = 200
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 30 * time.Second
	return t
}
