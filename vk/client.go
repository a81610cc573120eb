package vk

import (
	"errors"

	"github.com/vkgrab-cli/vkgrab/auth"
	"github.com/vkgrab-cli/vkgrab/constant"
	"github.com/vkgrab-cli/vkgrab/source"
)

const DefaultBaseURL = "https://vk.com"

var (
	// ErrRequestFailed is returned when vk.com answers with a non-2xx
	// status or the request itself cannot be performed.
	ErrRequestFailed = errors.New("request failed")

	// ErrBadResponse is returned when the response body cannot be
	// interpreted either as JSON or as an embedded json block.
	ErrBadResponse = errors.New("unrecognized response format")
)

var _ source.Source = (*Client)(nil)

// Client resolves vk.com video pages into direct download links.
// It implements source.Source.
type Client struct {
	// BaseURL is the origin requests are sent to. Overridable for tests.
	BaseURL string

	Credentials auth.Credentials
}

func New(credentials auth.Credentials) *Client {
	return &Client{
		BaseURL:     DefaultBaseURL,
		Credentials: credentials,
	}
}

func (c *Client) Name() string {
	return "VK"
}

func (c *Client) ID() string {
	return "vk"
}

func (c *Client) base() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}

	return c.BaseURL
}

func (c *Client) headers() map[string]string {
	h := map[string]string{
		"User-Agent":       constant.UserAgent,
		"Referer":          c.base() + "/",
		"X-Requested-With": "XMLHttpRequest",
	}

	if !c.Credentials.IsEmpty() {
		h["Cookie"] = c.Credentials.Header()
	}

	return h
}
