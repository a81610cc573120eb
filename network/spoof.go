// Package network provides pre-configured HTTP clients shared by all outbound platform communication.
//
// The spoofed transport leverages refraction-networking/utls to present a
// Chrome Client Hello signature during the TLS handshake. The platform's
// internal endpoints sit behind anti-bot protection that rejects the default
// Go TLS fingerprint, so requests optionally ride a handshake that matches
// prevalent browser traffic (HelloChrome_120).
//
// Protocol negotiation: an HTTP/2 connection is attempted first, as preferred
// by modern CDNs. If the handshake or request fails, the transport
// transparently retries over HTTP/1.1 with forced protocol advertisement.
package network

import (
	"context"
	"crypto/tls"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const dialTimeout = 30 * time.Second

// spoofedTransport routes requests through utls-backed connections,
// preferring h2 and degrading to http/1.1.
type spoofedTransport struct {
	h2 *http2.Transport
	h1 *http.Transport
}

func newSpoofedTransport() *spoofedTransport {
	return &spoofedTransport{
		h2: &http2.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				return dialSpoofed(ctx, network, addr, nil)
			},
		},
		h1: &http.Transport{
			DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialSpoofed(ctx, network, addr, []string{"http/1.1"})
			},
		},
	}
}

// RoundTrip implements http.RoundTripper.
func (t *spoofedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		// Plain endpoints (including test servers) bypass the TLS dialer entirely.
		return http.DefaultTransport.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	// Fallback: the server either refused h2 or the handshake failed mid-flight.
	// The request body must be rewound before the retry.
	if req.Body != nil {
		if req.GetBody == nil {
			return nil, err
		}
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, err
		}
		req.Body = body
	}

	return t.h1.RoundTrip(req)
}

// dialSpoofed creates a TLS connection mimicking Chrome 120's fingerprint.
// A nil protos advertises both h2 and http/1.1, which is natural Chrome behavior.
func dialSpoofed(ctx context.Context, network, addr string, protos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		MinVersion: tls.VersionTLS12,
		NextProtos: protos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, err
	}

	return tlsConn, nil
}
