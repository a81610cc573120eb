// Package auth manages the user-supplied session credentials used to act as a logged-in platform user.
//
// There is no authentication flow here: the user pastes a raw Cookie header
// captured from their browser, and the resulting set rides every outbound
// request until it is replaced or cleared. Credentials are never validated
// and never persisted; an invalid set simply behaves as if absent.
package auth

import (
	"sort"
	"strings"
)

// Credentials is a mapping of cookie names to values.
type Credentials map[string]string

// ParseCookies turns a raw "key=value; key2=value2" header string into a credential set.
// Malformed pairs (no '=' separator) are skipped silently; an empty input yields an empty set.
func ParseCookies(raw string) Credentials {
	creds := make(Credentials)

	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			continue
		}

		creds[name] = value
	}

	return creds
}

// Header renders the credential set back into a Cookie header value.
// For sets whose names and values contain no ';' or '=', Header is the exact inverse of ParseCookies.
func (c Credentials) Header() string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		pairs = append(pairs, name+"="+c[name])
	}

	return strings.Join(pairs, "; ")
}

// IsEmpty reports whether the set carries no cookies at all.
func (c Credentials) IsEmpty() bool {
	return len(c) == 0
}
