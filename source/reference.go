// Package source defines the domain models and interfaces for video discovery and retrieval.
package source

// Reference is a platform-specific video identifier composed of an owner id
// and an item id. A negative owner denotes a community rather than a user.
// Immutable once extracted from a URL.
type Reference struct {
	Owner string `json:"owner"`
	Item  string `json:"item"`
}

// String returns the canonical "owner_item" form used on the wire.
func (r Reference) String() string {
	return r.Owner + "_" + r.Item
}

// IsZero reports whether the reference carries no identifier at all.
func (r Reference) IsZero() bool {
	return r.Owner == "" && r.Item == ""
}
