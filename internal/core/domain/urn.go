package domain

import (
	"fmt"
	"strings"
)

const (
	// URNPrefix starts every URN of a registered namespace.
	URNPrefix = "urn:hg:"

	// HGIDPrefix starts the fallback URN of unregistered datasets.
	HGIDPrefix = "urn:hgid:"
)

// URN is a parsed urn:hg:<nid>:<nss>.
type URN struct {
	// NID is the namespace id.
	NID string

	// NSS is the namespace-specific suffix. It may contain colons.
	NSS string
}

// String renders the URN in canonical form.
func (u URN) String() string {
	return URNPrefix + u.NID + ":" + u.NSS
}

// NewURN builds the URN for a namespace id and suffix.
func NewURN(nid, nss string) URN {
	return URN{NID: nid, NSS: nss}
}

// HGID builds the fallback URN for a dataset without a namespace.
func HGID(dataset, local string) string {
	return HGIDPrefix + dataset + "/" + local
}

// ParseURN parses urn:hg:<nid>:<nss>. Everything after the third colon is the
// suffix, internal colons included.
func ParseURN(s string) (URN, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 4 || parts[0] != "urn" || parts[1] != "hg" {
		return URN{}, fmt.Errorf("%w: %q", ErrInvalidURN, s)
	}

	u := URN{NID: parts[2], NSS: strings.Join(parts[3:], ":")}
	if u.NID == "" || u.NSS == "" {
		return URN{}, fmt.Errorf("%w: %q has an empty namespace or suffix", ErrInvalidURN, s)
	}
	return u, nil
}

// IsHGURN reports whether s uses the urn:hg: prefix.
func IsHGURN(s string) bool {
	return strings.HasPrefix(s, URNPrefix)
}
