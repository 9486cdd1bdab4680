package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Shape is the syntactic class of a raw identifier.
type Shape int

const (
	// ShapeURI is a scheme-qualified URI such as http://sws.geonames.org/2758064/.
	ShapeURI Shape = iota + 1

	// ShapeScopedID is a dataset/id identifier such as tgn/7006952.
	ShapeScopedID

	// ShapeBareID is a single token without a dataset scope.
	ShapeBareID
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeURI:
		return "uri"
	case ShapeScopedID:
		return "scoped"
	case ShapeBareID:
		return "bare"
	default:
		return "unknown"
	}
}

var (
	// schemePattern matches anything starting with an RFC 3986 scheme and a colon.
	schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:`)

	scopedPattern = regexp.MustCompile(`^([A-Za-z0-9.+_\-]+)/([A-Za-z0-9.+_\-]+)$`)

	barePattern = regexp.MustCompile(`^[A-Za-z0-9.+_\-]+$`)
)

// Identifier is a trimmed raw input together with its shape.
// Dataset and Local are only set for scoped identifiers.
type Identifier struct {
	Raw     string
	Shape   Shape
	Dataset string
	Local   string
}

// Classify trims s and decides its shape. The URI grammar is checked first,
// so anything with a leading scheme is a URI even if it also looks like an id.
func Classify(s string) (Identifier, error) {
	raw := strings.TrimSpace(s)

	if schemePattern.MatchString(raw) {
		return Identifier{Raw: raw, Shape: ShapeURI}, nil
	}

	if m := scopedPattern.FindStringSubmatch(raw); m != nil {
		return Identifier{Raw: raw, Shape: ShapeScopedID, Dataset: m[1], Local: m[2]}, nil
	}

	if barePattern.MatchString(raw) {
		return Identifier{Raw: raw, Shape: ShapeBareID, Local: raw}, nil
	}

	return Identifier{}, fmt.Errorf("%w: %q must be a URI, dataset/id or id", ErrInvalidIdentifier, s)
}

// CanonicalDataset reduces a dataset label to its first dot-separated part,
// lowercased: "flEp.tozz" becomes "flep".
func CanonicalDataset(dataset string) string {
	dataset = strings.TrimSpace(dataset)
	if i := strings.IndexByte(dataset, '.'); i >= 0 {
		dataset = dataset[:i]
	}
	return strings.ToLower(dataset)
}
