package noise

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects a noise colour.
type Kind uint8

const (
	// White is memoryless uniform noise.
	White Kind = iota

	// Pink approximates 1/f noise by averaging overlapping white taps.
	Pink

	// Brown is a clamped random walk approximating 1/f² noise.
	Brown

	// Blue is the clamped first difference of white noise.
	Blue
)

// ErrUnknownKind is returned by ParseKind for unrecognised colour names.
var ErrUnknownKind = errors.New("unknown noise kind")

// Kinds lists every supported colour in declaration order.
var Kinds = [...]Kind{White, Pink, Brown, Blue}

var kindNames = [...]string{
	White: "white",
	Pink:  "pink",
	Brown: "brown",
	Blue:  "blue",
}

// String returns the lower-case colour name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names a supported colour.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// ParseKind maps a colour name (case-insensitive) to its Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
