package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ShortID returns the first n hex characters of a random (v4) UUID.  n is
// clamped to [1, 32].  Collisions are possible but irrelevant for the demo
// catalogue sizes.
func ShortID(n int) string {
	if n < 1 {
		n = 1
	}
	if n > 32 {
		n = 32
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}

// NewProductID returns an identifier of the form prod-xxxxxx.
func NewProductID() string { return "prod-" + ShortID(6) }

// NewOrderID returns an identifier of the form ORD-XXXXXXXX.
func NewOrderID() string { return "ORD-" + strings.ToUpper(ShortID(8)) }
