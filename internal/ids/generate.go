// Package ids generates the short opaque identifiers used for commands,
// tasks and journal entries.
package ids

import (
	"crypto/sha256"
	"encoding/base32"

	internalstrings "github.com/amonks/butler/internal/strings"
	"github.com/google/uuid"
)

// DefaultLength is the standard length for generated IDs.
const DefaultLength = 8

// Generate creates a deterministic, lowercase base32 ID derived from input.
func Generate(input string, length int) string {
	if length <= 0 {
		return ""
	}
	hash := sha256.Sum256([]byte(input))
	encoded := base32.StdEncoding.WithPadding(base32.NoPadding).EncodeToString(hash[:])
	if length > len(encoded) {
		length = len(encoded)
	}
	return internalstrings.NormalizeLower(encoded[:length])
}

// New returns a fresh random ID of DefaultLength characters.
func New() string {
	return Generate(uuid.NewString(), DefaultLength)
}

// NewWithPrefix returns a fresh ID joined to prefix with a dash, like "task-3kq7w2ab".
func NewWithPrefix(prefix string) string {
	if prefix == "" {
		return New()
	}
	return prefix + "-" + New()
}
