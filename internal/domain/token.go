package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// tokenBytes gives 128 bits of randomness. Collision probability is treated
// as negligible, so callers do not retry on conflict.
const tokenBytes = 16

// NewToken returns an unguessable 32-char hex token. Used for both event ids
// and participant pass ids.
func NewToken() string {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing means the process has no usable entropy source;
		// nothing sensible to do but stop.
		panic("domain: crypto/rand unavailable: " + err.Error())
	}
	return hex.EncodeToString(b)
}
