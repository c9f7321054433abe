// Package passhash implements the credential digest scheme: a deterministic,
// unsalted SHA-256 hexdigest. The lack of a salt is a known weakness carried
// over from the upstream design; it is documented rather than fixed here.
package passhash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

// Hash is a pure one-way transform of a plaintext secret to a storable digest.
func Hash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// Verify recomputes the digest and compares in constant time.
func Verify(secret, digest string) bool {
	computed := Hash(secret)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}
