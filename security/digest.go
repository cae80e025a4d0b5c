package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
)

// Digest returns the SHA-256 of input as lowercase hex. No salt: identical
// input must hash identically across restarts, because stored credential
// digests are compared against it.
func Digest(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:])
}

// GenerateSecretToken returns 256 bits from the OS CSPRNG as hex. One is
// issued per worker as their QR credential.
func GenerateSecretToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// Verify reports whether presented hashes to storedDigest. The comparison is
// constant time.
func Verify(presented, storedDigest string) bool {
	return subtle.ConstantTimeCompare([]byte(Digest(presented)), []byte(storedDigest)) == 1
}
