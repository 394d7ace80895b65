package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint returns a short hex fingerprint of secret.
//
// It hashes with SHA-256 and truncates to 10 bytes, printed as five
// dash-separated groups of four hex characters.
func Fingerprint(secret []byte) string {
	sum := sha256.Sum256(secret)
	h := hex.EncodeToString(sum[:10])
	groups := make([]string, 0, 5)
	for i := 0; i < len(h); i += 4 {
		groups = append(groups, h[i:i+4])
	}
	return strings.Join(groups, "-")
}
