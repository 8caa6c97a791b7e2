package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ArtifactKey generates a cache key for a rendered artifact.
// The key format is: artifact:{treeHash}:{format}
func ArtifactKey(treeHash, format string) string {
	return fmt.Sprintf("artifact:%s:%s", treeHash, format)
}
