package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint is a content hash identifying a loaded dataset. Two runs over
// byte-identical data share a fingerprint, which makes reruns comparable in
// the log stream.
type Fingerprint string

// NewFingerprint hashes the given content with SHA-256.
func NewFingerprint(data []byte) Fingerprint {
	sum := sha256.Sum256(data)
	return Fingerprint(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (f Fingerprint) String() string {
	return string(f)
}

// IsEmpty checks if the fingerprint is empty
func (f Fingerprint) IsEmpty() bool {
	return f == ""
}

// Equals checks if two fingerprints are equal
func (f Fingerprint) Equals(other Fingerprint) bool {
	return f == other
}
