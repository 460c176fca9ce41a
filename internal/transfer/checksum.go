package transfer

import (
	"encoding/hex"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// Checksum returns the hex encoded BLAKE2b-256 digest of data
func Checksum(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// newDigest returns a streaming BLAKE2b-256 hash. Without a key New256
// cannot fail.
func newDigest() hash.Hash {
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}
