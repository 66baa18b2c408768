package seed

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Stream derives a deterministic child seed for a named random stream.
//
// Generators that share a caller-provided seed must not replay the same
// underlying draw sequence, so each stream folds its name into the seed.
// The derivation is pure: equal (base, name) pairs always yield the same
// child seed.
func Stream(base int64, name string) int64 {
	return base ^ int64(ID(name)) //nolint: gosec
}
