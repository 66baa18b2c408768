package compress

import (
	"fmt"
	"strings"
)

// Type identifies a compression algorithm. The zero value is TypeNone.
type Type byte

const (
	// TypeNone passes payloads through unchanged.
	TypeNone Type = iota
	// TypeZstd compresses with Zstandard.
	TypeZstd
	// TypeS2 compresses with S2 (Snappy-compatible).
	TypeS2
	// TypeLZ4 compresses with LZ4 block format.
	TypeLZ4
)

var typeNames = map[Type]string{
	TypeNone: "none",
	TypeZstd: "zstd",
	TypeS2:   "s2",
	TypeLZ4:  "lz4",
}

// String returns the string representation of the compression type.
func (t Type) String() string {
	if name, exists := typeNames[t]; exists {
		return name
	}

	return "unknown"
}

// Valid reports whether t names a supported algorithm.
func (t Type) Valid() bool {
	_, exists := typeNames[t]
	return exists
}

// TypeFromString returns the Type for a given string name.
// Returns an error for unknown names.
func TypeFromString(name string) (Type, error) {
	for t, n := range typeNames {
		if n == strings.ToLower(name) {
			return t, nil
		}
	}

	return TypeNone, fmt.Errorf("unknown compression type: %s", name)
}

// Codec compresses and decompresses byte payloads.
//
// Implementations return newly allocated slices owned by the caller (the
// no-op codec, which returns its input unchanged, is the one exception) and
// never modify their input.
type Codec interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NoopCodec{},
	TypeZstd: ZstdCodec{},
	TypeS2:   S2Codec{},
	TypeLZ4:  LZ4Codec{},
}

// ForType returns the built-in Codec for the given compression type.
func ForType(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}

// NoopCodec passes data through unchanged. It returns its input slice as-is,
// so callers must not mutate payloads they still intend to decompress.
type NoopCodec struct{}

var _ Codec = NoopCodec{}

// Compress returns the input unchanged.
func (NoopCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input unchanged.
func (NoopCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
