package compress

import "github.com/klauspost/compress/s2"

// S2Codec provides S2 compression, a Snappy-compatible format with better
// throughput and ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

// Compress compresses the input data in S2 block format.
func (S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses an S2 block.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
