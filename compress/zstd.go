package compress

// ZstdCodec provides Zstandard compression for chart payloads.
//
// The implementation is selected at build time: the default is the pure-Go
// klauspost/compress encoder, and the "gozstd" build tag swaps in the cgo
// binding for deployments that already ship libzstd. Both produce standard
// Zstandard frames and interoperate freely.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}
