// Package compress provides the payload codecs used when serializing chart
// payloads for the presentation layer.
//
// Chart payloads are small JSON documents (a few kilobytes); compression is
// optional and chosen by the caller at marshal time. The package supports:
//
//   - None: No compression (the default; payloads are tiny)
//   - Zstd: Best ratio, for payloads embedded in documents or cached
//   - S2: Balanced speed and ratio
//   - LZ4: Fastest decompression
//
// All codecs are stateless values and safe for concurrent use. The zstd
// codec is pure Go by default; building with the "gozstd" tag swaps in the
// cgo implementation for environments that already link libzstd.
package compress
