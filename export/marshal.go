package export

import (
	"encoding/json"
	"fmt"

	"github.com/medviz/regresslab/compress"
	"github.com/medviz/regresslab/internal/options"
)

// payloadMagic is the first byte of every marshaled payload.
const payloadMagic = 0x52

// headerSize is magic byte plus compression type byte.
const headerSize = 2

type marshalConfig struct {
	compression compress.Type
}

// MarshalOption is a functional option for Marshal.
type MarshalOption = options.Option[*marshalConfig]

// WithCompression selects the codec applied to the JSON body. The default is
// no compression.
func WithCompression(t compress.Type) MarshalOption {
	return options.New(func(cfg *marshalConfig) error {
		if !t.Valid() {
			return fmt.Errorf("unknown compression type: %d", t)
		}
		cfg.compression = t

		return nil
	})
}

// Marshal serializes a payload to its wire form: a two-byte header (magic,
// compression type) followed by the JSON body, compressed per options.
//
// The header makes payloads self-describing, so Unmarshal needs no
// out-of-band knowledge of the codec.
func Marshal(p *Payload, opts ...MarshalOption) ([]byte, error) {
	if p == nil {
		return nil, fmt.Errorf("nil payload")
	}

	cfg := marshalConfig{compression: compress.TypeNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	codec, err := compress.ForType(cfg.compression)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(body)
	if err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	out := make([]byte, 0, headerSize+len(compressed))
	out = append(out, payloadMagic, byte(cfg.compression))
	out = append(out, compressed...)

	return out, nil
}

// Unmarshal reverses Marshal, detecting the codec from the header.
func Unmarshal(data []byte) (*Payload, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("payload too short: %d bytes", len(data))
	}
	if data[0] != payloadMagic {
		return nil, fmt.Errorf("bad payload magic: 0x%02x", data[0])
	}

	codec, err := compress.ForType(compress.Type(data[1]))
	if err != nil {
		return nil, err
	}

	body, err := codec.Decompress(data[headerSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress payload: %w", err)
	}

	var p Payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("failed to decode payload: %w", err)
	}

	return &p, nil
}
