package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePayload is representative of a serialized chart payload: small JSON
// with repetitive keys.
var samplePayload = bytes.Repeat([]byte(`{"x":42.5,"y":137.2,"censored":false},`), 50)

func TestCodecs_RoundTrip(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := ForType(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(samplePayload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, samplePayload, decompressed)
		})
	}
}

func TestCodecs_CompressRepetitiveData(t *testing.T) {
	for _, typ := range []Type{TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := ForType(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(samplePayload)
			require.NoError(t, err)
			assert.Less(t, len(compressed), len(samplePayload),
				"repetitive JSON should shrink under %s", typ)
		})
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		t.Run(typ.String(), func(t *testing.T) {
			codec, err := ForType(typ)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestZstd_RejectsCorruptInput(t *testing.T) {
	codec := ZstdCodec{}
	_, err := codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(t, err)
}

func TestForType_Unsupported(t *testing.T) {
	_, err := ForType(Type(200))
	require.Error(t, err)
}

func TestTypeStrings(t *testing.T) {
	for _, typ := range []Type{TypeNone, TypeZstd, TypeS2, TypeLZ4} {
		require.True(t, typ.Valid())

		parsed, err := TypeFromString(typ.String())
		require.NoError(t, err)
		require.Equal(t, typ, parsed)
	}

	_, err := TypeFromString("brotli")
	require.Error(t, err)
	assert.False(t, Type(9).Valid())
	assert.Equal(t, "unknown", Type(9).String())
}
