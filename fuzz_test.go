package sprite

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fuzzSeeds are encodings worth mutating: colors, runs, and an empty sheet.
func fuzzSeeds[D, P UInt](f *testing.F) {
	f.Helper()

	for _, img := range []*Image[D, P]{
		{Width: 2, Pixels: []Pixel{red, green, red, blue}},
		{Width: 2, Pixels: []Pixel{red, Background, Background, red}},
		{Width: 16, Pixels: backgrounds(256)},
		{Width: 0},
	} {
		data, err := img.Encode()
		require.NoError(f, err)
		f.Add(data)
	}
	f.Add([]byte(Magic))
	f.Add([]byte{})
}

// checkLossless decodes arbitrary input and, if it forms a sheet that can be
// re-encoded, requires that encoding to decode back to the same sheet.
func checkLossless[D, P UInt](t *testing.T, data []byte) {
	img, err := Decode[D, P](data)
	if err != nil {
		return
	}

	enc, err := img.Encode()
	if err != nil {
		// e.g. a decoded palette that exceeds the encoder's color budget
		return
	}

	dec, err := Decode[D, P](enc)
	require.NoError(t, err)
	require.True(t, img.Equal(dec))

	again, err := dec.Encode()
	require.NoError(t, err)
	require.Equal(t, enc, again)
}

func FuzzRoundTrip8(f *testing.F) {
	fuzzSeeds[uint8, uint8](f)
	f.Fuzz(checkLossless[uint8, uint8])
}

func FuzzRoundTrip16(f *testing.F) {
	fuzzSeeds[uint16, uint16](f)
	f.Fuzz(checkLossless[uint16, uint16])
}

func FuzzRoundTrip32(f *testing.F) {
	fuzzSeeds[uint32, uint32](f)
	f.Fuzz(checkLossless[uint32, uint32])
}

func FuzzUnpack(f *testing.F) {
	packed, err := stripedSheet(64, 64).EncodeBlock(nil)
	require.NoError(f, err)
	f.Add(packed)

	packed, err = stripedSheet(64, 64).EncodeBlock(&BlockOptions{Compression: CompressionZstd})
	require.NoError(f, err)
	f.Add(packed)

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = DecodeBlock[uint16, uint16](data)
	})
}
