package sprite

import "errors"

var (
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidImage indicates an image whose pixel count is not a multiple of its width.
	ErrInvalidImage = errors.New("invalid image")
	// ErrPaletteOverflow indicates more distinct colors than the palette id type can address.
	ErrPaletteOverflow = errors.New("palette overflow")
	// ErrMagicMismatch indicates input does not begin with the sprite sheet magic.
	ErrMagicMismatch = errors.New("magic mismatch")
	// ErrTruncatedHeader indicates input ended before the palette count.
	ErrTruncatedHeader = errors.New("truncated header")
	// ErrTruncatedPalette indicates input ended inside the palette table.
	ErrTruncatedPalette = errors.New("truncated palette")
	// ErrTruncatedDimensions indicates input ended inside the width or height field.
	ErrTruncatedDimensions = errors.New("truncated dimensions")
	// ErrDimensionOverflow indicates width times height exceeds the addressable range.
	ErrDimensionOverflow = errors.New("dimension overflow")
	// ErrTruncatedTokenStream indicates input ended before all pixels were produced.
	ErrTruncatedTokenStream = errors.New("truncated token stream")
	// ErrTruncatedRunLength indicates a run marker without its length byte.
	ErrTruncatedRunLength = errors.New("truncated run length")
	// ErrInvalidPaletteReference indicates a token id beyond the palette table.
	ErrInvalidPaletteReference = errors.New("invalid palette reference")
	// ErrOverlongRun indicates a run that overflows the declared image size.
	ErrOverlongRun = errors.New("overlong run")

	// ErrUnknownBlockMagic indicates a block container with an unknown magic.
	ErrUnknownBlockMagic = errors.New("unknown block magic")
	// ErrUnknownCompression indicates an unsupported BlockOptions compression.
	ErrUnknownCompression = errors.New("unknown compression")
	// ErrTruncatedBlock indicates a block container shorter than its header.
	ErrTruncatedBlock = errors.New("truncated block")
	// ErrBlockTooLarge indicates a block raw size above MaxBlockSize.
	ErrBlockTooLarge = errors.New("block too large")
	// ErrBlockSizeMismatch indicates unpacked data does not match the declared raw size.
	ErrBlockSizeMismatch = errors.New("block size mismatch")
	// ErrInvalidChunkSize indicates an LZ4 chunk header with an invalid size.
	ErrInvalidChunkSize = errors.New("invalid compressed chunk size")
	// ErrLZ4Compress indicates LZ4 compression failed.
	ErrLZ4Compress = errors.New("LZ4 compression failed")
	// ErrLZ4Decode indicates LZ4 decode failed.
	ErrLZ4Decode = errors.New("LZ4 decode failed")
	// ErrZstdDecode indicates zstd decode failed.
	ErrZstdDecode = errors.New("zstd decode failed")
)
