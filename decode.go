package sprite

import (
	"bytes"
	"fmt"
)

// Decode parses an encoded sheet. It never panics: every malformed input
// yields one of the package's sentinel errors, wrapped with detail.
func Decode[D, P UInt](data []byte) (*Image[D, P], error) {
	if !bytes.HasPrefix(data, []byte(Magic)) {
		return nil, ErrMagicMismatch
	}
	rest := data[len(Magic):]

	count, rest, ok := readUint[P](rest)
	if !ok {
		return nil, fmt.Errorf("%w: palette count needs %d bytes, have %d", ErrTruncatedHeader, widthOf[P](), len(rest))
	}

	palette, rest, err := readPalette(rest, uint64(count))
	if err != nil {
		return nil, err
	}

	width, rest, ok := readUint[D](rest)
	if !ok {
		return nil, fmt.Errorf("%w: width", ErrTruncatedDimensions)
	}
	height, rest, ok := readUint[D](rest)
	if !ok {
		return nil, fmt.Errorf("%w: height", ErrTruncatedDimensions)
	}

	size, err := imageSize(width, height)
	if err != nil {
		return nil, err
	}

	pixels, err := readTokens[P](rest, palette, size)
	if err != nil {
		return nil, err
	}

	Logger().Debug("sprite sheet decoded",
		"width", uint64(width),
		"height", uint64(height),
		"colors", len(palette),
		"bytes", len(data))

	return &Image[D, P]{Width: width, Pixels: pixels}, nil
}

// DecodeSheet8 decodes a sheet with 8-bit dimensions and palette ids.
func DecodeSheet8(data []byte) (*Sheet8, error) { return Decode[uint8, uint8](data) }

// DecodeSheet16 decodes a sheet with 16-bit dimensions and palette ids.
func DecodeSheet16(data []byte) (*Sheet16, error) { return Decode[uint16, uint16](data) }

// DecodeSheet32 decodes a sheet with 32-bit dimensions and palette ids.
func DecodeSheet32(data []byte) (*Sheet32, error) { return Decode[uint32, uint32](data) }

func readPalette(src []byte, count uint64) ([]Pixel, []byte, error) {
	if count > uint64(len(src)/pixelBytes) {
		return nil, src, fmt.Errorf("%w: %d entries need %d bytes, have %d", ErrTruncatedPalette, count, count*pixelBytes, len(src))
	}

	n := int(count)
	palette := make([]Pixel, n)
	for i := range palette {
		palette[i] = pixelFromBytes(src[i*pixelBytes:])
	}

	return palette, src[n*pixelBytes:], nil
}

func imageSize[D UInt](width, height D) (int, error) {
	w, err := intFromUint(width)
	if err != nil {
		return 0, fmt.Errorf("%w: width %d", ErrDimensionOverflow, uint64(width))
	}
	h, err := intFromUint(height)
	if err != nil {
		return 0, fmt.Errorf("%w: height %d", ErrDimensionOverflow, uint64(height))
	}

	size, err := mulSize(w, h)
	if err != nil {
		return 0, fmt.Errorf("%w: %dx%d", ErrDimensionOverflow, w, h)
	}

	return size, nil
}

// readTokens replays the token stream until exactly size pixels exist.
// Bytes after the last token are ignored.
func readTokens[P UInt](src []byte, palette []Pixel, size int) ([]Pixel, error) {
	// A hostile header can declare a huge size, so only reserve what the
	// remaining input could possibly expand to.
	hint := size
	if tokens := len(src) / widthOf[P](); tokens < hint/maxRun {
		hint = tokens * maxRun
	}

	var pixels []Pixel
	if hint > 0 {
		pixels = make([]Pixel, 0, hint)
	}

	marker := maxOf[P]()
	for len(pixels) < size {
		id, rest, ok := readUint[P](src)
		if !ok {
			return nil, fmt.Errorf("%w: %d of %d pixels", ErrTruncatedTokenStream, len(pixels), size)
		}
		src = rest

		if id == marker {
			if len(src) == 0 {
				return nil, fmt.Errorf("%w: at pixel %d", ErrTruncatedRunLength, len(pixels))
			}
			n := int(src[0])
			src = src[1:]

			if n > size-len(pixels) {
				return nil, fmt.Errorf("%w: run of %d at pixel %d of %d", ErrOverlongRun, n, len(pixels), size)
			}
			for range n {
				pixels = append(pixels, Background)
			}
			continue
		}

		if uint64(id) >= uint64(len(palette)) {
			return nil, fmt.Errorf("%w: id %d, palette has %d entries", ErrInvalidPaletteReference, uint64(id), len(palette))
		}
		pixels = append(pixels, palette[int(id)])
	}

	return pixels, nil
}
