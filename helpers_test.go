package sprite

import "math/rand/v2"

var (
	red   = Pixel{R: 0xff, A: 0xff}
	green = Pixel{G: 0xff, A: 0xff}
	blue  = Pixel{B: 0xff, A: 0xff}
)

// wire concatenates byte fragments into one expected encoding.
func wire(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// backgrounds returns n background pixels.
func backgrounds(n int) []Pixel {
	return make([]Pixel, n)
}

// distinctColors returns n distinct non-background pixels.
func distinctColors(n int) []Pixel {
	out := make([]Pixel, n)
	for i := range out {
		out[i] = Pixel{R: uint8(i), G: uint8(i >> 8), B: 0x80, A: 0xff} //nolint:gosec // truncation intended
	}
	return out
}

// randomSheet builds a sheet with a small color set and long background
// stretches, the shape the codec is tuned for.
func randomSheet(r *rand.Rand, maxWidth, maxHeight int) *Sheet16 {
	width := 1 + r.IntN(maxWidth)
	height := r.IntN(maxHeight + 1)
	colors := distinctColors(1 + r.IntN(12))

	pixels := make([]Pixel, width*height)
	for i := 0; i < len(pixels); {
		switch r.IntN(8) {
		case 0:
			i += r.IntN(600)
		case 1, 2:
			i++
		default:
			pixels[i] = colors[r.IntN(len(colors))]
			i++
		}
	}

	return &Sheet16{Width: uint16(width), Pixels: pixels} //nolint:gosec // bounded by maxWidth
}
