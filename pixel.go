package sprite

import "image/color"

// Pixel is a non-premultiplied 8-bit RGBA color.
type Pixel struct {
	R, G, B, A uint8
}

// Background is the reserved all-zero pixel. Runs of it are run-length coded
// and it never takes a palette id.
var Background = Pixel{}

// pixelBytes is the encoded size of one palette entry.
const pixelBytes = 4

// IsBackground reports whether p is the background pixel.
func (p Pixel) IsBackground() bool {
	return p == Background
}

// RGBA implements color.Color.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	return p.NRGBA().RGBA()
}

// NRGBA returns p as a color.NRGBA.
func (p Pixel) NRGBA() color.NRGBA {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// PixelFromColor converts any color to a Pixel via the NRGBA model.
func PixelFromColor(c color.Color) Pixel {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{R: n.R, G: n.G, B: n.B, A: n.A}
}

func appendPixel(dst []byte, p Pixel) []byte {
	return append(dst, p.R, p.G, p.B, p.A)
}

func pixelFromBytes(b []byte) Pixel {
	return Pixel{R: b[0], G: b[1], B: b[2], A: b[3]}
}
