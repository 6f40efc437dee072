package sprite

import (
	"fmt"
	"image"
	"image/color"
	"slices"

	"golang.org/x/image/draw"
)

// Image is a sprite sheet: a declared width and a row-major pixel buffer.
// Height is always derived from the pixel count. D is the type of the width
// and height fields on the wire, P the type of palette ids.
type Image[D, P UInt] struct {
	Width  D
	Pixels []Pixel
}

// Common instantiations.
type (
	Sheet8  = Image[uint8, uint8]
	Sheet16 = Image[uint16, uint16]
	Sheet32 = Image[uint32, uint32]
)

// Height returns the number of rows. It fails if the pixel buffer is not a
// whole number of rows or the row count does not fit D.
func (m *Image[D, P]) Height() (D, error) {
	w, err := intFromUint(m.Width)
	if err != nil {
		return 0, fmt.Errorf("%w: width %d", ErrDimensionOverflow, uint64(m.Width))
	}

	if w == 0 {
		if len(m.Pixels) != 0 {
			return 0, fmt.Errorf("%w: zero width with %d pixels", ErrInvalidImage, len(m.Pixels))
		}
		return 0, nil
	}

	if len(m.Pixels)%w != 0 {
		return 0, fmt.Errorf("%w: %d pixels is not a multiple of width %d", ErrInvalidImage, len(m.Pixels), w)
	}

	h, err := uintFromInt[D](len(m.Pixels) / w)
	if err != nil {
		return 0, fmt.Errorf("%w: height %d exceeds %d", ErrDimensionOverflow, len(m.Pixels)/w, uint64(maxOf[D]()))
	}

	return h, nil
}

// Validate checks the image invariants Encode relies on.
func (m *Image[D, P]) Validate() error {
	_, err := m.Height()
	return err
}

// Equal reports whether m and o have the same width and pixels.
func (m *Image[D, P]) Equal(o *Image[D, P]) bool {
	if m == nil || o == nil {
		return m == o
	}

	return m.Width == o.Width && slices.Equal(m.Pixels, o.Pixels)
}

// ColorModel implements image.Image.
func (m *Image[D, P]) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image. Trailing pixels that do not fill a row are
// outside the bounds.
func (m *Image[D, P]) Bounds() image.Rectangle {
	w := int(m.Width)
	if w == 0 {
		return image.Rectangle{}
	}

	return image.Rect(0, 0, w, len(m.Pixels)/w)
}

// At implements image.Image.
func (m *Image[D, P]) At(x, y int) color.Color {
	return m.PixelAt(x, y)
}

// PixelAt returns the pixel at (x, y), or Background outside the bounds.
func (m *Image[D, P]) PixelAt(x, y int) Pixel {
	if !(image.Point{X: x, Y: y}).In(m.Bounds()) {
		return Background
	}

	return m.Pixels[y*int(m.Width)+x]
}

// NRGBA copies the sheet into a new *image.NRGBA.
func (m *Image[D, P]) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(m.Bounds())
	for i, p := range m.Pixels[:dst.Rect.Dx()*dst.Rect.Dy()] {
		dst.Pix[i*pixelBytes+0] = p.R
		dst.Pix[i*pixelBytes+1] = p.G
		dst.Pix[i*pixelBytes+2] = p.B
		dst.Pix[i*pixelBytes+3] = p.A
	}

	return dst
}

// FromImage converts src into a sprite sheet. Sources other than
// *image.NRGBA are drawn onto an NRGBA canvas first.
func FromImage[D, P UInt](src image.Image) (*Image[D, P], error) {
	b := src.Bounds()

	width, err := uintFromInt[D](b.Dx())
	if err != nil {
		return nil, fmt.Errorf("%w: width %d", ErrDimensionOverflow, b.Dx())
	}
	if _, err := uintFromInt[D](b.Dy()); err != nil {
		return nil, fmt.Errorf("%w: height %d", ErrDimensionOverflow, b.Dy())
	}

	nrgba, ok := src.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
		b = nrgba.Bounds()
	}

	pixels := make([]Pixel, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := nrgba.Pix[nrgba.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			pixels = append(pixels, pixelFromBytes(row[x*pixelBytes:]))
		}
	}

	return &Image[D, P]{Width: width, Pixels: pixels}, nil
}

// FromScaledImage imports a sheet that was exported upscaled by an integer
// factor, taking the center sample of every factor x factor block.
func FromScaledImage[D, P UInt](src image.Image, factor int) (*Image[D, P], error) {
	b := src.Bounds()
	if factor < 1 || b.Dx()%factor != 0 || b.Dy()%factor != 0 {
		return nil, fmt.Errorf("%w: %dx%d is not a multiple of scale %d", ErrInvalidImage, b.Dx(), b.Dy(), factor)
	}
	if factor == 1 {
		return FromImage[D, P](src)
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx()/factor, b.Dy()/factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)

	return FromImage[D, P](dst)
}
