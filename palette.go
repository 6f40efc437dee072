package sprite

import "fmt"

// paletteBuilder assigns palette ids to non-background pixels in first-seen
// order. entries is indexed by id, so it is already in wire order.
type paletteBuilder[P UInt] struct {
	ids     map[Pixel]P
	entries []Pixel
}

func newPaletteBuilder[P UInt]() *paletteBuilder[P] {
	return &paletteBuilder[P]{ids: make(map[Pixel]P)}
}

// maxColors returns the number of distinct colors P can address. The top
// value is the run marker and the one below it is never assigned, so the
// palette count always stays below the marker too.
func maxColors[P UInt]() uint64 {
	return uint64(maxOf[P]()) - 1
}

// id returns the palette id of p, assigning the next free id on first sight.
func (b *paletteBuilder[P]) id(p Pixel) (P, error) {
	if id, ok := b.ids[p]; ok {
		return id, nil
	}

	next := uint64(len(b.entries))
	if next >= maxColors[P]() {
		return 0, fmt.Errorf("%w: more than %d distinct colors", ErrPaletteOverflow, maxColors[P]())
	}

	id := P(next)
	b.ids[p] = id
	b.entries = append(b.entries, p)

	return id, nil
}

// len returns the number of assigned ids.
func (b *paletteBuilder[P]) len() int {
	return len(b.entries)
}
