package sprite

import "fmt"

// Encode serializes the sheet. On failure no bytes are returned; the only
// failures are ErrInvalidImage, ErrDimensionOverflow and ErrPaletteOverflow.
func (m *Image[D, P]) Encode() ([]byte, error) {
	height, err := m.Height()
	if err != nil {
		return nil, err
	}

	palette, tokens, err := m.tokenize()
	if err != nil {
		return nil, err
	}

	count, err := uintFromInt[P](palette.len())
	if err != nil {
		return nil, fmt.Errorf("%w: %d colors", ErrPaletteOverflow, palette.len())
	}

	out := make([]byte, 0, headerSize[D, P](palette.len())+len(tokens))
	out = append(out, Magic...)
	out = appendUint(out, count)
	for _, p := range palette.entries {
		out = appendPixel(out, p)
	}
	out = appendUint(out, m.Width)
	out = appendUint(out, height)
	out = append(out, tokens...)

	Logger().Debug("sprite sheet encoded",
		"width", uint64(m.Width),
		"height", uint64(height),
		"colors", palette.len(),
		"bytes", len(out))

	return out, nil
}

// tokenize builds the palette and the token stream in one scan.
func (m *Image[D, P]) tokenize() (*paletteBuilder[P], []byte, error) {
	palette := newPaletteBuilder[P]()
	tokens := make([]byte, 0, len(m.Pixels))

	var run runCoder[P]
	for _, p := range m.Pixels {
		if p.IsBackground() {
			tokens = run.push(tokens)
			continue
		}
		tokens = run.flush(tokens)

		id, err := palette.id(p)
		if err != nil {
			return nil, nil, err
		}
		tokens = appendUint(tokens, id)
	}
	tokens = run.flush(tokens)

	return palette, tokens, nil
}
