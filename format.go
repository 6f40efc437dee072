package sprite

// Magic marks the start of an encoded sprite sheet.
const Magic = "SSC"

// Wire layout, all integers big-endian:
//
//	magic          3 bytes
//	palette count  P
//	palette        count x RGBA
//	width          D
//	height         D
//	tokens         P (palette id) or P+1 (max(P) marker, run length byte)

// headerSize returns the encoded size of everything before the token stream.
func headerSize[D, P UInt](colors int) int {
	return len(Magic) + widthOf[P]() + colors*pixelBytes + 2*widthOf[D]()
}
