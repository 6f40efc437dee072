package sprite

import "math/bits"

// UInt is the set of unsigned types usable as dimension or palette id
// fields. Each is written big-endian using exactly its own byte width.
type UInt interface {
	~uint8 | ~uint16 | ~uint32
}

// maxOf returns the largest value representable by T.
func maxOf[T UInt]() T {
	return ^T(0)
}

// widthOf returns the encoded size of T in bytes.
func widthOf[T UInt]() int {
	return (bits.Len64(uint64(maxOf[T]())) + 7) / 8
}

// appendUint appends v to dst in big-endian order.
func appendUint[T UInt](dst []byte, v T) []byte {
	n := widthOf[T]()
	u := uint64(v)
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(u>>(8*i)))
	}

	return dst
}

// readUint decodes a big-endian T from the front of src and returns the rest.
// ok is false if src is too short.
func readUint[T UInt](src []byte) (v T, rest []byte, ok bool) {
	n := widthOf[T]()
	if len(src) < n {
		return 0, src, false
	}

	var u uint64
	for _, b := range src[:n] {
		u = u<<8 | uint64(b)
	}

	return T(u), src[n:], true
}
