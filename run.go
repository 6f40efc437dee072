package sprite

// maxRun is the longest run one run token can carry.
const maxRun = 255

// runCoder accumulates a pending run of background pixels and writes it out
// as [marker][count] run tokens, where marker is the maximum value of P.
type runCoder[P UInt] struct {
	n uint8
}

// push counts one background pixel, flushing to dst when the counter
// saturates.
func (r *runCoder[P]) push(dst []byte) []byte {
	r.n++
	if r.n == maxRun {
		return r.flush(dst)
	}

	return dst
}

// flush writes the pending run, if any, and resets the counter.
func (r *runCoder[P]) flush(dst []byte) []byte {
	if r.n == 0 {
		return dst
	}

	dst = appendUint(dst, maxOf[P]())
	dst = append(dst, r.n)
	r.n = 0

	return dst
}
