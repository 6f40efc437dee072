package sprite

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	// BlockMagicCOPY marks an uncompressed block.
	BlockMagicCOPY = "COPY"
	// BlockMagicLZ4 marks an LZ4 chunk-stream block.
	BlockMagicLZ4 = "LZ4 "
	// BlockMagicZstd marks a zstd block.
	BlockMagicZstd = "ZSTD"

	// ChunkSize is the raw size of one LZ4 chunk.
	ChunkSize = 64 * 1024
	// MaxBlockSize bounds the raw size a block may declare.
	MaxBlockSize = 64 << 20

	blockHeaderSize = 8
	lastChunk       = 1 << 31
	minCompressSize = 128
)

// Compression selects the block payload coding.
type Compression uint8

const (
	// CompressionLZ4 stores an LZ4 chunk stream.
	CompressionLZ4 Compression = iota
	// CompressionZstd stores a single zstd frame.
	CompressionZstd
	// CompressionNone stores the payload as is.
	CompressionNone
)

// BlockOptions configures Pack. Nil means LZ4 at lz4.Fast.
type BlockOptions struct {
	Compression Compression
	// Level is the LZ4 HC depth. lz4.Fast uses the plain block compressor.
	Level lz4.CompressionLevel
}

// EncodeBlock encodes the sheet and wraps it in a block container.
func (m *Image[D, P]) EncodeBlock(opts *BlockOptions) ([]byte, error) {
	raw, err := m.Encode()
	if err != nil {
		return nil, err
	}

	return Pack(raw, opts)
}

// DecodeBlock unwraps a block container and decodes the sheet inside it.
func DecodeBlock[D, P UInt](data []byte) (*Image[D, P], error) {
	raw, err := Unpack(data)
	if err != nil {
		return nil, err
	}

	return Decode[D, P](raw)
}

// Pack wraps raw in a block container: 4-byte magic, big-endian uint32 raw
// size, payload. Data that does not compress by at least 15% is stored as
// COPY.
func Pack(raw []byte, opts *BlockOptions) ([]byte, error) {
	if opts == nil {
		opts = &BlockOptions{Compression: CompressionLZ4, Level: lz4.Fast}
	}
	switch opts.Compression {
	case CompressionNone, CompressionLZ4, CompressionZstd:
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, opts.Compression)
	}
	if len(raw) > MaxBlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrBlockTooLarge, len(raw))
	}

	var (
		magic   = BlockMagicCOPY
		payload = raw
	)
	if len(raw) >= minCompressSize {
		var (
			packed []byte
			err    error
		)
		switch opts.Compression {
		case CompressionNone:
		case CompressionLZ4:
			packed, err = packLZ4(raw, opts.Level)
			magic = BlockMagicLZ4
		case CompressionZstd:
			packed = packZstd(raw)
			magic = BlockMagicZstd
		}
		if err != nil {
			return nil, err
		}

		if packed == nil || float64(len(packed)) > float64(len(raw))*0.85 {
			magic = BlockMagicCOPY
		} else {
			payload = packed
		}
	}

	size, err := u32FromInt(len(raw))
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, blockHeaderSize+len(payload))
	out = append(out, magic...)
	out = binary.BigEndian.AppendUint32(out, size)
	out = append(out, payload...)

	Logger().Debug("block packed", "magic", magic, "raw", len(raw), "packed", len(out))

	return out, nil
}

// Unpack returns the raw bytes stored in a block container.
func Unpack(data []byte) ([]byte, error) {
	if len(data) < blockHeaderSize {
		return nil, fmt.Errorf("%w: need %d bytes header, have %d", ErrTruncatedBlock, blockHeaderSize, len(data))
	}

	magic := string(data[:4])
	size := binary.BigEndian.Uint32(data[4:blockHeaderSize])
	payload := data[blockHeaderSize:]
	if size > MaxBlockSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrBlockTooLarge, size)
	}

	switch magic {
	case BlockMagicCOPY:
		if len(payload) != int(size) {
			return nil, fmt.Errorf("%w: expected %d, got %d", ErrBlockSizeMismatch, size, len(payload))
		}
		out := make([]byte, len(payload))
		copy(out, payload)
		return out, nil
	case BlockMagicLZ4:
		return unpackLZ4(payload, int(size))
	case BlockMagicZstd:
		return unpackZstd(payload, int(size))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBlockMagic, magic)
	}
}

// packLZ4 compresses raw as a stream of independent ChunkSize chunks, each
// prefixed by a big-endian uint32 of its compressed size with the top bit
// set on the last chunk. It returns nil if any chunk is incompressible.
func packLZ4(raw []byte, level lz4.CompressionLevel) ([]byte, error) {
	stream := make([]byte, 0, len(raw))
	buf := make([]byte, lz4.CompressBlockBound(ChunkSize))

	for i := 0; i < len(raw); i += ChunkSize {
		end := min(i+ChunkSize, len(raw))
		chunk := raw[i:end]

		var (
			cn  int
			err error
		)
		if level == lz4.Fast {
			cn, err = lz4.CompressBlock(chunk, buf, nil)
		} else {
			cn, err = lz4.CompressBlockHC(chunk, buf, level, nil, nil)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLZ4Compress, err)
		}
		if cn == 0 || float64(cn) > float64(len(chunk))*0.85 {
			return nil, nil
		}

		hdr := uint32(cn)
		if end == len(raw) {
			hdr |= lastChunk
		}
		stream = binary.BigEndian.AppendUint32(stream, hdr)
		stream = append(stream, buf[:cn]...)
	}

	return stream, nil
}

func unpackLZ4(data []byte, size int) ([]byte, error) {
	// LZ4 cannot expand input by more than about 255x.
	if size/255 > len(data) {
		return nil, fmt.Errorf("%w: %d bytes cannot expand to %d", ErrBlockSizeMismatch, len(data), size)
	}

	target := make([]byte, size)
	out := 0

	for {
		if len(data) < 4 {
			return nil, fmt.Errorf("%w: need 4 bytes chunk header, have %d", ErrTruncatedBlock, len(data))
		}
		hdr := binary.BigEndian.Uint32(data)
		data = data[4:]

		cSize := int(hdr &^ lastChunk)
		if cSize == 0 || cSize > len(data) {
			return nil, fmt.Errorf("%w: %d (remaining %d)", ErrInvalidChunkSize, cSize, len(data))
		}

		remaining := size - out
		if remaining <= 0 {
			return nil, fmt.Errorf("%w: chunk past declared size %d", ErrBlockSizeMismatch, size)
		}

		n, err := lz4.UncompressBlock(data[:cSize], target[out:out+min(ChunkSize, remaining)])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLZ4Decode, err)
		}
		out += n
		data = data[cSize:]

		if hdr&lastChunk != 0 {
			break
		}
	}

	if out != size {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrBlockSizeMismatch, size, out)
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("%w: %d bytes left after decode", ErrBlockSizeMismatch, len(data))
	}

	return target, nil
}

var zstdEncPool = sync.Pool{
	New: func() any {
		enc, err := zstd.NewWriter(
			nil,
			zstd.WithEncoderConcurrency(1),
			zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
			zstd.WithLowerEncoderMem(true),
		)
		if err != nil {
			panic(err)
		}
		return enc
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(
			nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
			zstd.WithDecoderMaxMemory(MaxBlockSize),
		)
		if err != nil {
			panic(err)
		}
		return dec
	},
}

func packZstd(raw []byte) []byte {
	enc := zstdEncPool.Get().(*zstd.Encoder)
	defer zstdEncPool.Put(enc)

	return enc.EncodeAll(raw, nil)
}

// unpackZstd checks the frame header against size before decoding. The
// output buffer is left to DecodeAll, bounded by WithDecoderMaxMemory.
func unpackZstd(data []byte, size int) ([]byte, error) {
	var hdr zstd.Header
	if err := hdr.Decode(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrZstdDecode, err)
	}
	if hdr.HasFCS && hdr.FrameContentSize != uint64(size) {
		return nil, fmt.Errorf("%w: frame holds %d, expected %d", ErrBlockSizeMismatch, hdr.FrameContentSize, size)
	}
	// A zstd block of at most 128 KiB costs at least 4 bytes as an RLE block.
	if size/(32<<10) > len(data) {
		return nil, fmt.Errorf("%w: %d bytes cannot expand to %d", ErrBlockSizeMismatch, len(data), size)
	}

	dec := zstdDecPool.Get().(*zstd.Decoder)
	defer zstdDecPool.Put(dec)

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrZstdDecode, err)
	}
	if len(out) != size {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrBlockSizeMismatch, size, len(out))
	}

	return out, nil
}
