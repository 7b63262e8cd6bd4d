package render

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/willbeason/progressive-mandelbrot/pkg/escape"
)

var ErrBadFrame = errors.New("bad frame")

// Wire format of a streamed frame, all integers little-endian uint32:
//
//	magic "MBF1" | width | height | iteration | flags | active | escaped | interior
//
// followed by the zstd-compressed RGBA pixels.
var frameMagic = []byte("MBF1")

const (
	headerSize   = 32
	flagSettled  = 1 << 0
	maxFrameSize = 1 << 30
)

var (
	frameEncoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	})
	frameDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(maxFrameSize))
	})
)

// EncodeFrame serializes f. The pixels are compressed, so the result does not
// alias f.Pix.
func EncodeFrame(f Frame) ([]byte, error) {
	if len(f.Pix) != f.Width*f.Height*4 {
		return nil, fmt.Errorf("%w: %d bytes of pixels for %dx%d", ErrBadFrame, len(f.Pix), f.Width, f.Height)
	}

	var flags uint32
	if f.Settled {
		flags |= flagSettled
	}

	header := make([]byte, headerSize, headerSize+len(f.Pix)/4)
	copy(header, frameMagic)
	for i, v := range []uint32{
		uint32(f.Width),
		uint32(f.Height),
		uint32(f.Iteration),
		flags,
		uint32(f.Counts.Active),
		uint32(f.Counts.Escaped),
		uint32(f.Counts.Interior),
	} {
		binary.LittleEndian.PutUint32(header[4+4*i:], v)
	}

	enc, err := frameEncoder()
	if err != nil {
		return nil, fmt.Errorf("zstd encoder: %w", err)
	}

	return enc.EncodeAll(f.Pix, header), nil
}

// DecodeFrame is the inverse of EncodeFrame.
func DecodeFrame(data []byte) (Frame, error) {
	if len(data) < headerSize || !bytes.Equal(data[:4], frameMagic) {
		return Frame{}, fmt.Errorf("%w: missing header", ErrBadFrame)
	}

	field := func(i int) int {
		return int(binary.LittleEndian.Uint32(data[4+4*i:]))
	}

	f := Frame{
		Width:     field(0),
		Height:    field(1),
		Iteration: field(2),
		Settled:   field(3)&flagSettled != 0,
		Counts: escape.Counts{
			Active:   field(4),
			Escaped:  field(5),
			Interior: field(6),
		},
	}

	// Bound each side before multiplying so the size cannot overflow.
	if f.Width <= 0 || f.Height <= 0 || f.Width > maxFrameSize/4/f.Height {
		return Frame{}, fmt.Errorf("%w: invalid size %dx%d", ErrBadFrame, f.Width, f.Height)
	}
	size := f.Width * f.Height * 4

	dec, err := frameDecoder()
	if err != nil {
		return Frame{}, fmt.Errorf("zstd decoder: %w", err)
	}

	pix, err := dec.DecodeAll(data[headerSize:], make([]byte, 0, size))
	if err != nil {
		return Frame{}, fmt.Errorf("%w: zstd decode: %w", ErrBadFrame, err)
	}
	if len(pix) != size {
		return Frame{}, fmt.Errorf("%w: %d bytes of pixels for %dx%d", ErrBadFrame, len(pix), f.Width, f.Height)
	}

	f.Pix = pix
	return f, nil
}
