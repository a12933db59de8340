// Package sawyer reads the chunked container format used by legacy RCT2
// scenario (.sc6) and saved-game (.sv6) files. Each chunk is framed by a
// five-byte header (one encoding byte plus a little-endian uint32 payload
// length) and is optionally run-length compressed. The byte-level semantics
// are externally fixed and shared with existing legacy content.
package sawyer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Chunk payload encodings. The park container only ever uses these two;
// any other value is treated as corruption.
const (
	EncodingNone = 0
	EncodingRLE  = 1
)

const chunkHeaderSize = 5

// ChunkReader reads length-prefixed, optionally RLE-compressed chunks from
// an underlying stream. It only ever advances the stream cursor; it never
// touches destination state beyond the buffer handed to ReadChunk.
type ChunkReader struct {
	r io.Reader
}

// NewChunkReader wraps r in a ChunkReader.
//
// Precondition: r must be positioned at the first chunk header.
func NewChunkReader(r io.Reader) *ChunkReader {
	return &ChunkReader{r: r}
}

// ReadChunk reads the next chunk, decompresses it if flagged, and copies the
// result into dst. The decoded payload must fill dst exactly: the format
// defines every chunk size ahead of time and allows no partial chunks.
//
// Postcondition: on success dst is fully overwritten and the stream cursor
// sits at the next chunk header. Returns ErrTruncated if the stream ends
// early and ErrFormat if the encoding byte is unknown or the decoded size
// differs from len(dst).
func (cr *ChunkReader) ReadChunk(dst []byte) error {
	var hdr [chunkHeaderSize]byte
	if _, err := io.ReadFull(cr.r, hdr[:]); err != nil {
		return chunkReadErr("chunk header", err)
	}

	encoding := hdr[0]
	length := binary.LittleEndian.Uint32(hdr[1:])

	payload := make([]byte, length)
	if _, err := io.ReadFull(cr.r, payload); err != nil {
		return chunkReadErr("chunk payload", err)
	}

	switch encoding {
	case EncodingNone:
		if int(length) != len(dst) {
			return fmt.Errorf("%w: chunk is %d bytes, expected %d", ErrFormat, length, len(dst))
		}
		copy(dst, payload)
		return nil
	case EncodingRLE:
		n, err := decodeRLE(dst, payload)
		if err != nil {
			return err
		}
		if n != len(dst) {
			return fmt.Errorf("%w: chunk decodes to %d bytes, expected %d", ErrFormat, n, len(dst))
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown chunk encoding 0x%02x", ErrFormat, encoding)
	}
}

// ReadChunkAny reads the next chunk without a size expectation and returns
// the decoded payload. Packed-object chunks are the only place the format
// leaves the decoded size undeclared; maxSize caps the expansion so a
// corrupt run length cannot balloon the allocation.
func (cr *ChunkReader) ReadChunkAny(maxSize int) ([]byte, error) {
	var hdr [chunkHeaderSize]byte
	if _, err := io.ReadFull(cr.r, hdr[:]); err != nil {
		return nil, chunkReadErr("chunk header", err)
	}

	encoding := hdr[0]
	length := binary.LittleEndian.Uint32(hdr[1:])

	payload := make([]byte, length)
	if _, err := io.ReadFull(cr.r, payload); err != nil {
		return nil, chunkReadErr("chunk payload", err)
	}

	switch encoding {
	case EncodingNone:
		if int(length) > maxSize {
			return nil, fmt.Errorf("%w: chunk is %d bytes, limit %d", ErrFormat, length, maxSize)
		}
		return payload, nil
	case EncodingRLE:
		return decodeRLEAlloc(payload, maxSize)
	default:
		return nil, fmt.Errorf("%w: unknown chunk encoding 0x%02x", ErrFormat, encoding)
	}
}

// decodeRLEAlloc expands src into a fresh buffer, refusing to grow past
// maxSize.
func decodeRLEAlloc(src []byte, maxSize int) ([]byte, error) {
	out := make([]byte, 0, len(src))
	for i := 0; i < len(src); {
		b := int8(src[i])
		i++
		if b < 0 {
			count := 1 - int(b)
			if i >= len(src) {
				return nil, fmt.Errorf("%w: run without a value byte", ErrTruncated)
			}
			if len(out)+count > maxSize {
				return nil, fmt.Errorf("%w: chunk decodes past the size limit %d", ErrFormat, maxSize)
			}
			v := src[i]
			i++
			for j := 0; j < count; j++ {
				out = append(out, v)
			}
		} else {
			count := int(b) + 1
			if i+count > len(src) {
				return nil, fmt.Errorf("%w: literal run exceeds chunk payload", ErrTruncated)
			}
			if len(out)+count > maxSize {
				return nil, fmt.Errorf("%w: chunk decodes past the size limit %d", ErrFormat, maxSize)
			}
			out = append(out, src[i:i+count]...)
			i += count
		}
	}
	return out, nil
}

// decodeRLE expands src into dst and returns the number of bytes produced.
// A negative control byte b repeats the following byte 1-b times; a
// non-negative control byte copies b+1 literal bytes.
func decodeRLE(dst, src []byte) (int, error) {
	out := 0
	for i := 0; i < len(src); {
		b := int8(src[i])
		i++
		if b < 0 {
			count := 1 - int(b)
			if i >= len(src) {
				return 0, fmt.Errorf("%w: run without a value byte", ErrTruncated)
			}
			if out+count > len(dst) {
				return 0, fmt.Errorf("%w: chunk decodes past its declared size", ErrFormat)
			}
			v := src[i]
			i++
			for j := 0; j < count; j++ {
				dst[out] = v
				out++
			}
		} else {
			count := int(b) + 1
			if i+count > len(src) {
				return 0, fmt.Errorf("%w: literal run exceeds chunk payload", ErrTruncated)
			}
			if out+count > len(dst) {
				return 0, fmt.Errorf("%w: chunk decodes past its declared size", ErrFormat)
			}
			copy(dst[out:], src[i:i+count])
			i += count
			out += count
		}
	}
	return out, nil
}

func chunkReadErr(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: stream ended inside %s", ErrTruncated, what)
	}
	return fmt.Errorf("reading %s: %w", what, err)
}
