package sawyer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// encodeChunk frames payload as one chunk with the given encoding byte.
func encodeChunk(encoding byte, payload []byte) []byte {
	out := make([]byte, chunkHeaderSize+len(payload))
	out[0] = encoding
	binary.LittleEndian.PutUint32(out[1:], uint32(len(payload)))
	copy(out[chunkHeaderSize:], payload)
	return out
}

// encodeRLE compresses data with the format's run-length scheme. Runs of
// three or more identical bytes become a (negative control, value) pair;
// everything else is emitted as literal spans.
func encodeRLE(data []byte) []byte {
	var out []byte
	i := 0
	for i < len(data) {
		run := 1
		for i+run < len(data) && data[i+run] == data[i] && run < 125 {
			run++
		}
		if run >= 3 {
			out = append(out, byte(int8(1-run)), data[i])
			i += run
			continue
		}
		// Literal span up to the next long run.
		start := i
		for i < len(data) && i-start < 125 {
			run = 1
			for i+run < len(data) && data[i+run] == data[i] {
				run++
			}
			if run >= 3 {
				break
			}
			i += run
		}
		out = append(out, byte(i-start-1))
		out = append(out, data[start:i]...)
	}
	return out
}

func TestReadChunkUncompressed(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}
	cr := NewChunkReader(bytes.NewReader(encodeChunk(EncodingNone, payload)))

	dst := make([]byte, len(payload))
	require.NoError(t, cr.ReadChunk(dst))
	assert.Equal(t, payload, dst)
}

func TestReadChunkRLE(t *testing.T) {
	data := []byte{7, 7, 7, 7, 7, 1, 2, 3, 9, 9, 9, 9}
	cr := NewChunkReader(bytes.NewReader(encodeChunk(EncodingRLE, encodeRLE(data))))

	dst := make([]byte, len(data))
	require.NoError(t, cr.ReadChunk(dst))
	assert.Equal(t, data, dst)
}

func TestReadChunkSequence(t *testing.T) {
	var stream bytes.Buffer
	stream.Write(encodeChunk(EncodingNone, []byte{1, 2}))
	stream.Write(encodeChunk(EncodingRLE, encodeRLE([]byte{3, 3, 3, 3})))

	cr := NewChunkReader(&stream)

	first := make([]byte, 2)
	require.NoError(t, cr.ReadChunk(first))
	assert.Equal(t, []byte{1, 2}, first)

	second := make([]byte, 4)
	require.NoError(t, cr.ReadChunk(second))
	assert.Equal(t, []byte{3, 3, 3, 3}, second)
}

func TestReadChunkSizeMismatch(t *testing.T) {
	cr := NewChunkReader(bytes.NewReader(encodeChunk(EncodingNone, []byte{1, 2, 3})))

	dst := make([]byte, 5)
	err := cr.ReadChunk(dst)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadChunkRLESizeMismatch(t *testing.T) {
	cr := NewChunkReader(bytes.NewReader(encodeChunk(EncodingRLE, encodeRLE([]byte{1, 2, 3}))))

	dst := make([]byte, 8)
	err := cr.ReadChunk(dst)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadChunkUnknownEncoding(t *testing.T) {
	cr := NewChunkReader(bytes.NewReader(encodeChunk(9, []byte{1, 2, 3})))

	dst := make([]byte, 3)
	err := cr.ReadChunk(dst)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadChunkTruncatedHeader(t *testing.T) {
	cr := NewChunkReader(bytes.NewReader([]byte{EncodingNone, 5}))

	dst := make([]byte, 5)
	err := cr.ReadChunk(dst)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadChunkTruncatedPayload(t *testing.T) {
	full := encodeChunk(EncodingNone, []byte{1, 2, 3, 4, 5})
	cr := NewChunkReader(bytes.NewReader(full[:len(full)-2]))

	dst := make([]byte, 5)
	err := cr.ReadChunk(dst)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadChunkRLERunPastDeclaredSize(t *testing.T) {
	// One run of 100 bytes into a 4-byte destination.
	runLen := int8(1 - 100)
	payload := []byte{byte(runLen), 0xAA}
	cr := NewChunkReader(bytes.NewReader(encodeChunk(EncodingRLE, payload)))

	dst := make([]byte, 4)
	err := cr.ReadChunk(dst)
	assert.ErrorIs(t, err, ErrFormat)
}

func TestReadChunkRLERunWithoutValue(t *testing.T) {
	runLen := int8(-3)
	payload := []byte{byte(runLen)}
	cr := NewChunkReader(bytes.NewReader(encodeChunk(EncodingRLE, payload)))

	dst := make([]byte, 4)
	err := cr.ReadChunk(dst)
	assert.ErrorIs(t, err, ErrTruncated)
}

func TestReadChunkAny(t *testing.T) {
	data := []byte{5, 5, 5, 5, 5, 5, 1, 2}
	cr := NewChunkReader(bytes.NewReader(encodeChunk(EncodingRLE, encodeRLE(data))))

	got, err := cr.ReadChunkAny(1024)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestReadChunkAnySizeLimit(t *testing.T) {
	runLen := int8(1 - 100)
	payload := []byte{byte(runLen), 0xAA}
	cr := NewChunkReader(bytes.NewReader(encodeChunk(EncodingRLE, payload)))

	_, err := cr.ReadChunkAny(16)
	assert.ErrorIs(t, err, ErrFormat)
}

// Property-based tests

func TestPropertyRLERoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOfN(rapid.Byte(), 1, 4096).Draw(t, "data")

		cr := NewChunkReader(bytes.NewReader(encodeChunk(EncodingRLE, encodeRLE(data))))
		dst := make([]byte, len(data))
		if err := cr.ReadChunk(dst); err != nil {
			t.Fatalf("decoding round-tripped chunk: %v", err)
		}
		if !bytes.Equal(dst, data) {
			t.Fatalf("round trip mismatch: got %v want %v", dst, data)
		}
	})
}

func TestPropertyRLENeverDecodesPastDeclaredSize(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), 1, 256).Draw(t, "payload")
		size := rapid.IntRange(0, 64).Draw(t, "size")

		cr := NewChunkReader(bytes.NewReader(encodeChunk(EncodingRLE, payload)))
		dst := make([]byte, size)
		// Arbitrary payloads may be invalid; the only requirement is no
		// panic and a sentinel-classified error when they are.
		if err := cr.ReadChunk(dst); err != nil {
			if !errIsAny(err, ErrFormat, ErrTruncated) {
				t.Fatalf("unexpected error class: %v", err)
			}
		}
	})
}

func errIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
