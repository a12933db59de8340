package sawyer

import (
	"encoding/binary"
	"fmt"
	"io"
)

// checksumSize is the trailing little-endian uint32 appended to checksummed
// streams.
const checksumSize = 4

// ValidateChecksum verifies the whole-stream checksum: the byte-wise uint32
// sum of everything before the trailing four bytes must equal the value
// stored in them. The cursor is restored to the start of the stream so chunk
// reading can begin afterwards.
//
// Precondition: rs must be positioned at the start of the stream.
// Postcondition: returns nil and a rewound stream on success; ErrChecksum on
// mismatch; ErrTruncated if the stream is too short to carry a checksum.
func ValidateChecksum(rs io.ReadSeeker) error {
	size, err := rs.Seek(0, io.SeekEnd)
	if err != nil {
		return fmt.Errorf("sizing stream: %w", err)
	}
	if size < checksumSize {
		return fmt.Errorf("%w: stream too short for a checksum", ErrTruncated)
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding stream: %w", err)
	}

	remaining := size - checksumSize
	var sum uint32
	buf := make([]byte, 4096)
	for remaining > 0 {
		n := int64(len(buf))
		if remaining < n {
			n = remaining
		}
		if _, err := io.ReadFull(rs, buf[:n]); err != nil {
			return fmt.Errorf("reading checksummed payload: %w", err)
		}
		for _, b := range buf[:n] {
			sum += uint32(b)
		}
		remaining -= n
	}

	var trailer [checksumSize]byte
	if _, err := io.ReadFull(rs, trailer[:]); err != nil {
		return fmt.Errorf("reading checksum trailer: %w", err)
	}
	want := binary.LittleEndian.Uint32(trailer[:])

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding stream: %w", err)
	}

	if sum != want {
		return fmt.Errorf("%w: computed 0x%08x, stored 0x%08x", ErrChecksum, sum, want)
	}
	return nil
}
