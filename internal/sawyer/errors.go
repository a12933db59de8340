package sawyer

import "errors"

// ErrFormat is returned when the stream contents contradict the format:
// a bad magic value, an unknown chunk encoding, or a decoded chunk whose
// size does not match the declared record size.
var ErrFormat = errors.New("malformed park data")

// ErrChecksum is returned when the stream's trailing checksum does not
// match the byte sum of the payload. Checksum enforcement can be disabled
// by the caller, in which case this error is never produced.
var ErrChecksum = errors.New("checksum mismatch")

// ErrUnsupportedFormat is returned for streams that are recognised but not
// importable, such as the legacy compressed-save variant flagged in the
// header.
var ErrUnsupportedFormat = errors.New("unsupported park format")

// ErrTruncated is returned when the stream ends before a declared chunk
// length has been satisfied. The format allows no partial chunks.
var ErrTruncated = errors.New("truncated park data")
