package rct2

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// In-string formatting control codes. Colour codes occupy a contiguous
// range; their presence in an already-valid UTF-8 string is the tell that
// the text was written by a newer tool and needs no transcoding.
const (
	FormatColourCodeStart = 142
	FormatColourCodeEnd   = 155
)

// ContainsColourCode reports whether s, interpreted as UTF-8, contains a
// colour formatting code point. Legacy single-byte text never decodes to
// one of these as valid UTF-8, so a hit means the string is already in the
// destination encoding.
func ContainsColourCode(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if r >= FormatColourCodeStart && r <= FormatColourCodeEnd {
			return true
		}
	}
	return false
}

// DecodeString converts a NUL-terminated legacy single-byte string to
// UTF-8. Formatting control codes are carried over as their own code
// points; all other high bytes go through the Windows-1252 table the
// legacy charset was derived from.
func DecodeString(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c == 0 {
			break
		}
		switch {
		case c < 0x80:
			sb.WriteByte(c)
		case c >= FormatColourCodeStart && c <= FormatColourCodeEnd:
			sb.WriteRune(rune(c))
		default:
			r := charmap.Windows1252.DecodeByte(c)
			if r == utf8.RuneError {
				continue
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// DecodeStringChecked transcodes b unless heuristic inspection finds
// destination-specific colour codes already present, in which case the
// string is returned verbatim (treated as already transcoded).
func DecodeStringChecked(b []byte) string {
	raw := cstring(b)
	if ContainsColourCode(raw) {
		return raw
	}
	return DecodeString(b)
}
