package rct2

import "encoding/binary"

// Offsets of modeled fields within one 256-byte sprite record. Only the
// linkage and peep fields the importer consumes are decoded; the rest of
// the record belongs to the simulation layer.
const (
	SpriteOffIdentifier     = 0x00
	SpriteOffType           = 0x01
	SpriteOffNextInQuadrant = 0x02
	SpriteOffNext           = 0x04
	SpriteOffPrevious       = 0x06
	SpriteOffListOffset     = 0x08
	SpriteOffPeepState      = 0x30
	SpriteOffPeepCurrentRide = 0x32
)

// RawSpriteRecord is one decoded sprite slot.
type RawSpriteRecord struct {
	Identifier     uint8
	Type           uint8
	NextInQuadrant uint16
	Next           uint16
	Previous       uint16
	ListOffset     uint8

	// Peep fields; meaningful only when Identifier is SpriteIdentifierPeep.
	PeepState       uint8
	PeepCurrentRide uint8
}

// DecodeSpriteRecord parses one sprite slot.
//
// Precondition: len(b) >= SpriteRecordSize.
func DecodeSpriteRecord(b []byte) RawSpriteRecord {
	return RawSpriteRecord{
		Identifier:      b[SpriteOffIdentifier],
		Type:            b[SpriteOffType],
		NextInQuadrant:  binary.LittleEndian.Uint16(b[SpriteOffNextInQuadrant:]),
		Next:            binary.LittleEndian.Uint16(b[SpriteOffNext:]),
		Previous:        binary.LittleEndian.Uint16(b[SpriteOffPrevious:]),
		ListOffset:      b[SpriteOffListOffset],
		PeepState:       b[SpriteOffPeepState],
		PeepCurrentRide: b[SpriteOffPeepCurrentRide],
	}
}

// RawPeepSpawnRecord is one guest entry point. X equal to
// PeepSpawnUndefined marks an unused slot.
type RawPeepSpawnRecord struct {
	X         uint16
	Y         uint16
	Z         uint8
	Direction uint8
}

// DecodePeepSpawnRecord parses one 6-byte spawn record.
func DecodePeepSpawnRecord(b []byte) RawPeepSpawnRecord {
	return RawPeepSpawnRecord{
		X:         binary.LittleEndian.Uint16(b),
		Y:         binary.LittleEndian.Uint16(b[2:]),
		Z:         b[4],
		Direction: b[5],
	}
}

// RawNewsItemRecord is one queued news message. Text remains in the legacy
// encoding until migration.
type RawNewsItemRecord struct {
	Type      uint8
	Flags     uint8
	Assoc     uint32
	Ticks     uint16
	MonthYear uint16
	Day       uint8
	Text      [NewsItemTextSize]byte
}

// DecodeNewsItemRecord parses one 268-byte news record.
func DecodeNewsItemRecord(b []byte) RawNewsItemRecord {
	var n RawNewsItemRecord
	n.Type = b[0]
	n.Flags = b[1]
	n.Assoc = binary.LittleEndian.Uint32(b[2:])
	n.Ticks = binary.LittleEndian.Uint16(b[6:])
	n.MonthYear = binary.LittleEndian.Uint16(b[8:])
	n.Day = b[10]
	copy(n.Text[:], b[12:])
	return n
}

// RawBannerRecord is one map banner definition.
type RawBannerRecord struct {
	Type       uint8
	Flags      uint8
	StringIdx  uint16
	Colour     uint8
	TextColour uint8
	X          uint8
	Y          uint8
}

// DecodeBannerRecord parses one 8-byte banner record.
func DecodeBannerRecord(b []byte) RawBannerRecord {
	return RawBannerRecord{
		Type:       b[0],
		Flags:      b[1],
		StringIdx:  binary.LittleEndian.Uint16(b[2:]),
		Colour:     b[4],
		TextColour: b[5],
		X:          b[6],
		Y:          b[7],
	}
}

// RawResearchItem is one research list entry.
type RawResearchItem struct {
	RawValue uint32
	Category uint8
}

// RawAward is one park award slot.
type RawAward struct {
	Time uint16
	Type uint16
}
