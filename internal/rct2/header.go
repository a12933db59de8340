package rct2

import (
	"bytes"
	"encoding/binary"
)

// RawHeader is the 32-byte file header: the layout type tag, the classic
// sentinel flag and the count of packed objects that follow the header (and,
// for scenarios, the info block).
type RawHeader struct {
	Type             uint8
	ClassicFlag      uint8
	NumPackedObjects uint16
	Version          uint32
	MagicNumber      uint32
}

// DecodeHeader parses a header chunk.
//
// Precondition: len(b) == HeaderSize.
func DecodeHeader(b []byte) RawHeader {
	return RawHeader{
		Type:             b[0],
		ClassicFlag:      b[1],
		NumPackedObjects: binary.LittleEndian.Uint16(b[2:]),
		Version:          binary.LittleEndian.Uint32(b[4:]),
		MagicNumber:      binary.LittleEndian.Uint32(b[8:]),
	}
}

// RawScenarioInfo is the scenario info block, present in scenarios only.
// Name and Details remain in the legacy single-byte encoding until the
// field migrator transcodes them.
type RawScenarioInfo struct {
	EditorStep    uint8
	Category      uint8
	ObjectiveType uint8
	ObjectiveArg1 uint8
	ObjectiveArg2 int32
	ObjectiveArg3 int16
	Name          [64]byte
	Details       [256]byte
	Entry         [ObjectEntrySize]byte
}

// Historical offsets within the scenario info block.
const (
	infoOffName    = 0x48
	infoOffDetails = 0x88
	infoOffEntry   = 0x188
)

// DecodeScenarioInfo parses a scenario info chunk.
//
// Precondition: len(b) == ScenarioInfoSize.
func DecodeScenarioInfo(b []byte) RawScenarioInfo {
	var info RawScenarioInfo
	info.EditorStep = b[0]
	info.Category = b[1]
	info.ObjectiveType = b[2]
	info.ObjectiveArg1 = b[3]
	info.ObjectiveArg2 = int32(binary.LittleEndian.Uint32(b[4:]))
	info.ObjectiveArg3 = int16(binary.LittleEndian.Uint16(b[8:]))
	copy(info.Name[:], b[infoOffName:])
	copy(info.Details[:], b[infoOffDetails:])
	copy(info.Entry[:], b[infoOffEntry:])
	return info
}

// ObjectEntry identifies one referenced external object definition.
type ObjectEntry struct {
	Flags    uint32
	Name     [8]byte
	Checksum uint32
}

// IsEmpty reports whether the entry slot is unused (all 0xFF, as written by
// the legacy editor for empty slots).
func (e ObjectEntry) IsEmpty() bool {
	return e.Flags == 0xFFFFFFFF
}

// Identifier returns the trimmed 8-character object name.
func (e ObjectEntry) Identifier() string {
	return string(bytes.TrimRight(e.Name[:], " "))
}

// DecodeObjectEntry parses one 16-byte object entry.
//
// Precondition: len(b) >= ObjectEntrySize.
func DecodeObjectEntry(b []byte) ObjectEntry {
	var e ObjectEntry
	e.Flags = binary.LittleEndian.Uint32(b)
	copy(e.Name[:], b[4:12])
	e.Checksum = binary.LittleEndian.Uint32(b[12:])
	return e
}

// DecodeObjectList parses the 721-entry object list chunk.
//
// Precondition: len(b) == ObjectListSize.
func DecodeObjectList(b []byte) []ObjectEntry {
	entries := make([]ObjectEntry, ObjectEntryCount)
	for i := range entries {
		entries[i] = DecodeObjectEntry(b[i*ObjectEntrySize:])
	}
	return entries
}

// RawDate is the 16-byte date chunk that follows the object list.
type RawDate struct {
	ElapsedMonths uint16
	CurrentDay    uint16
	ScenarioTicks uint32
	SRand0        uint32
	SRand1        uint32
}

// DecodeDate parses the date chunk.
//
// Precondition: len(b) == DateChunkSize.
func DecodeDate(b []byte) RawDate {
	return RawDate{
		ElapsedMonths: binary.LittleEndian.Uint16(b),
		CurrentDay:    binary.LittleEndian.Uint16(b[2:]),
		ScenarioTicks: binary.LittleEndian.Uint32(b[4:]),
		SRand0:        binary.LittleEndian.Uint32(b[8:]),
		SRand1:        binary.LittleEndian.Uint32(b[12:]),
	}
}
