package rct2

import "encoding/binary"

// Tile element type tags, as stored in bits 2-5 of the first record byte.
// Values 8, 14 and 15 are corrupt/legacy markers whose payload bytes carry
// no variant layout; they are passed through undecoded.
const (
	TileElementTypeSurface      = 0
	TileElementTypePath         = 1
	TileElementTypeTrack        = 2
	TileElementTypeSmallScenery = 3
	TileElementTypeEntrance     = 4
	TileElementTypeWall         = 5
	TileElementTypeLargeScenery = 6
	TileElementTypeBanner       = 7
	TileElementTypeCorrupt      = 8
	TileElementTypeCorrupt14    = 14
	TileElementTypeCorrupt15    = 15
)

// Tile element flag bits (second record byte).
const (
	TileFlagGhost       = 0x10
	TileFlagLastForTile = 0x80
)

// RawTileRecord is one bit-packed 8-byte map record: type tag, flags, base
// and clearance heights, then four bytes whose meaning depends on the tag.
// Accessors below are pure mask/shift extractions; no accessor may be used
// for a record whose tag selects a different variant.
type RawTileRecord [TileElementSize]byte

// Type returns the variant tag.
func (r RawTileRecord) Type() uint8 { return (r[0] & 0x3C) >> 2 }

// Direction returns the element rotation (0-3).
func (r RawTileRecord) Direction() uint8 { return r[0] & 0x03 }

func (r RawTileRecord) Flags() uint8           { return r[1] }
func (r RawTileRecord) BaseHeight() uint8      { return r[2] }
func (r RawTileRecord) ClearanceHeight() uint8 { return r[3] }

// IsSentinel reports whether the record is an unused/padding slot, exempt
// from type-directed decoding.
func (r RawTileRecord) IsSentinel() bool { return r[2] == BaseHeightSentinel }

// IsLastForTile reports whether this is the final element on its map cell.
func (r RawTileRecord) IsLastForTile() bool { return r[1]&TileFlagLastForTile != 0 }

// Surface accessors. Byte 4 packs slope and edge style, byte 5 packs
// terrain style and water height; high bits of both spill into byte 0.

func (r RawTileRecord) SurfaceSlope() uint8 { return r[4] & 0x1F }

func (r RawTileRecord) SurfaceStyle() uint8 {
	style := (r[5] & 0xE0) >> 5
	style |= (r[0] & 0x01) << 3
	return style
}

func (r RawTileRecord) SurfaceEdgeStyle() uint8 {
	edge := (r[4] & 0xE0) >> 5
	if r[0]&0x80 != 0 {
		edge |= 1 << 3
	}
	return edge
}

func (r RawTileRecord) SurfaceGrassLength() uint8 { return r[6] }
func (r RawTileRecord) SurfaceOwnership() uint8   { return r[7] & 0xF0 }
func (r RawTileRecord) SurfaceParkFences() uint8  { return r[7] & 0x0F }
func (r RawTileRecord) SurfaceWaterHeight() uint8 { return r[5] & 0x1F }

func (r RawTileRecord) SurfaceHasTrackThatNeedsWater() bool { return r[0]&0x40 != 0 }

// Path accessors. Byte 4: entry index high nibble, queue banner flag,
// slope. Byte 5: addition and station index. Byte 6: edge/corner masks.
// Byte 7: ride index or addition status, depending on queue use.

func (r RawTileRecord) PathEntryIndex() uint8          { return r[4] >> 4 }
func (r RawTileRecord) PathQueueBannerDirection() uint8 { return (r[0] & 0xC0) >> 6 }
func (r RawTileRecord) PathIsSloped() bool             { return r[4]&0x04 != 0 }
func (r RawTileRecord) PathSlopeDirection() uint8      { return r[4] & 0x03 }
func (r RawTileRecord) PathRideIndex() uint8           { return r[7] }
func (r RawTileRecord) PathStationIndex() uint8        { return (r[5] & 0x70) >> 4 }
func (r RawTileRecord) PathIsWide() bool               { return r[0]&0x02 != 0 }
func (r RawTileRecord) PathIsQueue() bool              { return r[0]&0x01 != 0 }
func (r RawTileRecord) PathHasQueueBanner() bool       { return r[4]&0x08 != 0 }
func (r RawTileRecord) PathEdges() uint8               { return r[6] & 0x0F }
func (r RawTileRecord) PathCorners() uint8             { return r[6] >> 4 }
func (r RawTileRecord) PathAddition() uint8            { return r[5] & 0x0F }
func (r RawTileRecord) PathAdditionIsGhost() bool      { return r[5]&0x80 != 0 }
func (r RawTileRecord) PathAdditionStatus() uint8      { return r[7] }

// Track accessors. Byte 4: track type. Byte 5: sequence plus station/photo
// bits. Byte 6: colour scheme and per-element flags. Byte 7: ride index.
// Bytes 5-6 together form the maze entry mask for maze rides.

func (r RawTileRecord) TrackType() uint8          { return r[4] }
func (r RawTileRecord) TrackSequenceIndex() uint8 { return r[5] & 0x0F }
func (r RawTileRecord) TrackRideIndex() uint8     { return r[7] }
func (r RawTileRecord) TrackColourScheme() uint8  { return r[6] & 0x03 }
func (r RawTileRecord) TrackStationIndex() uint8  { return (r[5] & 0x70) >> 4 }
func (r RawTileRecord) TrackHasChain() bool       { return r[0]&0x80 != 0 }
func (r RawTileRecord) TrackHasCableLift() bool   { return r[6]&0x08 != 0 }
func (r RawTileRecord) TrackIsInverted() bool     { return r[6]&0x04 != 0 }
func (r RawTileRecord) TrackBrakeBoosterSpeed() uint8 { return (r[5] >> 4) << 1 }
func (r RawTileRecord) TrackHasGreenLight() bool  { return r[5]&0x80 != 0 }
func (r RawTileRecord) TrackSeatRotation() uint8  { return r[6] >> 4 }
func (r RawTileRecord) TrackMazeEntry() uint16    { return binary.LittleEndian.Uint16(r[5:7]) }
func (r RawTileRecord) TrackPhotoTimeout() uint8  { return r[5] >> 4 }

// Small scenery accessors. Byte 4: entry index. Byte 5: age. Bytes 6-7:
// colours plus the supports flag; the quadrant lives in byte 0.

func (r RawTileRecord) SmallSceneryEntryIndex() uint8      { return r[4] }
func (r RawTileRecord) SmallSceneryAge() uint8             { return r[5] }
func (r RawTileRecord) SmallSceneryQuadrant() uint8        { return (r[0] & 0xC0) >> 6 }
func (r RawTileRecord) SmallSceneryPrimaryColour() uint8   { return r[6] & 0x1F }
func (r RawTileRecord) SmallScenerySecondaryColour() uint8 { return r[7] & 0x1F }
func (r RawTileRecord) SmallSceneryNeedsSupports() bool    { return r[6]&0x20 != 0 }

// Entrance accessors.

func (r RawTileRecord) EntranceType() uint8          { return r[4] }
func (r RawTileRecord) EntranceRideIndex() uint8     { return r[7] }
func (r RawTileRecord) EntranceStationIndex() uint8  { return (r[5] & 0x70) >> 4 }
func (r RawTileRecord) EntranceSequenceIndex() uint8 { return r[5] & 0x0F }
func (r RawTileRecord) EntrancePathType() uint8      { return r[6] }

// Wall accessors. Byte 5 is either the tertiary colour or the banner index
// depending on the wall object; both extractions are provided. Secondary
// colour high bits spill into the flags byte.

func (r RawTileRecord) WallEntryIndex() uint8    { return r[4] }
func (r RawTileRecord) WallSlope() uint8         { return (r[0] & 0xC0) >> 6 }
func (r RawTileRecord) WallPrimaryColour() uint8 { return r[6] & 0x1F }

func (r RawTileRecord) WallSecondaryColour() uint8 {
	c := (r[6] & 0xE0) >> 5
	c |= (r[1] & 0x60) >> 2
	return c
}

func (r RawTileRecord) WallTertiaryColour() uint8       { return r[5] & 0x1F }
func (r RawTileRecord) WallAnimationFrame() uint8       { return (r[7] >> 3) & 0x0F }
func (r RawTileRecord) WallBannerIndex() uint8          { return r[5] }
func (r RawTileRecord) WallIsAcrossTrack() bool         { return r[7]&0x04 != 0 }
func (r RawTileRecord) WallAnimationIsBackwards() bool  { return r[7]&0x02 != 0 }

// Large scenery accessors. Bytes 4-5 pack the entry and sequence indices;
// the banner index is scattered across byte 0 and the colour bytes.

func (r RawTileRecord) LargeSceneryEntryIndex() uint16 {
	return binary.LittleEndian.Uint16(r[4:6]) & 0x03FF
}

func (r RawTileRecord) LargeScenerySequenceIndex() uint8 {
	return uint8(binary.LittleEndian.Uint16(r[4:6]) >> 10)
}

func (r RawTileRecord) LargeSceneryPrimaryColour() uint8   { return r[6] & 0x1F }
func (r RawTileRecord) LargeScenerySecondaryColour() uint8 { return r[7] & 0x1F }

func (r RawTileRecord) LargeSceneryBannerIndex() uint16 {
	return uint16(r[0]&0xC0)<<2 | uint16(r[6]&0xE0)>>2 | uint16(r[7])>>5
}

// Banner accessors.

func (r RawTileRecord) BannerIndex() uint8        { return r[4] }
func (r RawTileRecord) BannerPosition() uint8     { return r[5] }
func (r RawTileRecord) BannerAllowedEdges() uint8 { return r[6] & 0x0F }

// DecodeTileRecords reinterprets a tile elements chunk as records.
//
// Precondition: len(b) == TileElementsSize.
func DecodeTileRecords(b []byte) []RawTileRecord {
	records := make([]RawTileRecord, MaxTileElements)
	for i := range records {
		copy(records[i][:], b[i*TileElementSize:])
	}
	return records
}
