package importer

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tomlankhorst/OpenRCT2/internal/objects"
	"github.com/tomlankhorst/OpenRCT2/internal/rct2"
	"github.com/tomlankhorst/OpenRCT2/internal/sawyer"
	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

// newTestImporter returns an importer with staged-state storage allocated,
// for unit tests that bypass Load.
func newTestImporter(t *testing.T) *ParkImporter {
	t.Helper()
	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{})
	p.tiles = make([]rct2.RawTileRecord, rct2.MaxTileElements)
	p.state.Sprites = make([]rct2.RawSpriteRecord, rct2.LegacyMaxSprites)
	p.state.Rides = make([]rct2.RawRideRecord, rct2.MaxRides)
	return p
}

// encryptMoney is the inverse of the on-disk cash obfuscation.
func encryptMoney(v int32) int32 {
	u := uint32(v) ^ 0xF4EC9621
	return int32(u<<13 | u>>19)
}

// appendChunk frames payload as one RLE chunk and appends it to stream.
func appendChunk(stream, payload []byte) []byte {
	enc := rleEncode(payload)
	header := make([]byte, 5)
	header[0] = sawyer.EncodingRLE
	binary.LittleEndian.PutUint32(header[1:], uint32(len(enc)))
	stream = append(stream, header...)
	return append(stream, enc...)
}

func rleEncode(data []byte) []byte {
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

// appendChecksum appends the byte-sum trailer over everything before it.
func appendChecksum(stream []byte) []byte {
	var sum uint32
	for _, b := range stream {
		sum += uint32(b)
	}
	var trailer [4]byte
	binary.LittleEndian.PutUint32(trailer[:], sum)
	return append(stream, trailer[:]...)
}

// buildScenarioStream synthesizes a complete minimal scenario: no rides, no
// packed objects, a single owned surface tile and one guest spawn.
func buildScenarioStream(t *testing.T) []byte {
	return buildParkStream(t, true)
}

// buildSavedGameStream synthesizes the same park as a saved game: no
// scenario info chunk and the game state as a single full-block chunk.
func buildSavedGameStream(t *testing.T) []byte {
	return buildParkStream(t, false)
}

func buildParkStream(t *testing.T, scenario bool) []byte {
	t.Helper()

	header := make([]byte, rct2.HeaderSize)
	header[0] = rct2.TypeSavedGame
	if scenario {
		header[0] = rct2.TypeScenario
	}
	binary.LittleEndian.PutUint32(header[4:], 120001)

	objectList := make([]byte, rct2.ObjectListSize)
	for i := range objectList {
		objectList[i] = 0xFF
	}

	date := make([]byte, rct2.DateChunkSize)
	binary.LittleEndian.PutUint16(date, 8)
	binary.LittleEndian.PutUint16(date[2:], 3)

	tiles := make([]byte, rct2.TileElementsSize)
	for i := range tiles {
		tiles[i] = 0xFF
	}
	// Tile (0,0): surface, ownership OWNED, last on its cell.
	copy(tiles, []byte{0x00, 0x80, 14, 14, 0x00, 0x00, 0x00, world.OwnershipOwned})

	gs := make([]byte, rct2.GameStateBlockSize)
	for i := 0; i < rct2.LegacyMaxSprites; i++ {
		gs[rct2.OffSprites+i*rct2.SpriteRecordSize] = rct2.SpriteIdentifierNull
	}
	for i := 0; i < rct2.NumSpriteLists; i++ {
		binary.LittleEndian.PutUint16(gs[rct2.OffSpriteListsHead+i*2:], rct2.SpriteIndexNull)
	}
	for i := 0; i < rct2.MaxRides; i++ {
		gs[rct2.OffRides+i*rct2.RideRecordSize+rct2.RideOffType] = rct2.RideTypeNull
	}

	// One spawn at raw (100, 100, 5, direction 1); the second slot unused.
	binary.LittleEndian.PutUint16(gs[rct2.OffPeepSpawns:], 100)
	binary.LittleEndian.PutUint16(gs[rct2.OffPeepSpawns+2:], 100)
	gs[rct2.OffPeepSpawns+4] = 5
	gs[rct2.OffPeepSpawns+5] = 1
	binary.LittleEndian.PutUint16(gs[rct2.OffPeepSpawns+rct2.PeepSpawnRecordSize:], rct2.PeepSpawnUndefined)

	for i := 0; i < rct2.MaxParkEntrances; i++ {
		binary.LittleEndian.PutUint16(gs[rct2.OffParkEntranceX+i*2:], 0xFFFF)
	}

	binary.LittleEndian.PutUint16(gs[rct2.OffMapSize:], 128)
	binary.LittleEndian.PutUint16(gs[rct2.OffParkRating:], 999)
	binary.LittleEndian.PutUint16(gs[rct2.OffGuestsInPark:], 42)
	binary.LittleEndian.PutUint32(gs[rct2.OffCash:], uint32(encryptMoney(123456)))
	binary.LittleEndian.PutUint32(gs[rct2.OffResearchItems:], 0xFFFFFFFF)
	copy(gs[rct2.OffScenarioName:], "Embedded Park\x00")
	copy(gs[rct2.OffScenarioFilename:], "Embedded Name.SC6\x00")

	// These regions sit between the scenario read windows, so only the
	// saved-game layout delivers them.
	binary.LittleEndian.PutUint32(gs[rct2.OffResearchedRideTypes:], 1<<5)
	binary.LittleEndian.PutUint32(gs[rct2.OffExpenditureTable:], 777)

	var stream []byte
	stream = appendChunk(stream, header)
	if scenario {
		info := make([]byte, rct2.ScenarioInfoSize)
		info[1] = 2 // category
		copy(info[0x48:], "Synthetic Park\x00")
		copy(info[0x88:], "A park assembled in memory.\x00")
		stream = appendChunk(stream, info)
	}
	stream = appendChunk(stream, objectList)
	stream = appendChunk(stream, date)
	stream = appendChunk(stream, tiles)

	if scenario {
		windows := []struct{ off, size int }{
			{0, rct2.GameStateWindowASize},
			{rct2.GameStateWindowBOffset, rct2.GameStateWindowBSize},
			{rct2.GameStateWindowCOffset, rct2.GameStateWindowCSize},
			{rct2.GameStateWindowDOffset, rct2.GameStateWindowDSize},
			{rct2.GameStateWindowEOffset, rct2.GameStateWindowESize},
			{rct2.GameStateWindowFOffset, rct2.GameStateWindowFSize},
			{rct2.GameStateWindowGOffset, rct2.GameStateWindowGSize},
			{rct2.GameStateWindowHOffset, rct2.GameStateWindowHSize},
		}
		for _, win := range windows {
			stream = appendChunk(stream, gs[win.off:win.off+win.size])
		}
	} else {
		stream = appendChunk(stream, gs)
	}

	return appendChecksum(stream)
}

func TestImportScenarioEndToEnd(t *testing.T) {
	stream := buildScenarioStream(t)

	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{})
	entries, err := p.LoadFromStream(bytes.NewReader(stream), true, "Synthetic Park.SC6")
	require.NoError(t, err)
	assert.Equal(t, StageChunksLoaded, p.Stage())
	assert.Len(t, entries, rct2.ObjectEntryCount)

	w := world.New()
	require.NoError(t, p.Import(w))
	assert.Equal(t, StageDone, p.Stage())

	assert.Equal(t, int32(128), w.MapSize)
	assert.Equal(t, "Synthetic Park", w.Scenario.Name)
	assert.Equal(t, "A park assembled in memory.", w.Scenario.Details)
	assert.Equal(t, uint8(2), w.Scenario.Category)
	// On-disk filename wins over the embedded one for scenarios.
	assert.Equal(t, "Synthetic Park.SC6", w.Scenario.Filename)

	assert.Equal(t, int32(123456), w.Finance.Cash)
	assert.Equal(t, uint16(999), w.Park.Rating)
	assert.Equal(t, uint16(42), w.Park.GuestsInPark)
	assert.Equal(t, uint16(8), w.Date.MonthsElapsed)

	// The research bitmaps and expenditure table sit between the scenario
	// read windows, so the values written into the block never arrive.
	assert.False(t, w.Research.Invented.RideTypes[5])
	assert.Equal(t, int32(0), w.Finance.ExpenditureTable[0][0])

	require.Len(t, w.PeepSpawns, 1)
	assert.Equal(t, world.PeepSpawn{X: 100, Y: 100, Z: 80, Direction: 1}, w.PeepSpawns[0])

	assert.Equal(t, 0, w.RideCount())
	for _, r := range w.Rides {
		if r != nil {
			assert.Equal(t, uint16(0), r.NumRiders)
		}
	}

	surface := w.SurfaceAt(0, 0)
	require.NotNil(t, surface)
	assert.Equal(t, uint8(world.OwnershipOwned), surface.Data.(world.SurfaceElement).Ownership)

	credit := uint16(world.MaxSprites - rct2.LegacyMaxSprites)
	assert.Equal(t, credit, w.SpriteListsCount[world.SpriteListFree])
	assert.Empty(t, w.Research.Queue)
}

func TestImportSavedGameEndToEnd(t *testing.T) {
	stream := buildSavedGameStream(t)

	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{})
	entries, err := p.LoadFromStream(bytes.NewReader(stream), false, "Autosave 1.SV6")
	require.NoError(t, err)
	assert.Equal(t, StageChunksLoaded, p.Stage())
	assert.Len(t, entries, rct2.ObjectEntryCount)

	w := world.New()
	require.NoError(t, p.Import(w))
	assert.Equal(t, StageDone, p.Stage())

	assert.Equal(t, int32(128), w.MapSize)
	// No scenario info chunk in a save; identity comes out of the block,
	// and the embedded filename wins over the on-disk one.
	assert.Equal(t, "Embedded Park", w.Scenario.Name)
	assert.Equal(t, "Embedded Name.SC6", w.Scenario.Filename)

	assert.Equal(t, int32(123456), w.Finance.Cash)
	assert.Equal(t, uint16(999), w.Park.Rating)
	assert.Equal(t, uint16(42), w.Park.GuestsInPark)
	assert.Equal(t, uint16(8), w.Date.MonthsElapsed)

	// The single-chunk layout carries the regions scenarios omit.
	assert.True(t, w.Research.Invented.RideTypes[5])
	assert.False(t, w.Research.Invented.RideTypes[6])
	assert.Equal(t, int32(777), w.Finance.ExpenditureTable[0][0])

	require.Len(t, w.PeepSpawns, 1)
	assert.Equal(t, world.PeepSpawn{X: 100, Y: 100, Z: 80, Direction: 1}, w.PeepSpawns[0])

	surface := w.SurfaceAt(0, 0)
	require.NotNil(t, surface)
	assert.Equal(t, uint8(world.OwnershipOwned), surface.Data.(world.SurfaceElement).Ownership)

	credit := uint16(world.MaxSprites - rct2.LegacyMaxSprites)
	assert.Equal(t, credit, w.SpriteListsCount[world.SpriteListFree])
}

func TestLoadScenarioChecksumMismatch(t *testing.T) {
	stream := buildScenarioStream(t)
	stream[10] ^= 0x01

	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{})
	_, err := p.LoadFromStream(bytes.NewReader(stream), true, "x.SC6")
	assert.ErrorIs(t, err, sawyer.ErrChecksum)
	assert.Equal(t, StageFailed, p.Stage())
}

func TestLoadScenarioChecksumSuppressed(t *testing.T) {
	stream := buildScenarioStream(t)
	stream[len(stream)-1] ^= 0xFF

	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{AllowInvalidChecksum: true})
	_, err := p.LoadFromStream(bytes.NewReader(stream), true, "x.SC6")
	require.NoError(t, err)
	assert.Equal(t, StageChunksLoaded, p.Stage())
}

func TestLoadRejectsClassicVariant(t *testing.T) {
	header := make([]byte, rct2.HeaderSize)
	header[0] = rct2.TypeScenario
	header[1] = rct2.ClassicFlagUnsupported
	stream := appendChecksum(appendChunk(nil, header))

	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{})
	_, err := p.LoadFromStream(bytes.NewReader(stream), true, "classic.SC6")
	assert.ErrorIs(t, err, sawyer.ErrUnsupportedFormat)
}

func TestLoadRejectsLayoutMismatch(t *testing.T) {
	header := make([]byte, rct2.HeaderSize)
	header[0] = rct2.TypeScenario
	stream := appendChunk(nil, header)

	// A scenario header read through the saved-game layout must fail.
	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{})
	_, err := p.LoadFromStream(bytes.NewReader(stream), false, "park.sv6")
	assert.ErrorIs(t, err, sawyer.ErrUnsupportedFormat)
}

func TestLoadRejectsUnknownExtension(t *testing.T) {
	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{})
	_, err := p.Load("park.zip")
	assert.ErrorIs(t, err, sawyer.ErrFormat)
}

func TestImportBeforeLoadFails(t *testing.T) {
	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{})
	err := p.Import(world.New())
	assert.Error(t, err)
}

func TestLoadTwiceFails(t *testing.T) {
	stream := buildScenarioStream(t)

	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{})
	_, err := p.LoadFromStream(bytes.NewReader(stream), true, "x.SC6")
	require.NoError(t, err)

	_, err = p.LoadFromStream(bytes.NewReader(stream), true, "x.SC6")
	assert.Error(t, err)
}

func TestImportFailsOnMissingObjects(t *testing.T) {
	// One required object the repository does not know.
	objectList := make([]byte, rct2.ObjectListSize)
	for i := range objectList {
		objectList[i] = 0xFF
	}
	binary.LittleEndian.PutUint32(objectList, 0x00000087)
	copy(objectList[4:12], "MISSING1")

	p := newTestImporter(t)
	p.repo = objects.NewInMemoryRepository()
	p.stage = StageChunksLoaded
	p.objects = rct2.DecodeObjectList(objectList)

	err := p.Import(world.New())
	require.Error(t, err)

	var loadErr *objects.ObjectLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "MISSING1", loadErr.Missing[0].Identifier())
	assert.Equal(t, StageFailed, p.Stage())
}

func TestGetDetailsAlwaysEmpty(t *testing.T) {
	p := New(zap.NewNop(), objects.PermissiveRepository{}, Options{})
	details, ok := p.GetDetails()
	assert.False(t, ok)
	assert.Equal(t, ScenarioDetails{}, details)
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "idle", StageIdle.String())
	assert.Equal(t, "chunks-loaded", StageChunksLoaded.String())
	assert.Equal(t, "failed", StageFailed.String())
	assert.Equal(t, "unknown", Stage(99).String())
}
