package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomlankhorst/OpenRCT2/internal/rct2"
)

func TestDecodeInventedSets(t *testing.T) {
	var gs rct2.RawGameState
	gs.ResearchedRideTypes[0] = 1 << 5
	gs.ResearchedRideEntries[1] = 1 << 5 // item index 37
	gs.ResearchedSceneryItems[3] = 1 << 4 // item index 100

	set := decodeInventedSets(&gs)

	assert.True(t, set.RideTypes[5])
	assert.False(t, set.RideTypes[4])
	assert.False(t, set.RideTypes[6])

	assert.True(t, set.RideEntries[37])
	assert.False(t, set.RideEntries[36])
	assert.False(t, set.RideEntries[38])

	assert.True(t, set.SceneryItems[100])
	assert.False(t, set.SceneryItems[99])
	assert.False(t, set.SceneryItems[101])
}

func TestDecodeInventedSetsEmpty(t *testing.T) {
	var gs rct2.RawGameState
	set := decodeInventedSets(&gs)

	for i := range set.RideTypes {
		assert.False(t, set.RideTypes[i])
	}
}

func TestBitmapBitWordBoundaries(t *testing.T) {
	words := []uint32{0x80000000, 0x00000001}

	assert.True(t, bitmapBit(words, 31))
	assert.True(t, bitmapBit(words, 32))
	assert.False(t, bitmapBit(words, 30))
	assert.False(t, bitmapBit(words, 33))
}
