package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomlankhorst/OpenRCT2/internal/rct2"
	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

func TestApplyQuirksRegisteredFilename(t *testing.T) {
	RegisterQuirk("Known-Broken-Scenario.ext", func(w *world.World) int {
		w.PeepSpawns = []world.PeepSpawn{{X: 32, Y: 64, Z: 16, Direction: 2}}
		return 1
	})
	defer delete(quirkTable, "Known-Broken-Scenario.ext")

	p := newTestImporter(t)
	w := world.New()
	w.Scenario.Filename = "Known-Broken-Scenario.ext"
	p.applyQuirks(w)

	require.Len(t, w.PeepSpawns, 1)
	assert.Equal(t, world.PeepSpawn{X: 32, Y: 64, Z: 16, Direction: 2}, w.PeepSpawns[0])
}

func TestApplyQuirksUnknownFilenameIsNoOp(t *testing.T) {
	p := newTestImporter(t)
	w := world.New()
	w.Scenario.Filename = "Some Other Park.SC6"
	w.PeepSpawns = append(w.PeepSpawns, world.PeepSpawn{X: 1, Y: 2, Z: 3})

	p.applyQuirks(w)

	require.Len(t, w.PeepSpawns, 1)
	assert.Equal(t, world.PeepSpawn{X: 1, Y: 2, Z: 3}, w.PeepSpawns[0])
}

func TestApplyQuirksExactMatchOnly(t *testing.T) {
	p := newTestImporter(t)
	w := world.New()
	// Case differs from the table entry; lookup must miss.
	w.Scenario.Filename = "amity airfield.sc6"
	w.PeepSpawns = append(w.PeepSpawns, world.PeepSpawn{Y: 500})

	p.applyQuirks(w)
	assert.Equal(t, int32(500), w.PeepSpawns[0].Y)
}

func TestRioCarnivalSpawnFix(t *testing.T) {
	w := world.New()
	w.PeepSpawns = append(w.PeepSpawns, world.PeepSpawn{X: 9999, Y: 9999})

	n := fixRioCarnivalSpawn(w)

	assert.Equal(t, 1, n)
	require.Len(t, w.PeepSpawns, 1)
	assert.Equal(t, world.PeepSpawn{X: 2160, Y: 3167, Z: 96, Direction: 1}, w.PeepSpawns[0])
}

func TestGreatWallSpawnFix(t *testing.T) {
	w := world.New()
	w.PeepSpawns = append(w.PeepSpawns,
		world.PeepSpawn{X: 100},
		world.PeepSpawn{X: 200})

	assert.Equal(t, 1, fixGreatWallSpawn(w))
	require.Len(t, w.PeepSpawns, 1)
	assert.Equal(t, int32(100), w.PeepSpawns[0].X)

	// Already single spawn: nothing to do.
	assert.Equal(t, 0, fixGreatWallSpawn(w))
}

func TestEuropeanCulturalFestivalOwnershipFix(t *testing.T) {
	w := world.New()
	// Lay one surface per tile in scan order up to and past (69, 94), the
	// last of the seventeen passage tiles.
	last := int32(94*world.MapDimension + 70)
	for i := int32(0); i <= last; i++ {
		w.TileElements = append(w.TileElements, world.TileElement{
			Flags: rct2.TileFlagLastForTile,
			Data:  world.SurfaceElement{Ownership: world.OwnershipUnowned},
		})
	}

	n := fixEuropeanCulturalFestivalOwnership(w)

	assert.Equal(t, 17, n)
	passages := [][2]int32{
		{67, 94}, {68, 94}, {69, 94},
		{58, 24}, {58, 28}, {58, 32},
		{26, 44}, {26, 45},
		{32, 79}, {32, 81},
	}
	for _, tile := range passages {
		el := w.SurfaceAt(tile[0], tile[1])
		require.NotNil(t, el)
		surface := el.Data.(world.SurfaceElement)
		assert.Equal(t, uint8(world.OwnershipOwned), surface.Ownership, "tile (%d, %d)", tile[0], tile[1])
	}
	// Neighbouring tile untouched.
	el := w.SurfaceAt(70, 94)
	require.NotNil(t, el)
	assert.Equal(t, uint8(world.OwnershipUnowned), el.Data.(world.SurfaceElement).Ownership)
}

func TestGreatWallQuirkKeyedOnPlainFilename(t *testing.T) {
	p := newTestImporter(t)
	w := world.New()
	w.Scenario.Filename = "Great Wall of China Tourism Enhancement.SC6"
	w.PeepSpawns = append(w.PeepSpawns,
		world.PeepSpawn{X: 100},
		world.PeepSpawn{X: 200})

	p.applyQuirks(w)

	require.Len(t, w.PeepSpawns, 1)
	assert.Equal(t, int32(100), w.PeepSpawns[0].X)
}
