package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomlankhorst/OpenRCT2/internal/rct2"
)

// surfaceLast builds a decoded surface element that ends its tile run.
func surfaceLast(ownership uint8) TileElement {
	return TileElement{
		Flags: rct2.TileFlagLastForTile,
		Data:  SurfaceElement{Ownership: ownership},
	}
}

func TestNewWorldIsBlank(t *testing.T) {
	w := New()

	assert.Equal(t, int32(MapDimension), w.MapSize)
	assert.Empty(t, w.TileElements)
	assert.Equal(t, 0, w.RideCount())
	assert.Empty(t, w.PeepSpawns)

	for i := range w.SpriteListsHead {
		assert.Equal(t, uint16(rct2.SpriteIndexNull), w.SpriteListsHead[i])
		assert.Equal(t, uint16(0), w.SpriteListsCount[i])
	}
	assert.Equal(t, uint8(rct2.SpriteIdentifierNull), w.Sprites[0].Identifier)
	assert.Equal(t, uint16(rct2.SpriteIndexNull), w.Sprites[0].Next)
}

func TestInitAllResets(t *testing.T) {
	w := New()
	w.TileElements = append(w.TileElements, surfaceLast(OwnershipOwned))
	w.Rides[3] = &Ride{Name: 77}
	w.PeepSpawns = append(w.PeepSpawns, PeepSpawn{X: 1})
	w.Scenario.Name = "stale"
	w.Finance.Cash = 12345

	w.InitAll(128)

	assert.Equal(t, int32(128), w.MapSize)
	assert.Empty(t, w.TileElements)
	assert.Nil(t, w.Rides[3])
	assert.Empty(t, w.PeepSpawns)
	assert.Equal(t, "", w.Scenario.Name)
	assert.Equal(t, int32(0), w.Finance.Cash)
}

func TestGetRideBounds(t *testing.T) {
	w := New()
	w.Rides[7] = &Ride{Name: 7}

	assert.NotNil(t, w.GetRide(7))
	assert.Nil(t, w.GetRide(8))
	assert.Nil(t, w.GetRide(254))
	assert.Equal(t, 1, w.RideCount())
}

func TestRebuildTilePointers(t *testing.T) {
	w := New()
	// Tile (0,0): surface only. Tile (1,0): surface then a path on top.
	w.TileElements = append(w.TileElements, surfaceLast(OwnershipUnowned))
	w.TileElements = append(w.TileElements, TileElement{Data: SurfaceElement{}})
	w.TileElements = append(w.TileElements, TileElement{
		Flags: rct2.TileFlagLastForTile,
		Data:  PathElement{EntryIndex: 2},
	})
	w.RebuildTilePointers()

	assert.Equal(t, int32(0), w.FirstElementIndexAt(0, 0))
	assert.Equal(t, int32(1), w.FirstElementIndexAt(1, 0))
	assert.Equal(t, int32(-1), w.FirstElementIndexAt(2, 0))
	assert.Equal(t, int32(-1), w.FirstElementIndexAt(-1, 0))
	assert.Equal(t, int32(-1), w.FirstElementIndexAt(0, MapDimension))
}

func TestElementsAt(t *testing.T) {
	w := New()
	w.TileElements = append(w.TileElements, surfaceLast(OwnershipUnowned))
	w.TileElements = append(w.TileElements, TileElement{Data: SurfaceElement{}})
	w.TileElements = append(w.TileElements, TileElement{
		Flags: rct2.TileFlagLastForTile,
		Data:  PathElement{EntryIndex: 2},
	})
	w.RebuildTilePointers()

	require.Len(t, w.ElementsAt(0, 0), 1)

	stack := w.ElementsAt(1, 0)
	require.Len(t, stack, 2)
	path, ok := stack[1].Data.(PathElement)
	require.True(t, ok)
	assert.Equal(t, uint8(2), path.EntryIndex)

	assert.Nil(t, w.ElementsAt(5, 5))
}

func TestSurfaceAt(t *testing.T) {
	w := New()
	// Tile (0,0) has a banner above its surface; SurfaceAt must skip it.
	w.TileElements = append(w.TileElements, TileElement{Data: BannerTileElement{}})
	w.TileElements = append(w.TileElements, TileElement{
		Flags: rct2.TileFlagLastForTile,
		Data:  SurfaceElement{Ownership: OwnershipOwned},
	})
	w.RebuildTilePointers()

	el := w.SurfaceAt(0, 0)
	require.NotNil(t, el)
	surface, ok := el.Data.(SurfaceElement)
	require.True(t, ok)
	assert.Equal(t, uint8(OwnershipOwned), surface.Ownership)

	assert.Nil(t, w.SurfaceAt(1, 0))
}

func TestSurfaceAtMutation(t *testing.T) {
	w := New()
	w.TileElements = append(w.TileElements, surfaceLast(OwnershipUnowned))
	w.RebuildTilePointers()

	el := w.SurfaceAt(0, 0)
	require.NotNil(t, el)
	surface := el.Data.(SurfaceElement)
	surface.Ownership = OwnershipAvailable
	el.Data = surface

	got := w.TileElements[0].Data.(SurfaceElement)
	assert.Equal(t, uint8(OwnershipAvailable), got.Ownership)
}

func TestIsLastForTileUndecoded(t *testing.T) {
	// Undecoded records answer from the raw flag byte.
	var el TileElement
	el.Raw[1] = rct2.TileFlagLastForTile
	assert.True(t, el.IsLastForTile())
	assert.False(t, el.IsDecoded())
}
