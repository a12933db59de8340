package importer

import (
	"github.com/tomlankhorst/OpenRCT2/internal/rct2"
	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

// decodeInventedSets expands the fixed-size research bitmaps into per-item
// invented flags. The baseline is nothing invented; item index i maps to
// word i>>5, bit i&31.
func decodeInventedSets(gs *rct2.RawGameState) world.ResearchInventedSet {
	var set world.ResearchInventedSet
	for i := range set.RideTypes {
		set.RideTypes[i] = bitmapBit(gs.ResearchedRideTypes[:], i)
	}
	for i := range set.RideEntries {
		set.RideEntries[i] = bitmapBit(gs.ResearchedRideEntries[:], i)
	}
	for i := range set.SceneryItems {
		set.SceneryItems[i] = bitmapBit(gs.ResearchedSceneryItems[:], i)
	}
	return set
}

func bitmapBit(words []uint32, i int) bool {
	return words[i>>5]&(1<<(uint(i)&31)) != 0
}
