package importer

import (
	"go.uber.org/zap"

	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

// Quirk is a correction for a known authoring defect in one specific piece
// of legacy content. It runs against already-decoded state and returns the
// number of records it touched.
type Quirk func(w *world.World) int

// quirkTable maps exact source filenames to their corrections. Lookup is
// exact-string only; a miss is a no-op. Entries are independent of each
// other and additive.
var quirkTable = map[string]Quirk{
	"WW South America - Rio Carnival.SC6":                fixRioCarnivalSpawn,
	"South America - Rio Carnival.SC6":                   fixRioCarnivalSpawn,
	"Great Wall of China Tourism Enhancement.SC6":        fixGreatWallSpawn,
	"Asia - Great Wall of China Tourism Enhancement.SC6": fixGreatWallSpawn,
	"Amity Airfield.SC6":                                 fixAmityAirfieldSpawn,
	"Europe - European Cultural Festival.SC6":            fixEuropeanCulturalFestivalOwnership,
}

// RegisterQuirk adds a correction for the given exact filename, replacing
// any existing entry.
func RegisterQuirk(filename string, fn Quirk) {
	quirkTable[filename] = fn
}

func (p *ParkImporter) applyQuirks(w *world.World) {
	fn, ok := quirkTable[w.Scenario.Filename]
	if !ok {
		return
	}
	n := fn(w)
	p.log.Info("applied content compatibility fix",
		zap.String("filename", w.Scenario.Filename),
		zap.Int("affected", n))
}

// The Rio Carnival park ships with a guest spawn placed outside the park
// boundary. Replace the spawn list with the corrected position.
func fixRioCarnivalSpawn(w *world.World) int {
	w.PeepSpawns = []world.PeepSpawn{{X: 2160, Y: 3167, Z: 96, Direction: 1}}
	return 1
}

// The Great Wall park declares a second spawn with no path under it.
func fixGreatWallSpawn(w *world.World) int {
	if len(w.PeepSpawns) > 1 {
		w.PeepSpawns = w.PeepSpawns[:1]
		return 1
	}
	return 0
}

// Amity Airfield's spawn sits one tile off the path grid.
func fixAmityAirfieldSpawn(w *world.World) int {
	if len(w.PeepSpawns) == 0 {
		return 0
	}
	w.PeepSpawns[0].Y = 1296
	return 1
}

// The European Cultural Festival park breaks pathfinding between its
// islands. Claim the passage tiles so guests can cross. The list is grouped
// by neighbouring tiles.
func fixEuropeanCulturalFestivalOwnership(w *world.World) int {
	tiles := [][2]int32{
		{67, 94}, {68, 94}, {69, 94},
		{58, 24}, {58, 25}, {58, 26}, {58, 27}, {58, 28}, {58, 29}, {58, 30}, {58, 31}, {58, 32},
		{26, 44}, {26, 45},
		{32, 79}, {32, 80}, {32, 81},
	}
	return setTileOwnership(w, world.OwnershipOwned, tiles)
}

func setTileOwnership(w *world.World, ownership uint8, tiles [][2]int32) int {
	w.RebuildTilePointers()
	n := 0
	for _, t := range tiles {
		e := w.SurfaceAt(t[0], t[1])
		if e == nil {
			continue
		}
		s := e.Data.(world.SurfaceElement)
		s.Ownership = ownership
		e.Data = s
		n++
	}
	return n
}
