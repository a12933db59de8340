package importer

import (
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/tomlankhorst/OpenRCT2/internal/rct2"
	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

// repair runs the best-effort consistency pass over the migrated world.
// Nothing in here fails the import; every fix logs a count of affected
// records instead.
func (p *ParkImporter) repair(w *world.World) {
	ghosts := stripGhostFlags(w)
	w.RebuildTilePointers()
	restrung := repairStrings(w)
	countRemainingLandRights(w)
	stations := recomputeStationLocations(w)
	severedLists := severSpriteListCycles(w)
	severedChains := severQuadrantCycles(w)
	disjoint := relinkDisjointNullSprites(w)
	recountRiders(w)

	if disjoint > 0 {
		p.log.Warn("found disjoint null sprites", zap.Int("count", disjoint))
	}
	p.log.Info("post-import repair complete",
		zap.Int("ghostFlagsStripped", ghosts),
		zap.Int("stringsReconverted", restrung),
		zap.Int("stationLocations", stations),
		zap.Int("spriteListCyclesSevered", severedLists),
		zap.Int("quadrantCyclesSevered", severedChains),
		zap.Int("disjointNullSprites", disjoint))
}

// countRemainingLandRights recomputes the purchasable land and construction
// rights counters from the surface elements.
//
// Precondition: tile pointers have been rebuilt.
func countRemainingLandRights(w *world.World) {
	var ownership, construction uint32
	for y := int32(0); y < world.MapDimension; y++ {
		for x := int32(0); x < world.MapDimension; x++ {
			e := w.SurfaceAt(x, y)
			if e == nil {
				continue
			}
			s := e.Data.(world.SurfaceElement)
			switch {
			case s.Ownership&world.OwnershipAvailable != 0 && s.Ownership&world.OwnershipOwned == 0:
				ownership++
			case s.Ownership&world.OwnershipConstructionRightsAvailable != 0 &&
				s.Ownership&world.OwnershipConstructionRightsOwned == 0:
				construction++
			}
		}
	}
	w.Park.LandRemainingOwnershipSales = ownership
	w.Park.LandRemainingConstructionSales = construction
}

// stripGhostFlags clears the ghost visibility flag left behind by in-game
// previews. Undecoded slots keep their bytes untouched.
func stripGhostFlags(w *world.World) int {
	n := 0
	for i := range w.TileElements {
		e := &w.TileElements[i]
		if !e.IsDecoded() {
			continue
		}
		if e.Flags&rct2.TileFlagGhost != 0 {
			e.Flags &^= rct2.TileFlagGhost
			n++
		}
	}
	return n
}

// repairStrings re-transcodes any string the import heuristic copied
// verbatim but that is not valid UTF-8.
func repairStrings(w *world.World) int {
	n := 0
	fix := func(s *string) {
		if *s == "" || utf8.ValidString(*s) {
			return
		}
		*s = rct2.DecodeString([]byte(*s))
		n++
	}
	for i := range w.CustomStrings {
		fix(&w.CustomStrings[i])
	}
	for i := range w.NewsItems {
		fix(&w.NewsItems[i].Text)
	}
	fix(&w.Scenario.Name)
	fix(&w.Scenario.Details)
	fix(&w.Scenario.CompletedName)
	return n
}

// recomputeStationLocations rederives every ride's entrance and exit grid
// positions from the entrance elements actually present on the map.
//
// Precondition: tile pointers have been rebuilt.
func recomputeStationLocations(w *world.World) int {
	n := 0
	for y := int32(0); y < world.MapDimension; y++ {
		for x := int32(0); x < world.MapDimension; x++ {
			for _, e := range w.ElementsAt(x, y) {
				ent, ok := e.Data.(world.EntranceElement)
				if !ok || ent.SequenceIndex != 0 {
					continue
				}
				ride := w.GetRide(ent.RideIndex)
				if ride == nil || int(ent.StationIndex) >= len(ride.Stations) {
					continue
				}
				loc := world.StationLocation{
					X:         uint8(x),
					Y:         uint8(y),
					Z:         e.BaseHeight,
					Direction: e.Direction,
					Valid:     true,
				}
				switch ent.EntranceType {
				case world.EntranceTypeRideEntrance:
					ride.Stations[ent.StationIndex].Entrance = loc
					n++
				case world.EntranceTypeRideExit:
					ride.Stations[ent.StationIndex].Exit = loc
					n++
				}
			}
		}
	}
	return n
}

// severSpriteListCycles walks each global sprite list and breaks any link
// that would revisit a slot, which legacy saves produce after certain
// crash/recovery sequences.
func severSpriteListCycles(w *world.World) int {
	severed := 0
	var visited [world.MaxSprites]bool
	for list := range w.SpriteListsHead {
		idx := w.SpriteListsHead[list]
		prev := uint16(rct2.SpriteIndexNull)
		for idx != rct2.SpriteIndexNull && int(idx) < len(w.Sprites) {
			if visited[idx] {
				if prev != rct2.SpriteIndexNull {
					w.Sprites[prev].Next = rct2.SpriteIndexNull
				} else {
					w.SpriteListsHead[list] = rct2.SpriteIndexNull
				}
				severed++
				break
			}
			visited[idx] = true
			prev = idx
			idx = w.Sprites[idx].Next
		}
	}
	return severed
}

// severQuadrantCycles breaks cycles in the spatial-index chains. A chain
// may legitimately join one walked earlier; only a link back into the
// chain currently being walked is a cycle.
func severQuadrantCycles(w *world.World) int {
	severed := 0
	const unvisited = 0
	walk := make([]int, len(w.Sprites))
	walkID := 0
	for start := range w.Sprites {
		if walk[start] != unvisited || w.Sprites[start].Identifier == rct2.SpriteIdentifierNull {
			continue
		}
		walkID++
		idx := uint16(start)
		prev := uint16(rct2.SpriteIndexNull)
		for idx != rct2.SpriteIndexNull && int(idx) < len(w.Sprites) {
			if walk[idx] == walkID {
				w.Sprites[prev].NextInQuadrant = rct2.SpriteIndexNull
				severed++
				break
			}
			if walk[idx] != unvisited {
				break
			}
			walk[idx] = walkID
			prev = idx
			idx = w.Sprites[idx].NextInQuadrant
		}
	}
	return severed
}

// relinkDisjointNullSprites reattaches free sprite slots that are not
// reachable from the free list head. Crashed legacy saves leave such slots
// behind, and the slots above the legacy sprite limit always arrive
// detached. The free-list count already accounts for every null slot, so
// relinking leaves the counters alone.
func relinkDisjointNullSprites(w *world.World) int {
	var onList [world.MaxSprites]bool
	tail := uint16(rct2.SpriteIndexNull)
	idx := w.SpriteListsHead[world.SpriteListFree]
	for idx != rct2.SpriteIndexNull && int(idx) < len(w.Sprites) && !onList[idx] {
		onList[idx] = true
		tail = idx
		idx = w.Sprites[idx].Next
	}

	relinked := 0
	for i := range w.Sprites {
		s := &w.Sprites[i]
		if s.Identifier != rct2.SpriteIdentifierNull || onList[i] {
			continue
		}
		s.Next = rct2.SpriteIndexNull
		s.Previous = tail
		if tail == rct2.SpriteIndexNull {
			w.SpriteListsHead[world.SpriteListFree] = uint16(i)
		} else {
			w.Sprites[tail].Next = uint16(i)
		}
		tail = uint16(i)
		relinked++
	}
	return relinked
}

// recountRiders recomputes every ride's rider total by scanning the live
// guests, ignoring the stored counter.
func recountRiders(w *world.World) {
	for _, r := range w.Rides {
		if r != nil {
			r.NumRiders = 0
		}
	}
	for i := range w.Sprites {
		s := &w.Sprites[i]
		if s.Identifier != rct2.SpriteIdentifierPeep {
			continue
		}
		if s.PeepState != rct2.PeepStateOnRide && s.PeepState != rct2.PeepStateEnteringRide {
			continue
		}
		if r := w.GetRide(s.PeepCurrentRide); r != nil {
			r.NumRiders++
		}
	}
}
