package importer

import (
	"fmt"

	"github.com/tomlankhorst/OpenRCT2/internal/rct2"
	"github.com/tomlankhorst/OpenRCT2/internal/sawyer"
	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

// migrateTiles decodes the full tile record array into the world's element
// array, preserving source scan order.
func (p *ParkImporter) migrateTiles(w *world.World) error {
	for i, raw := range p.tiles {
		el, err := decodeTileElement(raw)
		if err != nil {
			return fmt.Errorf("tile element %d: %w", i, err)
		}
		w.TileElements = append(w.TileElements, el)
	}
	w.NextFreeTileElementIndex = p.state.NextFreeTileElementIndex
	return nil
}

// decodeTileElement converts one raw record into a destination element.
// Sentinel padding slots and corrupt-marker tags are carried verbatim with
// no variant payload. A reserved tag outside the known set means the stream
// is malformed.
func decodeTileElement(raw rct2.RawTileRecord) (world.TileElement, error) {
	el := world.TileElement{Raw: raw}
	if raw.IsSentinel() {
		return el, nil
	}

	tag := raw.Type()
	switch tag {
	case rct2.TileElementTypeCorrupt,
		rct2.TileElementTypeCorrupt14,
		rct2.TileElementTypeCorrupt15:
		return el, nil
	case rct2.TileElementTypeSurface:
		el.Data = world.SurfaceElement{
			Slope:                  raw.SurfaceSlope(),
			SurfaceStyle:           raw.SurfaceStyle(),
			EdgeStyle:              raw.SurfaceEdgeStyle(),
			GrassLength:            raw.SurfaceGrassLength(),
			Ownership:              raw.SurfaceOwnership(),
			ParkFences:             raw.SurfaceParkFences(),
			WaterHeight:            raw.SurfaceWaterHeight(),
			HasTrackThatNeedsWater: raw.SurfaceHasTrackThatNeedsWater(),
		}
	case rct2.TileElementTypePath:
		el.Data = world.PathElement{
			EntryIndex:           raw.PathEntryIndex(),
			QueueBannerDirection: raw.PathQueueBannerDirection(),
			Sloped:               raw.PathIsSloped(),
			SlopeDirection:       raw.PathSlopeDirection(),
			RideIndex:            raw.PathRideIndex(),
			StationIndex:         raw.PathStationIndex(),
			Wide:                 raw.PathIsWide(),
			IsQueue:              raw.PathIsQueue(),
			HasQueueBanner:       raw.PathHasQueueBanner(),
			Edges:                raw.PathEdges(),
			Corners:              raw.PathCorners(),
			Addition:             raw.PathAddition(),
			AdditionIsGhost:      raw.PathAdditionIsGhost(),
			AdditionStatus:       raw.PathAdditionStatus(),
		}
	case rct2.TileElementTypeTrack:
		el.Data = world.TrackElement{
			TrackType:         raw.TrackType(),
			SequenceIndex:     raw.TrackSequenceIndex(),
			RideIndex:         raw.TrackRideIndex(),
			ColourScheme:      raw.TrackColourScheme(),
			StationIndex:      raw.TrackStationIndex(),
			HasChain:          raw.TrackHasChain(),
			HasCableLift:      raw.TrackHasCableLift(),
			Inverted:          raw.TrackIsInverted(),
			BrakeBoosterSpeed: raw.TrackBrakeBoosterSpeed(),
			HasGreenLight:     raw.TrackHasGreenLight(),
			SeatRotation:      raw.TrackSeatRotation(),
			MazeEntry:         raw.TrackMazeEntry(),
			PhotoTimeout:      raw.TrackPhotoTimeout(),
		}
	case rct2.TileElementTypeSmallScenery:
		el.Data = world.SmallSceneryElement{
			EntryIndex:      raw.SmallSceneryEntryIndex(),
			Age:             raw.SmallSceneryAge(),
			Quadrant:        raw.SmallSceneryQuadrant(),
			PrimaryColour:   raw.SmallSceneryPrimaryColour(),
			SecondaryColour: raw.SmallScenerySecondaryColour(),
			NeedsSupports:   raw.SmallSceneryNeedsSupports(),
		}
	case rct2.TileElementTypeEntrance:
		el.Data = world.EntranceElement{
			EntranceType:  raw.EntranceType(),
			RideIndex:     raw.EntranceRideIndex(),
			StationIndex:  raw.EntranceStationIndex(),
			SequenceIndex: raw.EntranceSequenceIndex(),
			PathType:      raw.EntrancePathType(),
		}
	case rct2.TileElementTypeWall:
		el.Data = world.WallElement{
			EntryIndex:           raw.WallEntryIndex(),
			Slope:                raw.WallSlope(),
			PrimaryColour:        raw.WallPrimaryColour(),
			SecondaryColour:      raw.WallSecondaryColour(),
			TertiaryColour:       raw.WallTertiaryColour(),
			AnimationFrame:       raw.WallAnimationFrame(),
			BannerIndex:          raw.WallBannerIndex(),
			AcrossTrack:          raw.WallIsAcrossTrack(),
			AnimationIsBackwards: raw.WallAnimationIsBackwards(),
		}
	case rct2.TileElementTypeLargeScenery:
		el.Data = world.LargeSceneryElement{
			EntryIndex:      raw.LargeSceneryEntryIndex(),
			SequenceIndex:   raw.LargeScenerySequenceIndex(),
			PrimaryColour:   raw.LargeSceneryPrimaryColour(),
			SecondaryColour: raw.LargeScenerySecondaryColour(),
			BannerIndex:     raw.LargeSceneryBannerIndex(),
		}
	case rct2.TileElementTypeBanner:
		el.Data = world.BannerTileElement{
			BannerIndex:  raw.BannerIndex(),
			Position:     raw.BannerPosition(),
			AllowedEdges: raw.BannerAllowedEdges(),
		}
	default:
		return world.TileElement{}, fmt.Errorf("%w: reserved tile element type %d", sawyer.ErrFormat, tag)
	}

	el.Type = tag
	el.Direction = raw.Direction()
	el.Flags = raw.Flags()
	el.BaseHeight = raw.BaseHeight()
	el.ClearanceHeight = raw.ClearanceHeight()
	return el, nil
}
