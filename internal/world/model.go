// Package world holds the live world-state container populated by the park
// importer. Bit-packed legacy storage is replaced throughout by explicit
// named fields; tile elements are a tagged variant constructed only through
// the importer's decoder.
package world

import "github.com/tomlankhorst/OpenRCT2/internal/rct2"

// Destination capacities. Sprite capacity deliberately exceeds the legacy
// limit; the surplus is credited to the free list on import.
const (
	MaxSprites   = 10240
	MapDimension = 256
	NumTiles     = MapDimension * MapDimension
)

// SpriteListFree is the sprite list holding unused slots.
const SpriteListFree = 0

// Surface ownership values, stored in the high nibble of a surface
// element's ownership byte.
const (
	OwnershipUnowned                     = 0x00
	OwnershipConstructionRightsOwned     = 0x10
	OwnershipOwned                       = 0x20
	OwnershipConstructionRightsAvailable = 0x40
	OwnershipAvailable                   = 0x80
)

// TileElementData is the variant payload of a decoded tile element. Exactly
// one concrete type exists per type tag.
type TileElementData interface {
	isTileElementData()
}

// SurfaceElement is the ground of one map cell.
type SurfaceElement struct {
	Slope                  uint8
	SurfaceStyle           uint8
	EdgeStyle              uint8
	GrassLength            uint8
	Ownership              uint8
	ParkFences             uint8
	WaterHeight            uint8
	HasTrackThatNeedsWater bool
}

// PathElement is a footpath segment.
type PathElement struct {
	EntryIndex           uint8
	QueueBannerDirection uint8
	Sloped               bool
	SlopeDirection       uint8
	RideIndex            uint8
	StationIndex         uint8
	Wide                 bool
	IsQueue              bool
	HasQueueBanner       bool
	Edges                uint8
	Corners              uint8
	Addition             uint8
	AdditionIsGhost      bool
	AdditionStatus       uint8
}

// TrackElement is one ride track piece.
type TrackElement struct {
	TrackType         uint8
	SequenceIndex     uint8
	RideIndex         uint8
	ColourScheme      uint8
	StationIndex      uint8
	HasChain          bool
	HasCableLift      bool
	Inverted          bool
	BrakeBoosterSpeed uint8
	HasGreenLight     bool
	SeatRotation      uint8
	MazeEntry         uint16
	PhotoTimeout      uint8
}

// SmallSceneryElement is a single-tile scenery item.
type SmallSceneryElement struct {
	EntryIndex      uint8
	Age             uint8
	Quadrant        uint8
	PrimaryColour   uint8
	SecondaryColour uint8
	NeedsSupports   bool
}

// EntranceElement is a ride or park entrance tile.
type EntranceElement struct {
	EntranceType  uint8
	RideIndex     uint8
	StationIndex  uint8
	SequenceIndex uint8
	PathType      uint8
}

// Entrance type tags carried by EntranceElement.
const (
	EntranceTypeRideEntrance = 0
	EntranceTypeRideExit     = 1
	EntranceTypeParkEntrance = 2
)

// WallElement is a fence or wall piece along a tile edge.
type WallElement struct {
	EntryIndex           uint8
	Slope                uint8
	PrimaryColour        uint8
	SecondaryColour      uint8
	TertiaryColour       uint8
	AnimationFrame       uint8
	BannerIndex          uint8
	AcrossTrack          bool
	AnimationIsBackwards bool
}

// LargeSceneryElement is one tile of a multi-tile scenery item.
type LargeSceneryElement struct {
	EntryIndex      uint16
	SequenceIndex   uint8
	PrimaryColour   uint8
	SecondaryColour uint8
	BannerIndex     uint16
}

// BannerTileElement anchors a map banner.
type BannerTileElement struct {
	BannerIndex  uint8
	Position     uint8
	AllowedEdges uint8
}

func (SurfaceElement) isTileElementData()      {}
func (PathElement) isTileElementData()         {}
func (TrackElement) isTileElementData()        {}
func (SmallSceneryElement) isTileElementData() {}
func (EntranceElement) isTileElementData()     {}
func (WallElement) isTileElementData()         {}
func (LargeSceneryElement) isTileElementData() {}
func (BannerTileElement) isTileElementData()   {}

// TileElement is one slot of the fixed-capacity tile element array. Raw
// always holds the source bytes; Data is nil for padding slots and
// corrupt-marker records, which are carried verbatim and never decoded.
// Array order equals source scan order and encodes spatial adjacency.
type TileElement struct {
	Raw             [rct2.TileElementSize]byte
	Type            uint8
	Direction       uint8
	Flags           uint8
	BaseHeight      uint8
	ClearanceHeight uint8
	Data            TileElementData
}

// IsDecoded reports whether the slot carries a decoded variant.
func (e *TileElement) IsDecoded() bool { return e.Data != nil }

// IsLastForTile reports whether this element terminates its map cell's run.
func (e *TileElement) IsLastForTile() bool {
	if e.Data != nil {
		return e.Flags&rct2.TileFlagLastForTile != 0
	}
	return e.Raw[1]&rct2.TileFlagLastForTile != 0
}

// StationLocation is a derived ride entrance/exit grid position.
type StationLocation struct {
	X, Y, Z   uint8
	Direction uint8
	Valid     bool
}

// Station is one ride station.
type Station struct {
	Start           uint16
	Height          uint8
	Length          uint8
	Depart          uint8
	TrainAtStation  uint8
	Entrance        StationLocation
	Exit            StationLocation
	LastPeepInQueue uint16
	SegmentLength   int32
	SegmentTime     uint16
	QueueTime       uint8
	QueueLength     uint8
}

// TrackColour is one colour scheme entry.
type TrackColour struct {
	Main       uint8
	Additional uint8
	Supports   uint8
}

// VehicleColour is one train's colour set.
type VehicleColour struct {
	Body    uint8
	Trim    uint8
	Ternary uint8
}

// Ride is a live ride populated from one raw ride slot. NumRiders is always
// recomputed from the guest population on import; the stored counter drifts
// through legacy overflow bugs.
type Ride struct {
	ID               uint8
	Type             uint8
	Subtype          uint8
	Mode             uint8
	ColourSchemeType uint8
	VehicleColours   [rct2.MaxCarsPerTrain]VehicleColour
	Status           uint8
	Name             uint16
	NameArguments    uint32
	OverallView      uint16

	Stations [rct2.MaxStationsPerRide]Station
	Vehicles [rct2.MaxVehiclesPerRide]uint16

	DepartFlags             uint8
	NumStations             uint8
	NumVehicles             uint8
	NumCarsPerTrain         uint8
	ProposedNumVehicles     uint8
	ProposedNumCarsPerTrain uint8
	MaxTrains               uint8
	MinMaxCarsPerTrain      uint8
	MinWaitingTime          uint8
	MaxWaitingTime          uint8
	OperationOption         uint8
	BoatHireReturnDirection uint8
	BoatHireReturnPosition  uint16
	MeasurementIndex        uint8
	SpecialTrackElements    uint8

	MaxSpeed                int32
	AverageSpeed            int32
	CurrentTestSegment      uint8
	AverageSpeedTestTimeout uint8
	MaxPositiveVerticalG    int16
	MaxNegativeVerticalG    int16
	MaxLateralG             int16
	PreviousVerticalG       int16
	PreviousLateralG        int16
	TestingFlags            uint32
	CurTestTrackLocation    uint16
	TurnCountDefault        uint16
	TurnCountBanked         uint16
	TurnCountSloped         uint16
	Inversions              uint8
	Drops                   uint8
	StartDropHeight         uint8
	HighestDropHeight       uint8
	ShelteredLength         int32
	Var11C                  uint8
	NumShelteredSections    uint8
	CurTestTrackZ           uint8

	CurNumCustomers     uint16
	NumCustomersTimeout uint16
	NumCustomers        [rct2.CustomerHistorySize]uint16
	Price               uint16

	ChairliftBullwheelLocation [2]uint16
	ChairliftBullwheelZ        [2]uint8
	ChairliftBullwheelRotation uint16

	Excitement uint16
	Intensity  uint16
	Nausea     uint16
	Value      uint16

	Satisfaction        uint8
	SatisfactionTimeOut uint8
	SatisfactionNext    uint8

	WindowInvalidateFlags uint16
	TotalCustomers        uint32
	TotalProfit           int32
	Popularity            uint8
	PopularityTimeOut     uint8
	PopularityNext        uint8
	NumRiders             uint16

	MusicTuneID           uint8
	SlideInUse            uint8
	SlidePeep             uint16
	SlidePeepTShirtColour uint8
	SpiralSlideProgress   uint8

	BuildDate  int16
	UpkeepCost int16
	RaceWinner uint16

	MusicPosition uint32

	BreakdownReasonPending uint8
	MechanicStatus         uint8
	Mechanic               uint16
	InspectionStation      uint8
	BrokenVehicle          uint8
	BrokenCar              uint8
	BreakdownReason        uint8

	PriceSecondary uint16

	Reliability         uint16
	UnreliabilityFactor uint8
	Downtime            uint8
	InspectionInterval  uint8
	LastInspection      uint8
	DowntimeHistory     [rct2.DowntimeHistorySize]uint8

	NoPrimaryItemsSold   uint32
	NoSecondaryItemsSold uint32

	BreakdownSoundModifier   uint8
	NotFixedTimeout          uint8
	LastCrashType            uint8
	ConnectedMessageThrottle uint8

	IncomePerHour int32
	Profit        int32

	TrackColour [rct2.NumColourSchemes]TrackColour

	Music                uint8
	EntranceStyle        uint8
	VehicleChangeTimeout uint16
	NumBlockBrakes       uint8
	LiftHillSpeed        uint8
	GuestsFavourite      uint16
	LifecycleFlags       uint32

	TotalAirTime       uint16
	CurrentTestStation uint8
	NumCircuits        uint8
	CableLiftX         int16
	CableLiftY         int16
	CableLiftZ         uint8
	CableLift          uint16
}

// Sprite is one live entity slot, linked into one global sprite list and
// one spatial-index chain.
type Sprite struct {
	Identifier     uint8
	Type           uint8
	NextInQuadrant uint16
	Next           uint16
	Previous       uint16
	ListOffset     uint8

	PeepState       uint8
	PeepCurrentRide uint8
}

// PeepSpawn is a guest entry point. Z is in the destination's finer
// vertical units (legacy value times 16).
type PeepSpawn struct {
	X         int32
	Y         int32
	Z         int32
	Direction uint8
}

// NewsItem is one queued news message.
type NewsItem struct {
	Type      uint8
	Flags     uint8
	Assoc     uint32
	Ticks     uint16
	MonthYear uint16
	Day       uint8
	Text      string
}

// Banner is one map banner definition.
type Banner struct {
	Type       uint8
	Flags      uint8
	StringIdx  uint16
	Colour     uint8
	TextColour uint8
	X          uint8
	Y          uint8
}

// ParkEntrance is one park entry location.
type ParkEntrance struct {
	X, Y, Z   int32
	Direction uint8
}

// Award is one active park award.
type Award struct {
	Time uint16
	Type uint16
}

// ResearchInventedSet tracks which ride types, ride entries and scenery
// items have been unlocked by research.
type ResearchInventedSet struct {
	RideTypes    [rct2.RideTypeCount]bool
	RideEntries  [rct2.MaxRideObjects]bool
	SceneryItems [rct2.MaxResearchedSceneryItems]bool
}

// ResearchItem is one entry of the research order list.
type ResearchItem struct {
	RawValue uint32
	Category uint8
}
