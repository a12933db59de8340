package world

import "github.com/tomlankhorst/OpenRCT2/internal/rct2"

// Campaign is one running marketing campaign slot.
type Campaign struct {
	WeeksLeft uint8
	RideIndex uint8
}

// ParkState holds the park-wide scalar state.
type ParkState struct {
	Name     uint16
	NameArgs uint32
	Flags    uint32

	EntranceFee uint16
	Size        uint16

	Rating                uint16
	RatingHistory         [rct2.ParkHistorySize]uint8
	RatingCasualtyPenalty uint16
	RatingWarningDays     uint16

	GuestsInPark               uint16
	GuestsHeadingForPark       uint16
	LastGuestsInPark           uint16
	GuestsInParkHistory        [rct2.ParkHistorySize]uint8
	GuestCountChangeModifier   uint8
	GuestGenerationProbability uint16
	GuestInitialHappiness      uint8
	GuestInitialCash           uint16
	GuestInitialHunger         uint8
	GuestInitialThirst         uint8
	SuggestedMaxGuests         uint16
	NextGuestIndex             uint16

	TotalAdmissions        uint32
	IncomeFromAdmissions   int32
	TotalRideValueForMoney uint16

	HandymanColour uint8
	MechanicColour uint8
	SecurityColour uint8

	PeepWarningThrottle [rct2.PeepWarningThrottleSize]uint8

	SamePriceThroughout     uint64
	LandPrice               uint16
	ConstructionRightsPrice uint16
	LastEntranceStyle       uint8

	// Recomputed from the surface elements after import; the stored
	// counters are not trusted.
	LandRemainingOwnershipSales    uint32
	LandRemainingConstructionSales uint32
}

// FinanceState holds the monetary state. Cash arrives obfuscated on disk and
// is stored decrypted here.
type FinanceState struct {
	Cash        int32
	InitialCash int32

	CurrentLoan         int32
	MaximumLoan         int32
	CurrentInterestRate uint8

	ExpenditureTable            [rct2.ExpenditureMonths][rct2.ExpenditureTypes]int32
	CurrentExpenditure          int32
	CurrentProfit               int32
	WeeklyProfitAverageDividend int32
	WeeklyProfitAverageDivisor  uint16
	HistoricalProfit            int32

	ParkValue    int32
	CompanyValue int32

	BalanceHistory      [rct2.FinanceGraphSize]int32
	WeeklyProfitHistory [rct2.FinanceGraphSize]int32
	ParkValueHistory    [rct2.FinanceGraphSize]int32

	Campaigns [rct2.MaxCampaigns]Campaign
}

// ClimateState holds weather and climate simulation state.
type ClimateState struct {
	Climate     uint8
	UpdateTimer uint16

	CurrentWeather       uint8
	NextWeather          uint8
	Temperature          uint8
	NextTemperature      uint8
	CurrentWeatherEffect uint8
	NextWeatherEffect    uint8
	CurrentWeatherGloom  uint8
	NextWeatherGloom     uint8
	CurrentRainLevel     uint8
	NextRainLevel        uint8
}

// ScenarioState holds objective and identity data for the loaded scenario.
type ScenarioState struct {
	Name     string
	Details  string
	Category uint8
	Filename string

	ObjectiveType     uint8
	ObjectiveYear     uint8
	ObjectiveCurrency int32
	ObjectiveGuests   uint16

	CompletedCompanyValue       int32
	CompletedCompanyValueRecord uint32
	CompletedName               string

	GameVersionNumber uint32
}

// ResearchState holds the research programme.
type ResearchState struct {
	ActiveTypes   uint8
	ProgressStage uint8
	Progress      uint16
	CurrentLevel  uint8

	LastItem      uint32
	NextItem      uint32
	NextCategory  uint8
	ExpectedDay   uint8
	ExpectedMonth uint8

	Invented ResearchInventedSet
	Queue    []ResearchItem
}

// DateState holds the simulation clock.
type DateState struct {
	MonthsElapsed uint16
	CurrentDay    uint16
	ScenarioTicks uint32
	SRand0        uint32
	SRand1        uint32
	GameTicks     uint32
}

// SavedView is the camera position persisted with the park.
type SavedView struct {
	X        int16
	Y        int16
	Zoom     uint8
	Rotation uint8
}

// World is the complete destination state one import populates. It is not
// safe for concurrent mutation; an importer owns it exclusively for the
// duration of a load.
type World struct {
	MapSize int32

	TileElements             []TileElement
	NextFreeTileElementIndex uint32
	tilePointers             []int32

	Sprites          [MaxSprites]Sprite
	SpriteListsHead  [rct2.NumSpriteLists]uint16
	SpriteListsCount [rct2.NumSpriteLists]uint16

	Rides      [rct2.MaxRides]*Ride
	PeepSpawns []PeepSpawn
	NewsItems  []NewsItem

	Banners       [rct2.MaxBanners]Banner
	CustomStrings [rct2.MaxCustomStrings]string
	ParkEntrances []ParkEntrance
	Awards        [rct2.MaxAwards]Award

	Park     ParkState
	Finance  FinanceState
	Climate  ClimateState
	Scenario ScenarioState
	Research ResearchState
	Date     DateState

	SavedView               SavedView
	SavedAge                uint16
	NumMapAnimations        uint16
	GrassSceneryTileLoopPos uint16
	WidePathTileLoopX       uint16
	WidePathTileLoopY       uint16
	MapBaseZ                uint16
}

// New returns an empty world sized for the largest legacy map.
func New() *World {
	w := &World{
		TileElements: make([]TileElement, 0, rct2.MaxTileElements),
		tilePointers: make([]int32, NumTiles),
	}
	w.InitAll(MapDimension)
	return w
}

// InitAll resets the world to a blank state with the given map side length
// in tiles. All sprites land on the free list.
//
// Postcondition: every sprite list except the free list is empty.
func (w *World) InitAll(mapSize int32) {
	w.MapSize = mapSize
	w.TileElements = w.TileElements[:0]
	w.NextFreeTileElementIndex = 0
	for i := range w.tilePointers {
		w.tilePointers[i] = -1
	}

	for i := range w.Sprites {
		w.Sprites[i] = Sprite{
			Identifier:     rct2.SpriteIdentifierNull,
			NextInQuadrant: rct2.SpriteIndexNull,
			Next:           rct2.SpriteIndexNull,
			Previous:       rct2.SpriteIndexNull,
		}
	}
	for i := range w.SpriteListsHead {
		w.SpriteListsHead[i] = rct2.SpriteIndexNull
		w.SpriteListsCount[i] = 0
	}

	for i := range w.Rides {
		w.Rides[i] = nil
	}
	w.PeepSpawns = w.PeepSpawns[:0]
	w.NewsItems = w.NewsItems[:0]
	w.ParkEntrances = w.ParkEntrances[:0]
	for i := range w.Banners {
		w.Banners[i] = Banner{}
	}
	for i := range w.CustomStrings {
		w.CustomStrings[i] = ""
	}
	for i := range w.Awards {
		w.Awards[i] = Award{}
	}

	w.Park = ParkState{}
	w.Finance = FinanceState{}
	w.Climate = ClimateState{}
	w.Scenario = ScenarioState{}
	w.Research = ResearchState{}
	w.Date = DateState{}
	w.SavedView = SavedView{}
}

// GetRide returns the ride with the given index, or nil when the slot is
// empty or out of range.
func (w *World) GetRide(idx uint8) *Ride {
	if int(idx) >= len(w.Rides) {
		return nil
	}
	return w.Rides[idx]
}

// RideCount returns the number of occupied ride slots.
func (w *World) RideCount() int {
	n := 0
	for _, r := range w.Rides {
		if r != nil {
			n++
		}
	}
	return n
}

// RebuildTilePointers reindexes the per-tile first-element pointers by
// walking the element array in scan order. Elements beyond the map's tile
// count are left unindexed.
//
// Postcondition: FirstElementIndexAt is consistent with TileElements.
func (w *World) RebuildTilePointers() {
	for i := range w.tilePointers {
		w.tilePointers[i] = -1
	}
	tile := 0
	for i := 0; i < len(w.TileElements) && tile < NumTiles; i++ {
		if w.tilePointers[tile] == -1 {
			w.tilePointers[tile] = int32(i)
		}
		if w.TileElements[i].IsLastForTile() {
			tile++
		}
	}
}

// FirstElementIndexAt returns the index of the first tile element of cell
// (x, y), or -1 when the cell has none indexed.
func (w *World) FirstElementIndexAt(x, y int32) int32 {
	if x < 0 || y < 0 || x >= MapDimension || y >= MapDimension {
		return -1
	}
	return w.tilePointers[y*MapDimension+x]
}

// ElementsAt returns the run of tile elements for cell (x, y) in stacking
// order. The returned slice aliases the world's element array.
func (w *World) ElementsAt(x, y int32) []TileElement {
	first := w.FirstElementIndexAt(x, y)
	if first < 0 {
		return nil
	}
	i := first
	for {
		if w.TileElements[i].IsLastForTile() || int(i) == len(w.TileElements)-1 {
			return w.TileElements[first : i+1]
		}
		i++
	}
}

// SurfaceAt returns the surface element of cell (x, y), or nil when the
// cell has none.
func (w *World) SurfaceAt(x, y int32) *TileElement {
	first := w.FirstElementIndexAt(x, y)
	if first < 0 {
		return nil
	}
	for i := first; i < int32(len(w.TileElements)); i++ {
		e := &w.TileElements[i]
		if _, ok := e.Data.(SurfaceElement); ok {
			return e
		}
		if e.IsLastForTile() {
			return nil
		}
	}
	return nil
}
