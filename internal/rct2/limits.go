// Package rct2 models the fixed binary layout of legacy RCT2 scenario and
// saved-game data. The layout is externally defined: every size and offset
// here mirrors the historical on-disk format and must not be changed. Raw
// records exist only for the duration of one import; decoding is cursor and
// offset based with explicit little-endian reads.
package rct2

// Park file type tags carried in the header chunk.
const (
	TypeSavedGame = 0
	TypeScenario  = 1
)

// ClassicFlagUnsupported marks the legacy compressed-save variant that this
// importer recognises but cannot load.
const ClassicFlagUnsupported = 0x0F

// Top-level chunk sizes.
const (
	HeaderSize       = 32
	ScenarioInfoSize = 32768
	ObjectEntrySize  = 16
	ObjectEntryCount = 721
	ObjectListSize   = ObjectEntryCount * ObjectEntrySize
	DateChunkSize    = 16
)

// Tile element array limits.
const (
	MaxTileElements  = 0x30000
	TileElementSize  = 8
	TileElementsSize = MaxTileElements * TileElementSize
)

// BaseHeightSentinel marks an unused/padding tile slot. Such records carry
// no valid bit layout and are passed through byte for byte.
const BaseHeightSentinel = 0xFF

// Sprite limits. LegacyMaxSprites is the source capacity; the destination
// world allows more, with the surplus credited to the free list.
const (
	LegacyMaxSprites = 10000
	SpriteRecordSize = 256
	NumSpriteLists   = 6
	SpriteIndexNull  = 0xFFFF
)

// Sprite identifiers and the peep states that count towards a ride's rider
// total.
const (
	SpriteIdentifierVehicle = 0
	SpriteIdentifierPeep    = 1
	SpriteIdentifierMisc    = 2
	SpriteIdentifierLitter  = 3
	SpriteIdentifierNull    = 255

	PeepStateOnRide       = 3
	PeepStateEnteringRide = 7
)

// Ride limits.
const (
	MaxRides            = 255
	RideRecordSize      = 608
	RideTypeNull        = 0xFF
	MaxStationsPerRide  = 4
	MaxCarsPerTrain     = 32
	MaxVehiclesPerRide  = 32
	CustomerHistorySize = 10
	DowntimeHistorySize = 8
	NumColourSchemes    = 4
	XY8Undefined        = 0xFFFF
)

// Peep spawn limits. A spawn whose X equals the sentinel is unused.
const (
	MaxPeepSpawns        = 2
	PeepSpawnRecordSize  = 6
	PeepSpawnUndefined   = 0xFFFF
	PeepSpawnHeightScale = 16
)

// News queue limits.
const (
	MaxNewsItems       = 61
	NewsItemRecordSize = 268
	NewsItemTextSize   = 256
	NewsTypeCount      = 11
	NewsTypeNull       = 0
)

// Research bitmap and list limits. Bitmaps are fixed-size uint32 word
// arrays; item index i maps to word i>>5, bit i&31.
const (
	ResearchRideTypeWords     = 8
	ResearchRideEntryWords    = 8
	ResearchSceneryWords      = 56
	RideTypeCount             = 90
	MaxRideObjects            = 128
	MaxResearchedSceneryItems = 1792
	MaxResearchItems          = 500
	ResearchItemSize          = 5
)

// Finance, marketing and misc scalar-table limits.
const (
	ExpenditureMonths       = 16
	ExpenditureTypes        = 14
	FinanceGraphSize        = 128
	MaxAwards               = 4
	MaxCampaigns            = 20
	PeepWarningThrottleSize = 16
	ParkHistorySize         = 32
	MaxParkEntrances        = 4
	LocationNull            = -1
	MaxBanners              = 250
	BannerRecordSize        = 8
	MaxCustomStrings        = 1024
	CustomStringSize        = 32
	StaffModesSize          = 204
)

// Game-state block geometry. Saved games deliver the whole block as one
// chunk; scenarios deliver eight windows of it at fixed offsets, skipping
// regions (research bitmaps, histories, expenditure) that a fresh scenario
// never carries. The two block-spanning sizes below are literal format
// constants: they do not factor into any shared formula and must never be
// derived.
const (
	GameStateBlockSize = 3048816

	GameStateWindowASize = 2560076
	GameStateWindowESize = 1082
	GameStateWindowFSize = 16
	GameStateWindowHSize = 483816
)

// Offsets of modeled fields within the game-state block. The block is a
// linear dump of the original game's state segment; unlisted ranges are
// historical padding or fields this importer does not model (the RCT1
// compatibility entrance at 2560050, the cd key, staff patrol areas, ride
// measurements) and are skipped by the decoder.
const (
	OffNextFreeTileElementIndex = 0
	OffSprites                  = 4
	OffSpriteListsHead          = 2560004
	OffSpriteListsCount         = 2560016
	OffParkName                 = 2560028
	OffParkNameArgs             = 2560032
	OffInitialCash              = 2560036
	OffCurrentLoan              = 2560040
	OffParkFlags                = 2560044
	OffParkEntranceFee          = 2560048
	OffPeepSpawns               = 2560058
	OffGuestCountChangeModifier = 2560070
	OffCurrentResearchLevel     = 2560071

	// The four research bitmaps sit between the end of the first scenario
	// window and guests_in_park. Scenario files never carry them; a fresh
	// scenario's invented sets come out empty. The two track-type bitmaps
	// are not modeled.
	OffResearchedRideTypes   = 2560076
	OffResearchedRideEntries = 2560108
	OffResearchedTrackTypesA = 2560140
	OffResearchedTrackTypesB = 2560652

	OffGuestsInPark         = 2561164
	OffGuestsHeadingForPark = 2561166
	OffExpenditureTable     = 2561168
	OffLastGuestsInPark     = 2562064
	OffHandymanColour       = 2562069
	OffMechanicColour       = 2562070
	OffSecurityColour       = 2562071

	OffResearchedSceneryItems = 2562072

	OffParkRating          = 2562296
	OffParkRatingHistory   = 2562298
	OffGuestsInParkHistory = 2562330

	OffActiveResearchTypes       = 2562362
	OffResearchProgressStage     = 2562363
	OffLastResearchedItem        = 2562364
	OffNextResearchItem          = 2563368
	OffResearchProgress          = 2563372
	OffNextResearchCategory      = 2563374
	OffNextResearchExpectedDay   = 2563375
	OffNextResearchExpectedMonth = 2563376

	OffGuestInitialHappiness      = 2563377
	OffParkSize                   = 2563378
	OffGuestGenerationProbability = 2563380
	OffTotalRideValueForMoney     = 2563382
	OffMaximumLoan                = 2563384
	OffGuestInitialCash           = 2563388
	OffGuestInitialHunger         = 2563390
	OffGuestInitialThirst         = 2563391
	OffObjectiveType              = 2563392
	OffObjectiveYear              = 2563393
	OffObjectiveCurrency          = 2563396
	OffObjectiveGuests            = 2563400
	OffCampaignWeeksLeft          = 2563402
	OffCampaignRideIndex          = 2563422

	OffBalanceHistory = 2563444

	OffCurrentExpenditure          = 2563956
	OffCurrentProfit               = 2563960
	OffWeeklyProfitAverageDividend = 2563964
	OffWeeklyProfitAverageDivisor  = 2563968
	OffParkValue                   = 2563972

	OffWeeklyProfitHistory = 2563976
	OffParkValueHistory    = 2564488

	OffCompletedCompanyValue       = 2565000
	OffTotalAdmissions             = 2565004
	OffIncomeFromAdmissions        = 2565008
	OffCompanyValue                = 2565012
	OffPeepWarningThrottle         = 2565016
	OffAwards                      = 2565032
	OffLandPrice                   = 2565048
	OffConstructionRightsPrice     = 2565050
	OffGameVersionNumber           = 2565124
	OffCompletedCompanyValueRecord = 2565128
	OffRideCount                   = 2565136
	OffHistoricalProfit            = 2565144
	OffScenarioCompletedName       = 2565152
	OffCash                        = 2565184
	OffParkRatingCasualtyPenalty   = 2565238
	OffMapSizeUnits                = 2565240
	OffMapSizeMinus2               = 2565242
	OffMapSize                     = 2565244
	OffMapMaxXY                    = 2565246
	OffSamePriceThroughout         = 2565248
	OffSuggestedMaxGuests          = 2565252
	OffParkRatingWarningDays       = 2565254
	OffLastEntranceStyle           = 2565256
	OffResearchItems               = 2565260
	OffMapBaseZ                    = 2567760
	OffScenarioName                = 2567762
	OffScenarioDescription         = 2567826
	OffCurrentInterestRate         = 2568082
	OffSamePriceThroughoutExtended = 2568084
	OffParkEntranceX               = 2568088
	OffParkEntranceY               = 2568096
	OffParkEntranceZ               = 2568104
	OffParkEntranceDirection       = 2568112
	OffScenarioFilename            = 2568116
	OffBanners                     = 2571628
	OffCustomStrings               = 2573628
	OffGameTicks                   = 2606396
	OffRides                       = 2606400
	OffSavedAge                    = 2761440
	OffSavedViewX                  = 2761442
	OffSavedViewY                  = 2761444
	OffSavedViewZoom               = 2761446
	OffSavedViewRotation           = 2761447
	OffNumMapAnimations            = 2773448
	OffNextGuestIndex              = 2927284
	OffGrassSceneryTileLoopPos     = 2927288
	OffClimate                     = 3031950
	OffClimateUpdateTimer          = 3031952
	OffCurrentWeather              = 3031954
	OffNextWeather                 = 3031955
	OffTemperature                 = 3031956
	OffNextTemperature             = 3031957
	OffCurrentWeatherEffect        = 3031958
	OffNextWeatherEffect           = 3031959
	OffCurrentWeatherGloom         = 3031960
	OffNextWeatherGloom            = 3031961
	OffCurrentRainLevel            = 3031962
	OffNextRainLevel               = 3031963
	OffNewsItems                   = 3031964
	OffWidePathTileLoopX           = 3048380
	OffWidePathTileLoopY           = 3048382
)

// Scenario window offsets into the game-state block, in on-disk chunk
// order. Windows B-D and F-G are sized by their field spans; window E spans
// the research programme through the marketing campaigns.
const (
	GameStateWindowBOffset = OffGuestsInPark
	GameStateWindowBSize   = 4
	GameStateWindowCOffset = OffLastGuestsInPark
	GameStateWindowCSize   = 8
	GameStateWindowDOffset = OffParkRating
	GameStateWindowDSize   = 2
	GameStateWindowEOffset = OffActiveResearchTypes
	GameStateWindowFOffset = OffCurrentExpenditure
	GameStateWindowGOffset = OffParkValue
	GameStateWindowGSize   = 4
	GameStateWindowHOffset = OffCompletedCompanyValue
)

// DecryptMoney reverses the obfuscation applied to the stored cash balance.
func DecryptMoney(v int32) int32 {
	u := uint32(v)
	return int32((u>>13 | u<<19) ^ 0xF4EC9621)
}
