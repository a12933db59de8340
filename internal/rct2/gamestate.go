package rct2

import "encoding/binary"

// RawGameState is the decoded game-state block. Saved games fill every
// field; scenarios fill only the windows present on disk, leaving the rest
// zero (fresh scenarios carry no histories or expenditure).
type RawGameState struct {
	NextFreeTileElementIndex uint32
	Sprites                  []RawSpriteRecord
	SpriteListsHead          [NumSpriteLists]uint16
	SpriteListsCount         [NumSpriteLists]uint16

	ParkName                 uint16
	ParkNameArgs             uint32
	InitialCash              int32
	CurrentLoan              int32
	ParkFlags                uint32
	ParkEntranceFee          uint16
	PeepSpawns               [MaxPeepSpawns]RawPeepSpawnRecord
	GuestCountChangeModifier uint8
	CurrentResearchLevel     uint8

	GuestsInPark         uint16
	GuestsHeadingForPark uint16
	ExpenditureTable     [ExpenditureMonths][ExpenditureTypes]int32
	LastGuestsInPark     uint16
	HandymanColour       uint8
	MechanicColour       uint8
	SecurityColour       uint8
	ParkRating           uint16
	ParkRatingHistory    [ParkHistorySize]uint8
	GuestsInParkHistory  [ParkHistorySize]uint8

	ResearchedRideTypes    [ResearchRideTypeWords]uint32
	ResearchedRideEntries  [ResearchRideEntryWords]uint32
	ResearchedSceneryItems [ResearchSceneryWords]uint32

	ActiveResearchTypes       uint8
	ResearchProgressStage     uint8
	LastResearchedItemSubject uint32
	ResearchProgress          uint16
	NextResearchItem          uint32
	NextResearchCategory      uint8
	NextResearchExpectedDay   uint8
	NextResearchExpectedMonth uint8

	GuestInitialHappiness      uint8
	ParkSize                   uint16
	GuestGenerationProbability uint16
	TotalRideValueForMoney     uint16
	MaximumLoan                int32
	GuestInitialCash           uint16
	GuestInitialHunger         uint8
	GuestInitialThirst         uint8
	ObjectiveType              uint8
	ObjectiveYear              uint8
	ObjectiveCurrency          int32
	ObjectiveGuests            uint16
	CampaignWeeksLeft          [MaxCampaigns]uint8
	CampaignRideIndex          [MaxCampaigns]uint8

	CurrentExpenditure          int32
	CurrentProfit               int32
	WeeklyProfitAverageDividend int32
	WeeklyProfitAverageDivisor  uint16
	ParkValue                   int32

	BalanceHistory      [FinanceGraphSize]int32
	WeeklyProfitHistory [FinanceGraphSize]int32
	ParkValueHistory    [FinanceGraphSize]int32

	CompletedCompanyValue       int32
	TotalAdmissions             uint32
	IncomeFromAdmissions        int32
	CompanyValue                int32
	PeepWarningThrottle         [PeepWarningThrottleSize]uint8
	Awards                      [MaxAwards]RawAward
	LandPrice                   uint16
	ConstructionRightsPrice     uint16
	GameVersionNumber           uint16
	CompletedCompanyValueRecord int32
	RideCount                   uint16
	HistoricalProfit            int32
	ScenarioCompletedName       [32]byte
	Cash                        int32
	ParkRatingCasualtyPenalty   uint16
	MapSizeUnits                uint16
	MapSizeMinus2               uint16
	MapSize                     uint16
	MapMaxXY                    uint16
	SamePriceThroughout         uint32
	SuggestedMaxGuests          uint16
	ParkRatingWarningDays       uint16
	LastEntranceStyle           uint8
	ResearchItems               [MaxResearchItems]RawResearchItem
	MapBaseZ                    uint16
	ScenarioName                [64]byte
	ScenarioDescription         [256]byte
	CurrentInterestRate         uint8
	SamePriceThroughoutExtended uint32
	ParkEntranceX               [MaxParkEntrances]int16
	ParkEntranceY               [MaxParkEntrances]int16
	ParkEntranceZ               [MaxParkEntrances]int16
	ParkEntranceDirection       [MaxParkEntrances]uint8
	ScenarioFilename            [256]byte
	Banners                     [MaxBanners]RawBannerRecord
	CustomStrings               [MaxCustomStrings][CustomStringSize]byte
	GameTicks                   uint32
	Rides                       []RawRideRecord
	SavedAge                    uint16
	SavedViewX                  int16
	SavedViewY                  int16
	SavedViewZoom               uint8
	SavedViewRotation           uint8
	NumMapAnimations            uint16
	NextGuestIndex              uint16
	GrassSceneryTileLoopPos     uint16

	Climate              uint8
	ClimateUpdateTimer   uint16
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

	NewsItems [MaxNewsItems]RawNewsItemRecord

	WidePathTileLoopX uint16
	WidePathTileLoopY uint16
}

// DecodeGameState parses the modeled fields of a game-state block.
//
// Precondition: len(b) == GameStateBlockSize.
func DecodeGameState(b []byte) RawGameState {
	le := binary.LittleEndian
	var gs RawGameState

	gs.NextFreeTileElementIndex = le.Uint32(b[OffNextFreeTileElementIndex:])

	gs.Sprites = make([]RawSpriteRecord, LegacyMaxSprites)
	for i := range gs.Sprites {
		gs.Sprites[i] = DecodeSpriteRecord(b[OffSprites+i*SpriteRecordSize:])
	}
	for i := 0; i < NumSpriteLists; i++ {
		gs.SpriteListsHead[i] = le.Uint16(b[OffSpriteListsHead+i*2:])
		gs.SpriteListsCount[i] = le.Uint16(b[OffSpriteListsCount+i*2:])
	}

	gs.ParkName = le.Uint16(b[OffParkName:])
	gs.ParkNameArgs = le.Uint32(b[OffParkNameArgs:])
	gs.InitialCash = int32(le.Uint32(b[OffInitialCash:]))
	gs.CurrentLoan = int32(le.Uint32(b[OffCurrentLoan:]))
	gs.ParkFlags = le.Uint32(b[OffParkFlags:])
	gs.ParkEntranceFee = le.Uint16(b[OffParkEntranceFee:])
	for i := 0; i < MaxPeepSpawns; i++ {
		gs.PeepSpawns[i] = DecodePeepSpawnRecord(b[OffPeepSpawns+i*PeepSpawnRecordSize:])
	}
	gs.GuestCountChangeModifier = b[OffGuestCountChangeModifier]
	gs.CurrentResearchLevel = b[OffCurrentResearchLevel]

	gs.GuestsInPark = le.Uint16(b[OffGuestsInPark:])
	gs.GuestsHeadingForPark = le.Uint16(b[OffGuestsHeadingForPark:])
	for m := 0; m < ExpenditureMonths; m++ {
		for t := 0; t < ExpenditureTypes; t++ {
			off := OffExpenditureTable + (m*ExpenditureTypes+t)*4
			gs.ExpenditureTable[m][t] = int32(le.Uint32(b[off:]))
		}
	}
	gs.LastGuestsInPark = le.Uint16(b[OffLastGuestsInPark:])
	gs.HandymanColour = b[OffHandymanColour]
	gs.MechanicColour = b[OffMechanicColour]
	gs.SecurityColour = b[OffSecurityColour]
	gs.ParkRating = le.Uint16(b[OffParkRating:])
	copy(gs.ParkRatingHistory[:], b[OffParkRatingHistory:])
	copy(gs.GuestsInParkHistory[:], b[OffGuestsInParkHistory:])

	for i := range gs.ResearchedRideTypes {
		gs.ResearchedRideTypes[i] = le.Uint32(b[OffResearchedRideTypes+i*4:])
	}
	for i := range gs.ResearchedRideEntries {
		gs.ResearchedRideEntries[i] = le.Uint32(b[OffResearchedRideEntries+i*4:])
	}
	for i := range gs.ResearchedSceneryItems {
		gs.ResearchedSceneryItems[i] = le.Uint32(b[OffResearchedSceneryItems+i*4:])
	}

	gs.ActiveResearchTypes = b[OffActiveResearchTypes]
	gs.ResearchProgressStage = b[OffResearchProgressStage]
	gs.LastResearchedItemSubject = le.Uint32(b[OffLastResearchedItem:])
	gs.ResearchProgress = le.Uint16(b[OffResearchProgress:])
	gs.NextResearchItem = le.Uint32(b[OffNextResearchItem:])
	gs.NextResearchCategory = b[OffNextResearchCategory]
	gs.NextResearchExpectedDay = b[OffNextResearchExpectedDay]
	gs.NextResearchExpectedMonth = b[OffNextResearchExpectedMonth]

	gs.GuestInitialHappiness = b[OffGuestInitialHappiness]
	gs.ParkSize = le.Uint16(b[OffParkSize:])
	gs.GuestGenerationProbability = le.Uint16(b[OffGuestGenerationProbability:])
	gs.TotalRideValueForMoney = le.Uint16(b[OffTotalRideValueForMoney:])
	gs.MaximumLoan = int32(le.Uint32(b[OffMaximumLoan:]))
	gs.GuestInitialCash = le.Uint16(b[OffGuestInitialCash:])
	gs.GuestInitialHunger = b[OffGuestInitialHunger]
	gs.GuestInitialThirst = b[OffGuestInitialThirst]
	gs.ObjectiveType = b[OffObjectiveType]
	gs.ObjectiveYear = b[OffObjectiveYear]
	gs.ObjectiveCurrency = int32(le.Uint32(b[OffObjectiveCurrency:]))
	gs.ObjectiveGuests = le.Uint16(b[OffObjectiveGuests:])
	copy(gs.CampaignWeeksLeft[:], b[OffCampaignWeeksLeft:])
	copy(gs.CampaignRideIndex[:], b[OffCampaignRideIndex:])

	gs.CurrentExpenditure = int32(le.Uint32(b[OffCurrentExpenditure:]))
	gs.CurrentProfit = int32(le.Uint32(b[OffCurrentProfit:]))
	gs.WeeklyProfitAverageDividend = int32(le.Uint32(b[OffWeeklyProfitAverageDividend:]))
	gs.WeeklyProfitAverageDivisor = le.Uint16(b[OffWeeklyProfitAverageDivisor:])
	gs.ParkValue = int32(le.Uint32(b[OffParkValue:]))

	for i := 0; i < FinanceGraphSize; i++ {
		gs.BalanceHistory[i] = int32(le.Uint32(b[OffBalanceHistory+i*4:]))
		gs.WeeklyProfitHistory[i] = int32(le.Uint32(b[OffWeeklyProfitHistory+i*4:]))
		gs.ParkValueHistory[i] = int32(le.Uint32(b[OffParkValueHistory+i*4:]))
	}

	gs.CompletedCompanyValue = int32(le.Uint32(b[OffCompletedCompanyValue:]))
	gs.TotalAdmissions = le.Uint32(b[OffTotalAdmissions:])
	gs.IncomeFromAdmissions = int32(le.Uint32(b[OffIncomeFromAdmissions:]))
	gs.CompanyValue = int32(le.Uint32(b[OffCompanyValue:]))
	copy(gs.PeepWarningThrottle[:], b[OffPeepWarningThrottle:])
	for i := 0; i < MaxAwards; i++ {
		gs.Awards[i].Time = le.Uint16(b[OffAwards+i*4:])
		gs.Awards[i].Type = le.Uint16(b[OffAwards+i*4+2:])
	}
	gs.LandPrice = le.Uint16(b[OffLandPrice:])
	gs.ConstructionRightsPrice = le.Uint16(b[OffConstructionRightsPrice:])
	gs.GameVersionNumber = le.Uint16(b[OffGameVersionNumber:])
	gs.CompletedCompanyValueRecord = int32(le.Uint32(b[OffCompletedCompanyValueRecord:]))
	gs.RideCount = le.Uint16(b[OffRideCount:])
	gs.HistoricalProfit = int32(le.Uint32(b[OffHistoricalProfit:]))
	copy(gs.ScenarioCompletedName[:], b[OffScenarioCompletedName:])
	gs.Cash = int32(le.Uint32(b[OffCash:]))
	gs.ParkRatingCasualtyPenalty = le.Uint16(b[OffParkRatingCasualtyPenalty:])
	gs.MapSizeUnits = le.Uint16(b[OffMapSizeUnits:])
	gs.MapSizeMinus2 = le.Uint16(b[OffMapSizeMinus2:])
	gs.MapSize = le.Uint16(b[OffMapSize:])
	gs.MapMaxXY = le.Uint16(b[OffMapMaxXY:])
	gs.SamePriceThroughout = le.Uint32(b[OffSamePriceThroughout:])
	gs.SuggestedMaxGuests = le.Uint16(b[OffSuggestedMaxGuests:])
	gs.ParkRatingWarningDays = le.Uint16(b[OffParkRatingWarningDays:])
	gs.LastEntranceStyle = b[OffLastEntranceStyle]
	for i := 0; i < MaxResearchItems; i++ {
		off := OffResearchItems + i*ResearchItemSize
		gs.ResearchItems[i].RawValue = le.Uint32(b[off:])
		gs.ResearchItems[i].Category = b[off+4]
	}
	gs.MapBaseZ = le.Uint16(b[OffMapBaseZ:])
	copy(gs.ScenarioName[:], b[OffScenarioName:])
	copy(gs.ScenarioDescription[:], b[OffScenarioDescription:])
	gs.CurrentInterestRate = b[OffCurrentInterestRate]
	gs.SamePriceThroughoutExtended = le.Uint32(b[OffSamePriceThroughoutExtended:])
	for i := 0; i < MaxParkEntrances; i++ {
		gs.ParkEntranceX[i] = int16(le.Uint16(b[OffParkEntranceX+i*2:]))
		gs.ParkEntranceY[i] = int16(le.Uint16(b[OffParkEntranceY+i*2:]))
		gs.ParkEntranceZ[i] = int16(le.Uint16(b[OffParkEntranceZ+i*2:]))
		gs.ParkEntranceDirection[i] = b[OffParkEntranceDirection+i]
	}
	copy(gs.ScenarioFilename[:], b[OffScenarioFilename:])
	for i := 0; i < MaxBanners; i++ {
		gs.Banners[i] = DecodeBannerRecord(b[OffBanners+i*BannerRecordSize:])
	}
	for i := 0; i < MaxCustomStrings; i++ {
		copy(gs.CustomStrings[i][:], b[OffCustomStrings+i*CustomStringSize:])
	}
	gs.GameTicks = le.Uint32(b[OffGameTicks:])

	gs.Rides = make([]RawRideRecord, MaxRides)
	for i := range gs.Rides {
		gs.Rides[i] = DecodeRideRecord(b[OffRides+i*RideRecordSize:])
	}

	gs.SavedAge = le.Uint16(b[OffSavedAge:])
	gs.SavedViewX = int16(le.Uint16(b[OffSavedViewX:]))
	gs.SavedViewY = int16(le.Uint16(b[OffSavedViewY:]))
	gs.SavedViewZoom = b[OffSavedViewZoom]
	gs.SavedViewRotation = b[OffSavedViewRotation]
	gs.NumMapAnimations = le.Uint16(b[OffNumMapAnimations:])
	gs.NextGuestIndex = le.Uint16(b[OffNextGuestIndex:])
	gs.GrassSceneryTileLoopPos = le.Uint16(b[OffGrassSceneryTileLoopPos:])

	gs.Climate = b[OffClimate]
	gs.ClimateUpdateTimer = le.Uint16(b[OffClimateUpdateTimer:])
	gs.CurrentWeather = b[OffCurrentWeather]
	gs.NextWeather = b[OffNextWeather]
	gs.Temperature = b[OffTemperature]
	gs.NextTemperature = b[OffNextTemperature]
	gs.CurrentWeatherEffect = b[OffCurrentWeatherEffect]
	gs.NextWeatherEffect = b[OffNextWeatherEffect]
	gs.CurrentWeatherGloom = b[OffCurrentWeatherGloom]
	gs.NextWeatherGloom = b[OffNextWeatherGloom]
	gs.CurrentRainLevel = b[OffCurrentRainLevel]
	gs.NextRainLevel = b[OffNextRainLevel]

	for i := 0; i < MaxNewsItems; i++ {
		gs.NewsItems[i] = DecodeNewsItemRecord(b[OffNewsItems+i*NewsItemRecordSize:])
	}

	gs.WidePathTileLoopX = le.Uint16(b[OffWidePathTileLoopX:])
	gs.WidePathTileLoopY = le.Uint16(b[OffWidePathTileLoopY:])

	return gs
}

// ScenarioFilenameString returns the embedded scenario filename as a Go
// string, trimmed at the first NUL.
func (gs *RawGameState) ScenarioFilenameString() string {
	return cstring(gs.ScenarioFilename[:])
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
