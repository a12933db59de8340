package importer

import (
	"go.uber.org/zap"

	"github.com/tomlankhorst/OpenRCT2/internal/rct2"
	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

// researchItemEndSentinel terminates the research order list.
const researchItemEndSentinel = 0xFFFFFFFF

// migrateScalars copies every non-array game-state field into the world,
// applying unit rescales, money decryption and string transcoding.
func (p *ParkImporter) migrateScalars(w *world.World) {
	gs := &p.state

	w.Date = world.DateState{
		MonthsElapsed: p.date.ElapsedMonths,
		CurrentDay:    p.date.CurrentDay,
		ScenarioTicks: p.date.ScenarioTicks,
		SRand0:        p.date.SRand0,
		SRand1:        p.date.SRand1,
		GameTicks:     gs.GameTicks,
	}

	w.Park = world.ParkState{
		Name:     gs.ParkName,
		NameArgs: gs.ParkNameArgs,
		Flags:    gs.ParkFlags,

		EntranceFee: gs.ParkEntranceFee,
		Size:        gs.ParkSize,

		Rating:                gs.ParkRating,
		RatingHistory:         gs.ParkRatingHistory,
		RatingCasualtyPenalty: gs.ParkRatingCasualtyPenalty,
		RatingWarningDays:     gs.ParkRatingWarningDays,

		GuestsInPark:               gs.GuestsInPark,
		GuestsHeadingForPark:       gs.GuestsHeadingForPark,
		LastGuestsInPark:           gs.LastGuestsInPark,
		GuestsInParkHistory:        gs.GuestsInParkHistory,
		GuestCountChangeModifier:   gs.GuestCountChangeModifier,
		GuestGenerationProbability: gs.GuestGenerationProbability,
		GuestInitialHappiness:      gs.GuestInitialHappiness,
		GuestInitialCash:           gs.GuestInitialCash,
		GuestInitialHunger:         gs.GuestInitialHunger,
		GuestInitialThirst:         gs.GuestInitialThirst,
		SuggestedMaxGuests:         gs.SuggestedMaxGuests,
		NextGuestIndex:             gs.NextGuestIndex,

		TotalAdmissions:        gs.TotalAdmissions,
		IncomeFromAdmissions:   gs.IncomeFromAdmissions,
		TotalRideValueForMoney: gs.TotalRideValueForMoney,

		HandymanColour: gs.HandymanColour,
		MechanicColour: gs.MechanicColour,
		SecurityColour: gs.SecurityColour,

		PeepWarningThrottle: gs.PeepWarningThrottle,

		SamePriceThroughout:     uint64(gs.SamePriceThroughoutExtended)<<32 | uint64(gs.SamePriceThroughout),
		LandPrice:               gs.LandPrice,
		ConstructionRightsPrice: gs.ConstructionRightsPrice,
		LastEntranceStyle:       gs.LastEntranceStyle,
	}

	w.Finance = world.FinanceState{
		Cash:        rct2.DecryptMoney(gs.Cash),
		InitialCash: gs.InitialCash,

		CurrentLoan:         gs.CurrentLoan,
		MaximumLoan:         gs.MaximumLoan,
		CurrentInterestRate: gs.CurrentInterestRate,

		ExpenditureTable:            gs.ExpenditureTable,
		CurrentExpenditure:          gs.CurrentExpenditure,
		CurrentProfit:               gs.CurrentProfit,
		WeeklyProfitAverageDividend: gs.WeeklyProfitAverageDividend,
		WeeklyProfitAverageDivisor:  gs.WeeklyProfitAverageDivisor,
		HistoricalProfit:            gs.HistoricalProfit,

		ParkValue:    gs.ParkValue,
		CompanyValue: gs.CompanyValue,

		BalanceHistory:      gs.BalanceHistory,
		WeeklyProfitHistory: gs.WeeklyProfitHistory,
		ParkValueHistory:    gs.ParkValueHistory,
	}
	for i := range w.Finance.Campaigns {
		w.Finance.Campaigns[i] = world.Campaign{
			WeeksLeft: gs.CampaignWeeksLeft[i],
			RideIndex: gs.CampaignRideIndex[i],
		}
	}

	w.Climate = world.ClimateState{
		Climate:              gs.Climate,
		UpdateTimer:          gs.ClimateUpdateTimer,
		CurrentWeather:       gs.CurrentWeather,
		NextWeather:          gs.NextWeather,
		Temperature:          gs.Temperature,
		NextTemperature:      gs.NextTemperature,
		CurrentWeatherEffect: gs.CurrentWeatherEffect,
		NextWeatherEffect:    gs.NextWeatherEffect,
		CurrentWeatherGloom:  gs.CurrentWeatherGloom,
		NextWeatherGloom:     gs.NextWeatherGloom,
		CurrentRainLevel:     gs.CurrentRainLevel,
		NextRainLevel:        gs.NextRainLevel,
	}

	p.migrateScenario(w)
	p.migrateResearchState(w)

	for i := 0; i < rct2.MaxAwards; i++ {
		w.Awards[i] = world.Award{Time: gs.Awards[i].Time, Type: gs.Awards[i].Type}
	}

	for i := 0; i < rct2.MaxParkEntrances; i++ {
		if gs.ParkEntranceX[i] == rct2.LocationNull {
			continue
		}
		w.ParkEntrances = append(w.ParkEntrances, world.ParkEntrance{
			X:         int32(gs.ParkEntranceX[i]),
			Y:         int32(gs.ParkEntranceY[i]),
			Z:         int32(gs.ParkEntranceZ[i]),
			Direction: gs.ParkEntranceDirection[i],
		})
	}

	for i := 0; i < rct2.MaxPeepSpawns; i++ {
		spawn := gs.PeepSpawns[i]
		if spawn.X == rct2.PeepSpawnUndefined {
			continue
		}
		w.PeepSpawns = append(w.PeepSpawns, world.PeepSpawn{
			X:         int32(spawn.X),
			Y:         int32(spawn.Y),
			Z:         int32(spawn.Z) * rct2.PeepSpawnHeightScale,
			Direction: spawn.Direction,
		})
	}

	for i := 0; i < rct2.MaxBanners; i++ {
		b := gs.Banners[i]
		w.Banners[i] = world.Banner{
			Type:       b.Type,
			Flags:      b.Flags,
			StringIdx:  b.StringIdx,
			Colour:     b.Colour,
			TextColour: b.TextColour,
			X:          b.X,
			Y:          b.Y,
		}
	}
	for i := 0; i < rct2.MaxCustomStrings; i++ {
		w.CustomStrings[i] = rct2.DecodeStringChecked(gs.CustomStrings[i][:])
	}

	w.SavedView = world.SavedView{
		X:        gs.SavedViewX,
		Y:        gs.SavedViewY,
		Zoom:     gs.SavedViewZoom,
		Rotation: gs.SavedViewRotation,
	}
	w.SavedAge = gs.SavedAge
	w.NumMapAnimations = gs.NumMapAnimations
	w.GrassSceneryTileLoopPos = gs.GrassSceneryTileLoopPos
	w.WidePathTileLoopX = gs.WidePathTileLoopX
	w.WidePathTileLoopY = gs.WidePathTileLoopY
	w.MapBaseZ = gs.MapBaseZ
}

// migrateScenario fills identity and objective state. The embedded scenario
// filename is unreliable for scenario files, so those adopt the on-disk
// name; saved games trust the embedded one.
func (p *ParkImporter) migrateScenario(w *world.World) {
	gs := &p.state

	w.Scenario.Category = p.info.Category
	if name := rct2.DecodeStringChecked(p.info.Name[:]); name != "" {
		w.Scenario.Name = name
	} else {
		w.Scenario.Name = rct2.DecodeStringChecked(gs.ScenarioName[:])
	}
	if details := rct2.DecodeStringChecked(p.info.Details[:]); details != "" {
		w.Scenario.Details = details
	} else {
		w.Scenario.Details = rct2.DecodeStringChecked(gs.ScenarioDescription[:])
	}

	if p.isScenario {
		w.Scenario.Filename = p.filename
	} else {
		w.Scenario.Filename = gs.ScenarioFilenameString()
	}

	w.Scenario.ObjectiveType = gs.ObjectiveType
	w.Scenario.ObjectiveYear = gs.ObjectiveYear
	w.Scenario.ObjectiveCurrency = gs.ObjectiveCurrency
	w.Scenario.ObjectiveGuests = gs.ObjectiveGuests

	w.Scenario.CompletedCompanyValue = gs.CompletedCompanyValue
	w.Scenario.CompletedCompanyValueRecord = uint32(gs.CompletedCompanyValueRecord)
	w.Scenario.CompletedName = rct2.DecodeStringChecked(gs.ScenarioCompletedName[:])
	w.Scenario.GameVersionNumber = uint32(gs.GameVersionNumber)
}

func (p *ParkImporter) migrateResearchState(w *world.World) {
	gs := &p.state

	w.Research.ActiveTypes = gs.ActiveResearchTypes
	w.Research.ProgressStage = gs.ResearchProgressStage
	w.Research.Progress = gs.ResearchProgress
	w.Research.CurrentLevel = gs.CurrentResearchLevel
	w.Research.LastItem = gs.LastResearchedItemSubject
	w.Research.NextItem = gs.NextResearchItem
	w.Research.NextCategory = gs.NextResearchCategory
	w.Research.ExpectedDay = gs.NextResearchExpectedDay
	w.Research.ExpectedMonth = gs.NextResearchExpectedMonth

	w.Research.Queue = w.Research.Queue[:0]
	for _, item := range gs.ResearchItems {
		if item.RawValue == researchItemEndSentinel {
			break
		}
		w.Research.Queue = append(w.Research.Queue, world.ResearchItem{
			RawValue: item.RawValue,
			Category: item.Category,
		})
	}
}

// migrateRides converts every occupied ride slot. Rider counts are zeroed
// here and recomputed by the repair pass; the stored counters drift through
// legacy overflow bugs.
func (p *ParkImporter) migrateRides(w *world.World) {
	for i, raw := range p.state.Rides {
		if raw.Type == rct2.RideTypeNull {
			continue
		}
		w.Rides[i] = convertRide(uint8(i), &raw)
	}
}

func convertRide(id uint8, raw *rct2.RawRideRecord) *world.Ride {
	r := &world.Ride{
		ID:               id,
		Type:             raw.Type,
		Subtype:          raw.Subtype,
		Mode:             raw.Mode,
		ColourSchemeType: raw.ColourSchemeType,
		Status:           raw.Status,
		Name:             raw.Name,
		NameArguments:    raw.NameArguments,
		OverallView:      raw.OverallView,

		Vehicles: raw.Vehicles,

		DepartFlags:             raw.DepartFlags,
		NumStations:             raw.NumStations,
		NumVehicles:             raw.NumVehicles,
		NumCarsPerTrain:         raw.NumCarsPerTrain,
		ProposedNumVehicles:     raw.ProposedNumVehicles,
		ProposedNumCarsPerTrain: raw.ProposedNumCarsPerTrain,
		MaxTrains:               raw.MaxTrains,
		MinMaxCarsPerTrain:      raw.MinMaxCarsPerTrain,
		MinWaitingTime:          raw.MinWaitingTime,
		MaxWaitingTime:          raw.MaxWaitingTime,
		OperationOption:         raw.OperationOption,
		BoatHireReturnDirection: raw.BoatHireReturnDirection,
		BoatHireReturnPosition:  raw.BoatHireReturnPosition,
		MeasurementIndex:        raw.MeasurementIndex,
		SpecialTrackElements:    raw.SpecialTrackElements,

		MaxSpeed:                raw.MaxSpeed,
		AverageSpeed:            raw.AverageSpeed,
		CurrentTestSegment:      raw.CurrentTestSegment,
		AverageSpeedTestTimeout: raw.AverageSpeedTestTimeout,
		MaxPositiveVerticalG:    raw.MaxPositiveVerticalG,
		MaxNegativeVerticalG:    raw.MaxNegativeVerticalG,
		MaxLateralG:             raw.MaxLateralG,
		PreviousVerticalG:       raw.PreviousVerticalG,
		PreviousLateralG:        raw.PreviousLateralG,
		TestingFlags:            raw.TestingFlags,
		CurTestTrackLocation:    raw.CurTestTrackLocation,
		TurnCountDefault:        raw.TurnCountDefault,
		TurnCountBanked:         raw.TurnCountBanked,
		TurnCountSloped:         raw.TurnCountSloped,
		Inversions:              raw.Inversions,
		Drops:                   raw.Drops,
		StartDropHeight:         raw.StartDropHeight,
		HighestDropHeight:       raw.HighestDropHeight,
		ShelteredLength:         raw.ShelteredLength,
		Var11C:                  raw.Var11C,
		NumShelteredSections:    raw.NumShelteredSections,
		CurTestTrackZ:           raw.CurTestTrackZ,

		CurNumCustomers:     raw.CurNumCustomers,
		NumCustomersTimeout: raw.NumCustomersTimeout,
		NumCustomers:        raw.NumCustomers,
		Price:               raw.Price,

		ChairliftBullwheelLocation: raw.ChairliftBullwheelLocation,
		ChairliftBullwheelZ:        raw.ChairliftBullwheelZ,
		ChairliftBullwheelRotation: raw.ChairliftBullwheelRotation,

		Excitement: raw.Excitement,
		Intensity:  raw.Intensity,
		Nausea:     raw.Nausea,
		Value:      raw.Value,

		Satisfaction:        raw.Satisfaction,
		SatisfactionTimeOut: raw.SatisfactionTimeOut,
		SatisfactionNext:    raw.SatisfactionNext,

		WindowInvalidateFlags: raw.WindowInvalidateFlags,
		TotalCustomers:        raw.TotalCustomers,
		TotalProfit:           raw.TotalProfit,
		Popularity:            raw.Popularity,
		PopularityTimeOut:     raw.PopularityTimeOut,
		PopularityNext:        raw.PopularityNext,

		MusicTuneID:           raw.MusicTuneID,
		SlideInUse:            raw.SlideInUse,
		SlidePeep:             raw.SlidePeep,
		SlidePeepTShirtColour: raw.SlidePeepTShirtColour,
		SpiralSlideProgress:   raw.SpiralSlideProgress,

		BuildDate:  raw.BuildDate,
		UpkeepCost: raw.UpkeepCost,
		RaceWinner: raw.RaceWinner,

		MusicPosition: raw.MusicPosition,

		BreakdownReasonPending: raw.BreakdownReasonPending,
		MechanicStatus:         raw.MechanicStatus,
		Mechanic:               raw.Mechanic,
		InspectionStation:      raw.InspectionStation,
		BrokenVehicle:          raw.BrokenVehicle,
		BrokenCar:              raw.BrokenCar,
		BreakdownReason:        raw.BreakdownReason,

		PriceSecondary: raw.PriceSecondary,

		Reliability:         raw.Reliability,
		UnreliabilityFactor: raw.UnreliabilityFactor,
		Downtime:            raw.Downtime,
		InspectionInterval:  raw.InspectionInterval,
		LastInspection:      raw.LastInspection,
		DowntimeHistory:     raw.DowntimeHistory,

		NoPrimaryItemsSold:   raw.NoPrimaryItemsSold,
		NoSecondaryItemsSold: raw.NoSecondaryItemsSold,

		BreakdownSoundModifier:   raw.BreakdownSoundModifier,
		NotFixedTimeout:          raw.NotFixedTimeout,
		LastCrashType:            raw.LastCrashType,
		ConnectedMessageThrottle: raw.ConnectedMessageThrottle,

		IncomePerHour: raw.IncomePerHour,
		Profit:        raw.Profit,

		Music:                raw.Music,
		EntranceStyle:        raw.EntranceStyle,
		VehicleChangeTimeout: raw.VehicleChangeTimeout,
		NumBlockBrakes:       raw.NumBlockBrakes,
		LiftHillSpeed:        raw.LiftHillSpeed,
		GuestsFavourite:      raw.GuestsFavourite,
		LifecycleFlags:       raw.LifecycleFlags,

		TotalAirTime:       raw.TotalAirTime,
		CurrentTestStation: raw.CurrentTestStation,
		NumCircuits:        raw.NumCircuits,
		CableLiftX:         raw.CableLiftX,
		CableLiftY:         raw.CableLiftY,
		CableLiftZ:         raw.CableLiftZ,
		CableLift:          raw.CableLift,
	}

	for i := 0; i < rct2.MaxCarsPerTrain; i++ {
		r.VehicleColours[i] = world.VehicleColour{
			Body:    raw.VehicleColours[i].Body,
			Trim:    raw.VehicleColours[i].Trim,
			Ternary: raw.VehicleColoursExtended[i],
		}
	}
	for i := 0; i < rct2.NumColourSchemes; i++ {
		r.TrackColour[i] = world.TrackColour{
			Main:       raw.TrackColourMain[i],
			Additional: raw.TrackColourAdditional[i],
			Supports:   raw.TrackColourSupports[i],
		}
	}

	for i := 0; i < rct2.MaxStationsPerRide; i++ {
		st := &r.Stations[i]
		st.Start = raw.StationStarts[i]
		st.Height = raw.StationHeights[i]
		st.Length = raw.StationLength[i]
		st.Depart = raw.StationDepart[i]
		st.TrainAtStation = raw.TrainAtStation[i]
		st.LastPeepInQueue = raw.LastPeepInQueue[i]
		st.SegmentLength = raw.Length[i]
		st.SegmentTime = raw.Time[i]
		st.QueueTime = raw.QueueTime[i]
		st.QueueLength = raw.QueueLength[i]
		st.Entrance = stationLocation(raw.Entrances[i], raw.StationHeights[i])
		st.Exit = stationLocation(raw.Exits[i], raw.StationHeights[i])
	}

	return r
}

// stationLocation converts a packed xy8 entrance/exit coordinate plus the
// station height into a grid location.
func stationLocation(xy uint16, height uint8) world.StationLocation {
	if xy == rct2.XY8Undefined {
		return world.StationLocation{}
	}
	return world.StationLocation{
		X:     uint8(xy & 0xFF),
		Y:     uint8(xy >> 8),
		Z:     height,
		Valid: true,
	}
}

// migrateSprites copies the legacy sprite table and list bookkeeping. The
// destination table is larger than the source; the extra slots are credited
// to the free list.
func (p *ParkImporter) migrateSprites(w *world.World) {
	for i, raw := range p.state.Sprites {
		w.Sprites[i] = world.Sprite{
			Identifier:      raw.Identifier,
			Type:            raw.Type,
			NextInQuadrant:  raw.NextInQuadrant,
			Next:            raw.Next,
			Previous:        raw.Previous,
			ListOffset:      raw.ListOffset,
			PeepState:       raw.PeepState,
			PeepCurrentRide: raw.PeepCurrentRide,
		}
	}
	w.SpriteListsHead = p.state.SpriteListsHead
	w.SpriteListsCount = p.state.SpriteListsCount
	w.SpriteListsCount[world.SpriteListFree] += world.MaxSprites - rct2.LegacyMaxSprites
}

// migrateNews copies the news queue. A record with an out-of-range type
// means the tail of the queue is garbage; it is dropped and logged rather
// than imported.
func (p *ParkImporter) migrateNews(w *world.World) {
	for i, raw := range p.state.NewsItems {
		if raw.Type >= rct2.NewsTypeCount {
			p.log.Warn("news queue contains an invalid item, truncating",
				zap.Int("index", i),
				zap.Uint8("type", raw.Type))
			return
		}
		w.NewsItems = append(w.NewsItems, world.NewsItem{
			Type:      raw.Type,
			Flags:     raw.Flags,
			Assoc:     raw.Assoc,
			Ticks:     raw.Ticks,
			MonthYear: raw.MonthYear,
			Day:       raw.Day,
			Text:      rct2.DecodeStringChecked(raw.Text[:]),
		})
	}
}
