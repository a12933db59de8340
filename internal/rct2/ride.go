package rct2

import "encoding/binary"

// Field offsets within one 608-byte ride record. These are format facts:
// the on-disk layout is fixed and shared with legacy content.
const (
	RideOffType                    = 0x000
	RideOffSubtype                 = 0x001
	RideOffMode                    = 0x004
	RideOffColourSchemeType        = 0x005
	RideOffVehicleColours          = 0x006
	RideOffStatus                  = 0x048
	RideOffName                    = 0x04A
	RideOffNameArguments           = 0x04C
	RideOffOverallView             = 0x050
	RideOffStationStarts           = 0x052
	RideOffStationHeights          = 0x05A
	RideOffStationLength           = 0x05E
	RideOffStationDepart           = 0x062
	RideOffTrainAtStation          = 0x066
	RideOffEntrances               = 0x06A
	RideOffExits                   = 0x072
	RideOffLastPeepInQueue         = 0x07A
	RideOffVehicles                = 0x084
	RideOffDepartFlags             = 0x0C4
	RideOffNumStations             = 0x0C5
	RideOffNumVehicles             = 0x0C6
	RideOffNumCarsPerTrain         = 0x0C7
	RideOffProposedNumVehicles     = 0x0C8
	RideOffProposedNumCarsPerTrain = 0x0C9
	RideOffMaxTrains               = 0x0CA
	RideOffMinMaxCarsPerTrain      = 0x0CB
	RideOffMinWaitingTime          = 0x0CC
	RideOffMaxWaitingTime          = 0x0CD
	RideOffOperationOption         = 0x0CE
	RideOffBoatHireReturnDirection = 0x0CF
	RideOffBoatHireReturnPosition  = 0x0D0
	RideOffMeasurementIndex        = 0x0D2
	RideOffSpecialTrackElements    = 0x0D3
	RideOffMaxSpeed                = 0x0D6
	RideOffAverageSpeed            = 0x0DA
	RideOffCurrentTestSegment      = 0x0DE
	RideOffAverageSpeedTestTimeout = 0x0DF
	RideOffLength                  = 0x0E2
	RideOffTime                    = 0x0F2
	RideOffMaxPositiveVerticalG    = 0x0FA
	RideOffMaxNegativeVerticalG    = 0x0FC
	RideOffMaxLateralG             = 0x0FE
	RideOffPreviousVerticalG       = 0x100
	RideOffPreviousLateralG        = 0x102
	RideOffTestingFlags            = 0x106
	RideOffCurTestTrackLocation    = 0x10A
	RideOffTurnCountDefault        = 0x10C
	RideOffTurnCountBanked         = 0x10E
	RideOffTurnCountSloped         = 0x110
	RideOffInversions              = 0x112
	RideOffDrops                   = 0x113
	RideOffStartDropHeight         = 0x114
	RideOffHighestDropHeight       = 0x115
	RideOffShelteredLength         = 0x116
	RideOffVar11C                  = 0x11A
	RideOffNumShelteredSections    = 0x11B
	RideOffCurTestTrackZ           = 0x11C
	RideOffCurNumCustomers         = 0x11E
	RideOffNumCustomersTimeout     = 0x120
	RideOffNumCustomers            = 0x122
	RideOffPrice                   = 0x136
	RideOffChairliftBullwheelLocation = 0x138
	RideOffChairliftBullwheelZ     = 0x13C
	RideOffExcitement              = 0x13E
	RideOffIntensity               = 0x140
	RideOffNausea                  = 0x142
	RideOffValue                   = 0x144
	RideOffChairliftBullwheelRotation = 0x146
	RideOffSatisfaction            = 0x148
	RideOffSatisfactionTimeOut     = 0x149
	RideOffSatisfactionNext        = 0x14A
	RideOffWindowInvalidateFlags   = 0x14C
	RideOffTotalCustomers          = 0x150
	RideOffTotalProfit             = 0x154
	RideOffPopularity              = 0x158
	RideOffPopularityTimeOut       = 0x159
	RideOffPopularityNext          = 0x15A
	RideOffNumRiders               = 0x15B
	RideOffMusicTuneID             = 0x15C
	RideOffSlideInUse              = 0x15D
	RideOffSlidePeep               = 0x15E
	RideOffSlidePeepTShirtColour   = 0x16E
	RideOffSpiralSlideProgress     = 0x176
	RideOffBuildDate               = 0x180
	RideOffUpkeepCost              = 0x182
	RideOffRaceWinner              = 0x184
	RideOffMusicPosition           = 0x188
	RideOffBreakdownReasonPending  = 0x18C
	RideOffMechanicStatus          = 0x18D
	RideOffMechanic                = 0x18E
	RideOffInspectionStation       = 0x190
	RideOffBrokenVehicle           = 0x191
	RideOffBrokenCar               = 0x192
	RideOffBreakdownReason         = 0x193
	RideOffPriceSecondary          = 0x194
	RideOffReliability             = 0x196
	RideOffUnreliabilityFactor     = 0x198
	RideOffDowntime                = 0x199
	RideOffInspectionInterval      = 0x19A
	RideOffLastInspection          = 0x19B
	RideOffDowntimeHistory         = 0x19C
	RideOffNoPrimaryItemsSold      = 0x1A4
	RideOffNoSecondaryItemsSold    = 0x1A8
	RideOffBreakdownSoundModifier  = 0x1AC
	RideOffNotFixedTimeout         = 0x1AD
	RideOffLastCrashType           = 0x1AE
	RideOffConnectedMessageThrottle = 0x1AF
	RideOffIncomePerHour           = 0x1B0
	RideOffProfit                  = 0x1B4
	RideOffTrackColourMain         = 0x1B8
	RideOffTrackColourAdditional   = 0x1BC
	RideOffTrackColourSupports     = 0x1C0
	RideOffMusic                   = 0x1C4
	RideOffEntranceStyle           = 0x1C5
	RideOffVehicleChangeTimeout    = 0x1C6
	RideOffNumBlockBrakes          = 0x1C8
	RideOffLiftHillSpeed           = 0x1C9
	RideOffGuestsFavourite         = 0x1CA
	RideOffLifecycleFlags          = 0x1CC
	RideOffVehicleColoursExtended  = 0x1D0
	RideOffTotalAirTime            = 0x1F0
	RideOffCurrentTestStation      = 0x1F2
	RideOffNumCircuits             = 0x1F3
	RideOffCableLiftX              = 0x1F4
	RideOffCableLiftY              = 0x1F6
	RideOffCableLiftZ              = 0x1F8
	RideOffCableLift               = 0x1FA
	RideOffQueueTime               = 0x1FC
	RideOffQueueLength             = 0x200
)

// RawVehicleColour is one train's body/trim colour pair.
type RawVehicleColour struct {
	Body uint8
	Trim uint8
}

// RawRideRecord is one decoded ride slot. A Type of RideTypeNull marks an
// empty slot.
type RawRideRecord struct {
	Type             uint8
	Subtype          uint8
	Mode             uint8
	ColourSchemeType uint8
	VehicleColours   [MaxCarsPerTrain]RawVehicleColour
	Status           uint8
	Name             uint16
	NameArguments    uint32
	OverallView      uint16

	StationStarts   [MaxStationsPerRide]uint16
	StationHeights  [MaxStationsPerRide]uint8
	StationLength   [MaxStationsPerRide]uint8
	StationDepart   [MaxStationsPerRide]uint8
	TrainAtStation  [MaxStationsPerRide]uint8
	Entrances       [MaxStationsPerRide]uint16
	Exits           [MaxStationsPerRide]uint16
	LastPeepInQueue [MaxStationsPerRide]uint16
	Length          [MaxStationsPerRide]int32
	Time            [MaxStationsPerRide]uint16
	QueueTime       [MaxStationsPerRide]uint8
	QueueLength     [MaxStationsPerRide]uint8

	Vehicles [MaxVehiclesPerRide]uint16

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
	NumCustomers        [CustomerHistorySize]uint16
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
	NumRiders             uint8

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
	DowntimeHistory     [DowntimeHistorySize]uint8

	NoPrimaryItemsSold   uint32
	NoSecondaryItemsSold uint32

	BreakdownSoundModifier   uint8
	NotFixedTimeout          uint8
	LastCrashType            uint8
	ConnectedMessageThrottle uint8

	IncomePerHour int32
	Profit        int32

	TrackColourMain       [NumColourSchemes]uint8
	TrackColourAdditional [NumColourSchemes]uint8
	TrackColourSupports   [NumColourSchemes]uint8

	Music                uint8
	EntranceStyle        uint8
	VehicleChangeTimeout uint16
	NumBlockBrakes       uint8
	LiftHillSpeed        uint8
	GuestsFavourite      uint16
	LifecycleFlags       uint32

	VehicleColoursExtended [MaxCarsPerTrain]uint8

	TotalAirTime       uint16
	CurrentTestStation uint8
	NumCircuits        uint8
	CableLiftX         int16
	CableLiftY         int16
	CableLiftZ         uint8
	CableLift          uint16
}

// DecodeRideRecord parses one ride slot.
//
// Precondition: len(b) >= RideRecordSize.
func DecodeRideRecord(b []byte) RawRideRecord {
	le := binary.LittleEndian
	var r RawRideRecord

	r.Type = b[RideOffType]
	r.Subtype = b[RideOffSubtype]
	r.Mode = b[RideOffMode]
	r.ColourSchemeType = b[RideOffColourSchemeType]
	for i := 0; i < MaxCarsPerTrain; i++ {
		r.VehicleColours[i].Body = b[RideOffVehicleColours+i*2]
		r.VehicleColours[i].Trim = b[RideOffVehicleColours+i*2+1]
	}
	r.Status = b[RideOffStatus]
	r.Name = le.Uint16(b[RideOffName:])
	r.NameArguments = le.Uint32(b[RideOffNameArguments:])
	r.OverallView = le.Uint16(b[RideOffOverallView:])

	for i := 0; i < MaxStationsPerRide; i++ {
		r.StationStarts[i] = le.Uint16(b[RideOffStationStarts+i*2:])
		r.StationHeights[i] = b[RideOffStationHeights+i]
		r.StationLength[i] = b[RideOffStationLength+i]
		r.StationDepart[i] = b[RideOffStationDepart+i]
		r.TrainAtStation[i] = b[RideOffTrainAtStation+i]
		r.Entrances[i] = le.Uint16(b[RideOffEntrances+i*2:])
		r.Exits[i] = le.Uint16(b[RideOffExits+i*2:])
		r.LastPeepInQueue[i] = le.Uint16(b[RideOffLastPeepInQueue+i*2:])
		r.Length[i] = int32(le.Uint32(b[RideOffLength+i*4:]))
		r.Time[i] = le.Uint16(b[RideOffTime+i*2:])
	}
	for i := 0; i < MaxVehiclesPerRide; i++ {
		r.Vehicles[i] = le.Uint16(b[RideOffVehicles+i*2:])
	}

	r.DepartFlags = b[RideOffDepartFlags]
	r.NumStations = b[RideOffNumStations]
	r.NumVehicles = b[RideOffNumVehicles]
	r.NumCarsPerTrain = b[RideOffNumCarsPerTrain]
	r.ProposedNumVehicles = b[RideOffProposedNumVehicles]
	r.ProposedNumCarsPerTrain = b[RideOffProposedNumCarsPerTrain]
	r.MaxTrains = b[RideOffMaxTrains]
	r.MinMaxCarsPerTrain = b[RideOffMinMaxCarsPerTrain]
	r.MinWaitingTime = b[RideOffMinWaitingTime]
	r.MaxWaitingTime = b[RideOffMaxWaitingTime]
	r.OperationOption = b[RideOffOperationOption]
	r.BoatHireReturnDirection = b[RideOffBoatHireReturnDirection]
	r.BoatHireReturnPosition = le.Uint16(b[RideOffBoatHireReturnPosition:])
	r.MeasurementIndex = b[RideOffMeasurementIndex]
	r.SpecialTrackElements = b[RideOffSpecialTrackElements]

	r.MaxSpeed = int32(le.Uint32(b[RideOffMaxSpeed:]))
	r.AverageSpeed = int32(le.Uint32(b[RideOffAverageSpeed:]))
	r.CurrentTestSegment = b[RideOffCurrentTestSegment]
	r.AverageSpeedTestTimeout = b[RideOffAverageSpeedTestTimeout]
	r.MaxPositiveVerticalG = int16(le.Uint16(b[RideOffMaxPositiveVerticalG:]))
	r.MaxNegativeVerticalG = int16(le.Uint16(b[RideOffMaxNegativeVerticalG:]))
	r.MaxLateralG = int16(le.Uint16(b[RideOffMaxLateralG:]))
	r.PreviousVerticalG = int16(le.Uint16(b[RideOffPreviousVerticalG:]))
	r.PreviousLateralG = int16(le.Uint16(b[RideOffPreviousLateralG:]))
	r.TestingFlags = le.Uint32(b[RideOffTestingFlags:])
	r.CurTestTrackLocation = le.Uint16(b[RideOffCurTestTrackLocation:])
	r.TurnCountDefault = le.Uint16(b[RideOffTurnCountDefault:])
	r.TurnCountBanked = le.Uint16(b[RideOffTurnCountBanked:])
	r.TurnCountSloped = le.Uint16(b[RideOffTurnCountSloped:])
	r.Inversions = b[RideOffInversions]
	r.Drops = b[RideOffDrops]
	r.StartDropHeight = b[RideOffStartDropHeight]
	r.HighestDropHeight = b[RideOffHighestDropHeight]
	r.ShelteredLength = int32(le.Uint32(b[RideOffShelteredLength:]))
	r.Var11C = b[RideOffVar11C]
	r.NumShelteredSections = b[RideOffNumShelteredSections]
	r.CurTestTrackZ = b[RideOffCurTestTrackZ]

	r.CurNumCustomers = le.Uint16(b[RideOffCurNumCustomers:])
	r.NumCustomersTimeout = le.Uint16(b[RideOffNumCustomersTimeout:])
	for i := 0; i < CustomerHistorySize; i++ {
		r.NumCustomers[i] = le.Uint16(b[RideOffNumCustomers+i*2:])
	}
	r.Price = le.Uint16(b[RideOffPrice:])

	for i := 0; i < 2; i++ {
		r.ChairliftBullwheelLocation[i] = le.Uint16(b[RideOffChairliftBullwheelLocation+i*2:])
		r.ChairliftBullwheelZ[i] = b[RideOffChairliftBullwheelZ+i]
	}
	r.ChairliftBullwheelRotation = le.Uint16(b[RideOffChairliftBullwheelRotation:])

	r.Excitement = le.Uint16(b[RideOffExcitement:])
	r.Intensity = le.Uint16(b[RideOffIntensity:])
	r.Nausea = le.Uint16(b[RideOffNausea:])
	r.Value = le.Uint16(b[RideOffValue:])

	r.Satisfaction = b[RideOffSatisfaction]
	r.SatisfactionTimeOut = b[RideOffSatisfactionTimeOut]
	r.SatisfactionNext = b[RideOffSatisfactionNext]

	r.WindowInvalidateFlags = le.Uint16(b[RideOffWindowInvalidateFlags:])
	r.TotalCustomers = le.Uint32(b[RideOffTotalCustomers:])
	r.TotalProfit = int32(le.Uint32(b[RideOffTotalProfit:]))
	r.Popularity = b[RideOffPopularity]
	r.PopularityTimeOut = b[RideOffPopularityTimeOut]
	r.PopularityNext = b[RideOffPopularityNext]
	r.NumRiders = b[RideOffNumRiders]

	r.MusicTuneID = b[RideOffMusicTuneID]
	r.SlideInUse = b[RideOffSlideInUse]
	r.SlidePeep = le.Uint16(b[RideOffSlidePeep:])
	r.SlidePeepTShirtColour = b[RideOffSlidePeepTShirtColour]
	r.SpiralSlideProgress = b[RideOffSpiralSlideProgress]

	r.BuildDate = int16(le.Uint16(b[RideOffBuildDate:]))
	r.UpkeepCost = int16(le.Uint16(b[RideOffUpkeepCost:]))
	r.RaceWinner = le.Uint16(b[RideOffRaceWinner:])
	r.MusicPosition = le.Uint32(b[RideOffMusicPosition:])

	r.BreakdownReasonPending = b[RideOffBreakdownReasonPending]
	r.MechanicStatus = b[RideOffMechanicStatus]
	r.Mechanic = le.Uint16(b[RideOffMechanic:])
	r.InspectionStation = b[RideOffInspectionStation]
	r.BrokenVehicle = b[RideOffBrokenVehicle]
	r.BrokenCar = b[RideOffBrokenCar]
	r.BreakdownReason = b[RideOffBreakdownReason]

	r.PriceSecondary = le.Uint16(b[RideOffPriceSecondary:])

	r.Reliability = le.Uint16(b[RideOffReliability:])
	r.UnreliabilityFactor = b[RideOffUnreliabilityFactor]
	r.Downtime = b[RideOffDowntime]
	r.InspectionInterval = b[RideOffInspectionInterval]
	r.LastInspection = b[RideOffLastInspection]
	for i := 0; i < DowntimeHistorySize; i++ {
		r.DowntimeHistory[i] = b[RideOffDowntimeHistory+i]
	}

	r.NoPrimaryItemsSold = le.Uint32(b[RideOffNoPrimaryItemsSold:])
	r.NoSecondaryItemsSold = le.Uint32(b[RideOffNoSecondaryItemsSold:])

	r.BreakdownSoundModifier = b[RideOffBreakdownSoundModifier]
	r.NotFixedTimeout = b[RideOffNotFixedTimeout]
	r.LastCrashType = b[RideOffLastCrashType]
	r.ConnectedMessageThrottle = b[RideOffConnectedMessageThrottle]

	r.IncomePerHour = int32(le.Uint32(b[RideOffIncomePerHour:]))
	r.Profit = int32(le.Uint32(b[RideOffProfit:]))

	for i := 0; i < NumColourSchemes; i++ {
		r.TrackColourMain[i] = b[RideOffTrackColourMain+i]
		r.TrackColourAdditional[i] = b[RideOffTrackColourAdditional+i]
		r.TrackColourSupports[i] = b[RideOffTrackColourSupports+i]
	}

	r.Music = b[RideOffMusic]
	r.EntranceStyle = b[RideOffEntranceStyle]
	r.VehicleChangeTimeout = le.Uint16(b[RideOffVehicleChangeTimeout:])
	r.NumBlockBrakes = b[RideOffNumBlockBrakes]
	r.LiftHillSpeed = b[RideOffLiftHillSpeed]
	r.GuestsFavourite = le.Uint16(b[RideOffGuestsFavourite:])
	r.LifecycleFlags = le.Uint32(b[RideOffLifecycleFlags:])

	for i := 0; i < MaxCarsPerTrain; i++ {
		r.VehicleColoursExtended[i] = b[RideOffVehicleColoursExtended+i]
	}

	r.TotalAirTime = le.Uint16(b[RideOffTotalAirTime:])
	r.CurrentTestStation = b[RideOffCurrentTestStation]
	r.NumCircuits = b[RideOffNumCircuits]
	r.CableLiftX = int16(le.Uint16(b[RideOffCableLiftX:]))
	r.CableLiftY = int16(le.Uint16(b[RideOffCableLiftY:]))
	r.CableLiftZ = b[RideOffCableLiftZ]
	r.CableLift = le.Uint16(b[RideOffCableLift:])
	for i := 0; i < MaxStationsPerRide; i++ {
		r.QueueTime[i] = b[RideOffQueueTime+i]
		r.QueueLength[i] = b[RideOffQueueLength+i]
	}

	return r
}
