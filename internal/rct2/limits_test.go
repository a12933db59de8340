package rct2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// encryptMoney is the inverse of DecryptMoney, used to build fixtures.
func encryptMoney(v int32) int32 {
	u := uint32(v) ^ 0xF4EC9621
	return int32(u<<13 | u>>19)
}

func TestDecryptMoney(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 100000, -25000, 2147483647, -2147483648} {
		assert.Equal(t, v, DecryptMoney(encryptMoney(v)))
	}
}

func TestDecryptMoneyScrambles(t *testing.T) {
	// The stored form of a plain value is not the value itself.
	assert.NotEqual(t, int32(100000), encryptMoney(100000))
}

func TestScenarioWindowsMatchBlockLayout(t *testing.T) {
	// Each window starts at the field the read sequence resumes on.
	assert.Equal(t, OffResearchedRideTypes, GameStateWindowASize)
	assert.Equal(t, OffGuestsInPark, GameStateWindowBOffset)
	assert.Equal(t, OffLastGuestsInPark, GameStateWindowCOffset)
	assert.Equal(t, OffParkRating, GameStateWindowDOffset)
	assert.Equal(t, OffActiveResearchTypes, GameStateWindowEOffset)
	assert.Equal(t, OffCurrentExpenditure, GameStateWindowFOffset)
	assert.Equal(t, OffParkValue, GameStateWindowGOffset)
	assert.Equal(t, OffCompletedCompanyValue, GameStateWindowHOffset)

	// The research programme window runs from the active research types up
	// to, but not into, the balance history; the final window runs to the
	// end of the block.
	assert.Equal(t, OffBalanceHistory, GameStateWindowEOffset+GameStateWindowESize)
	assert.Equal(t, GameStateBlockSize, GameStateWindowHOffset+GameStateWindowHSize)

	// Windows are ordered and never reach into the regions they skip.
	windows := [][2]int{
		{0, GameStateWindowASize},
		{GameStateWindowBOffset, GameStateWindowBSize},
		{GameStateWindowCOffset, GameStateWindowCSize},
		{GameStateWindowDOffset, GameStateWindowDSize},
		{GameStateWindowEOffset, GameStateWindowESize},
		{GameStateWindowFOffset, GameStateWindowFSize},
		{GameStateWindowGOffset, GameStateWindowGSize},
		{GameStateWindowHOffset, GameStateWindowHSize},
	}
	for i := 1; i < len(windows); i++ {
		assert.LessOrEqual(t, windows[i-1][0]+windows[i-1][1], windows[i][0])
	}
}

func TestGameStateFixedArraysFit(t *testing.T) {
	// The research bitmaps fill the gap between the first scenario window
	// and guests_in_park.
	bitmaps := (ResearchRideTypeWords + ResearchRideEntryWords) * 4
	assert.Equal(t, OffResearchedRideTypes+bitmaps, OffResearchedTrackTypesA)
	assert.Equal(t, OffGuestsInPark, OffResearchedTrackTypesB+512)

	assert.Equal(t, OffExpenditureTable+ExpenditureMonths*ExpenditureTypes*4, OffLastGuestsInPark)
	assert.Equal(t, OffResearchedSceneryItems+ResearchSceneryWords*4, OffParkRating)
	assert.Equal(t, OffRides+MaxRides*RideRecordSize, OffSavedAge)
	assert.Equal(t, OffResearchItems+MaxResearchItems*ResearchItemSize, OffMapBaseZ)
	assert.LessOrEqual(t, OffNewsItems+MaxNewsItems*NewsItemRecordSize, OffWidePathTileLoopX)
}

// Property-based tests

func TestPropertyMoneyRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int32().Draw(t, "value")
		if got := DecryptMoney(encryptMoney(v)); got != v {
			t.Fatalf("round trip mismatch: got %d want %d", got, v)
		}
	})
}
