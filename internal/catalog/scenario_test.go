package catalog_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomlankhorst/OpenRCT2/internal/catalog"
	"github.com/tomlankhorst/OpenRCT2/internal/testutil"
	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

func uniqueFilename(prefix string) string {
	return fmt.Sprintf("%s_%d.SC6", prefix, time.Now().UnixNano())
}

func makeTestEntry(filename string) catalog.Entry {
	return catalog.Entry{
		ID:            uuid.New(),
		Filename:      filename,
		Name:          "Forest Frontiers",
		Details:       "A gentle starter park.",
		Category:      1,
		SourceType:    catalog.SourceScenario,
		ObjectiveType: 1,
		RideCount:     4,
		GuestsInPark:  250,
		ParkRating:    850,
		CompanyValue:  120000,
	}
}

func TestScenarioRepository_Record(t *testing.T) {
	repo := catalog.NewScenarioRepository(testutil.NewPool(t))
	ctx := context.Background()

	entry := makeTestEntry(uniqueFilename("record"))
	stored, err := repo.Record(ctx, entry)
	require.NoError(t, err)

	assert.Equal(t, entry.ID, stored.ID)
	assert.Equal(t, entry.Filename, stored.Filename)
	assert.False(t, stored.ImportedAt.IsZero())
}

func TestScenarioRepository_RecordDuplicateFilename(t *testing.T) {
	repo := catalog.NewScenarioRepository(testutil.NewPool(t))
	ctx := context.Background()

	entry := makeTestEntry(uniqueFilename("dup"))
	_, err := repo.Record(ctx, entry)
	require.NoError(t, err)

	again := makeTestEntry(entry.Filename)
	_, err = repo.Record(ctx, again)
	assert.ErrorIs(t, err, catalog.ErrScenarioExists)
}

func TestScenarioRepository_GetByFilename(t *testing.T) {
	repo := catalog.NewScenarioRepository(testutil.NewPool(t))
	ctx := context.Background()

	entry := makeTestEntry(uniqueFilename("get"))
	_, err := repo.Record(ctx, entry)
	require.NoError(t, err)

	got, err := repo.GetByFilename(ctx, entry.Filename)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, got.ID)
	assert.Equal(t, "Forest Frontiers", got.Name)
	assert.Equal(t, "A gentle starter park.", got.Details)
	assert.Equal(t, catalog.SourceScenario, got.SourceType)
	assert.Equal(t, 250, got.GuestsInPark)
}

func TestScenarioRepository_GetByFilenameNotFound(t *testing.T) {
	repo := catalog.NewScenarioRepository(testutil.NewPool(t))

	_, err := repo.GetByFilename(context.Background(), "no-such-park.SC6")
	assert.ErrorIs(t, err, catalog.ErrScenarioNotFound)
}

func TestScenarioRepository_ListByCategory(t *testing.T) {
	repo := catalog.NewScenarioRepository(testutil.NewPool(t))
	ctx := context.Background()

	first := makeTestEntry(uniqueFilename("list_a"))
	first.Category = 3
	second := makeTestEntry(uniqueFilename("list_b"))
	second.Category = 3
	other := makeTestEntry(uniqueFilename("list_c"))
	other.Category = 4

	for _, e := range []catalog.Entry{first, second, other} {
		_, err := repo.Record(ctx, e)
		require.NoError(t, err)
	}

	entries, err := repo.ListByCategory(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, uint8(3), e.Category)
	}

	empty, err := repo.ListByCategory(ctx, 9)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestScenarioRepository_Delete(t *testing.T) {
	repo := catalog.NewScenarioRepository(testutil.NewPool(t))
	ctx := context.Background()

	entry := makeTestEntry(uniqueFilename("del"))
	_, err := repo.Record(ctx, entry)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, entry.ID))

	_, err = repo.GetByFilename(ctx, entry.Filename)
	assert.ErrorIs(t, err, catalog.ErrScenarioNotFound)
}

func TestScenarioRepository_DeleteMissing(t *testing.T) {
	repo := catalog.NewScenarioRepository(testutil.NewPool(t))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, catalog.ErrScenarioNotFound)
}

func TestEntryFromWorld(t *testing.T) {
	w := world.New()
	w.Scenario.Filename = "Crazy Castle.SC6"
	w.Scenario.Name = "Crazy Castle"
	w.Scenario.Details = "A castle park."
	w.Scenario.Category = 2
	w.Scenario.ObjectiveType = 1
	w.Park.GuestsInPark = 312
	w.Park.Rating = 777
	w.Finance.CompanyValue = 90000
	w.Rides[0] = &world.Ride{}
	w.Rides[9] = &world.Ride{}

	entry := catalog.EntryFromWorld(w, catalog.SourceScenario)

	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, "Crazy Castle.SC6", entry.Filename)
	assert.Equal(t, "Crazy Castle", entry.Name)
	assert.Equal(t, uint8(2), entry.Category)
	assert.Equal(t, catalog.SourceScenario, entry.SourceType)
	assert.Equal(t, 2, entry.RideCount)
	assert.Equal(t, 312, entry.GuestsInPark)
	assert.Equal(t, 777, entry.ParkRating)
	assert.Equal(t, int64(90000), entry.CompanyValue)
}
