package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

// Source type labels for catalog entries.
const (
	SourceScenario  = "scenario"
	SourceSavedGame = "saved_game"
)

// ErrScenarioNotFound is returned when a scenario lookup yields no results.
var ErrScenarioNotFound = errors.New("scenario not found")

// ErrScenarioExists is returned when recording a filename already present.
var ErrScenarioExists = errors.New("scenario already recorded")

// Entry is one catalogued scenario.
type Entry struct {
	ID            uuid.UUID
	Filename      string
	Name          string
	Details       string
	Category      uint8
	SourceType    string
	ObjectiveType uint8
	RideCount     int
	GuestsInPark  int
	ParkRating    int
	CompanyValue  int64
	ImportedAt    time.Time
}

// EntryFromWorld builds a catalog entry from a freshly imported world.
func EntryFromWorld(w *world.World, sourceType string) Entry {
	return Entry{
		ID:            uuid.New(),
		Filename:      w.Scenario.Filename,
		Name:          w.Scenario.Name,
		Details:       w.Scenario.Details,
		Category:      w.Scenario.Category,
		SourceType:    sourceType,
		ObjectiveType: w.Scenario.ObjectiveType,
		RideCount:     w.RideCount(),
		GuestsInPark:  int(w.Park.GuestsInPark),
		ParkRating:    int(w.Park.Rating),
		CompanyValue:  int64(w.Finance.CompanyValue),
	}
}

// ScenarioRepository provides scenario catalog persistence operations.
type ScenarioRepository struct {
	db *pgxpool.Pool
}

// NewScenarioRepository creates a ScenarioRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewScenarioRepository(db *pgxpool.Pool) *ScenarioRepository {
	return &ScenarioRepository{db: db}
}

// Record inserts a catalog entry.
//
// Precondition: entry.Filename must be non-empty.
// Postcondition: Returns the stored Entry with ImportedAt set, or
// ErrScenarioExists if the filename is already catalogued.
func (r *ScenarioRepository) Record(ctx context.Context, entry Entry) (Entry, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO scenarios (id, filename, name, details, category, source_type,
		                        objective_type, ride_count, guests_in_park, park_rating, company_value)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING imported_at`,
		entry.ID, entry.Filename, entry.Name, entry.Details, entry.Category, entry.SourceType,
		entry.ObjectiveType, entry.RideCount, entry.GuestsInPark, entry.ParkRating, entry.CompanyValue,
	).Scan(&entry.ImportedAt)
	if err != nil {
		if isDuplicateKeyError(err) {
			return Entry{}, ErrScenarioExists
		}
		return Entry{}, fmt.Errorf("inserting scenario: %w", err)
	}
	return entry, nil
}

// GetByFilename retrieves a catalog entry by exact source filename. This is
// the details-query operation the importer defers to the catalog.
//
// Precondition: filename must be non-empty.
// Postcondition: Returns the Entry or ErrScenarioNotFound.
func (r *ScenarioRepository) GetByFilename(ctx context.Context, filename string) (Entry, error) {
	var e Entry
	err := r.db.QueryRow(ctx,
		`SELECT id, filename, name, details, category, source_type,
		        objective_type, ride_count, guests_in_park, park_rating, company_value, imported_at
		 FROM scenarios WHERE filename = $1`,
		filename,
	).Scan(&e.ID, &e.Filename, &e.Name, &e.Details, &e.Category, &e.SourceType,
		&e.ObjectiveType, &e.RideCount, &e.GuestsInPark, &e.ParkRating, &e.CompanyValue, &e.ImportedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Entry{}, ErrScenarioNotFound
		}
		return Entry{}, fmt.Errorf("querying scenario: %w", err)
	}
	return e, nil
}

// ListByCategory retrieves all entries in a scenario category, newest first.
//
// Postcondition: Returns zero or more entries; an empty category is not an
// error.
func (r *ScenarioRepository) ListByCategory(ctx context.Context, category uint8) ([]Entry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, filename, name, details, category, source_type,
		        objective_type, ride_count, guests_in_park, park_rating, company_value, imported_at
		 FROM scenarios WHERE category = $1 ORDER BY imported_at DESC`,
		category,
	)
	if err != nil {
		return nil, fmt.Errorf("querying scenarios: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Filename, &e.Name, &e.Details, &e.Category, &e.SourceType,
			&e.ObjectiveType, &e.RideCount, &e.GuestsInPark, &e.ParkRating, &e.CompanyValue, &e.ImportedAt); err != nil {
			return nil, fmt.Errorf("scanning scenario: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating scenarios: %w", err)
	}
	return entries, nil
}

// Delete removes a catalog entry by ID.
//
// Postcondition: The entry is removed, or ErrScenarioNotFound is returned.
func (r *ScenarioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM scenarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting scenario: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrScenarioNotFound
	}
	return nil
}

// isDuplicateKeyError checks if a pgx error is a unique constraint violation.
func isDuplicateKeyError(err error) bool {
	// pgx wraps PostgreSQL errors; check for SQLSTATE 23505 (unique_violation)
	var pgErr interface{ SQLState() string }
	if errors.As(err, &pgErr) {
		return pgErr.SQLState() == "23505"
	}
	return false
}
