// Package importer loads legacy .sc6 scenario and .sv6 saved-game files and
// migrates them into the live world model. Importing is two-phase: Load
// reads and stages every chunk and returns the declared object entries so
// the caller can resolve assets, then Import decodes and migrates into a
// caller-owned world. One importer performs one import; it is not safe for
// concurrent use.
package importer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/tomlankhorst/OpenRCT2/internal/objects"
	"github.com/tomlankhorst/OpenRCT2/internal/rct2"
	"github.com/tomlankhorst/OpenRCT2/internal/sawyer"
	"github.com/tomlankhorst/OpenRCT2/internal/world"
)

// Stage tracks the importer's strictly forward state machine.
type Stage int

const (
	StageIdle Stage = iota
	StageHeaderRead
	StageChunksLoaded
	StageMigrated
	StageRepaired
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageIdle:
		return "idle"
	case StageHeaderRead:
		return "header-read"
	case StageChunksLoaded:
		return "chunks-loaded"
	case StageMigrated:
		return "migrated"
	case StageRepaired:
		return "repaired"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options are the caller-facing toggles. AllowInvalidChecksum admits
// slightly corrupted but otherwise recoverable scenario files;
// SkipObjectCheck defers missing-object failures to the consumer.
type Options struct {
	AllowInvalidChecksum bool
	SkipObjectCheck      bool
}

// ParkImporter imports one park file. Construct with New, call Load (or one
// of its layout-specific variants), resolve objects, then Import.
type ParkImporter struct {
	log  *zap.Logger
	repo objects.Repository
	opts Options

	stage      Stage
	isScenario bool
	filename   string

	header  rct2.RawHeader
	info    rct2.RawScenarioInfo
	objects []rct2.ObjectEntry
	date    rct2.RawDate
	tiles   []rct2.RawTileRecord
	state   rct2.RawGameState
}

// New returns an importer logging through log and resolving objects
// through repo.
//
// Precondition: log and repo are non-nil.
func New(log *zap.Logger, repo objects.Repository, opts Options) *ParkImporter {
	return &ParkImporter{
		log:  log.Named("importer"),
		repo: repo,
		opts: opts,
	}
}

// Stage returns the current state-machine stage.
func (p *ParkImporter) Stage() Stage { return p.stage }

// RequiredObjects returns the object list staged by Load.
func (p *ParkImporter) RequiredObjects() []rct2.ObjectEntry { return p.objects }

// Load opens path and stages its chunks, dispatching on the file extension:
// .sc6 selects the scenario layout, .sv6 the saved-game layout. It returns
// the declared object entries for asset resolution.
func (p *ParkImporter) Load(path string) ([]rct2.ObjectEntry, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".sc6":
		return p.LoadScenario(path)
	case ".sv6":
		return p.LoadSavedGame(path)
	default:
		return nil, fmt.Errorf("%w: unrecognised park file extension %q", sawyer.ErrFormat, filepath.Ext(path))
	}
}

// LoadScenario stages a scenario file.
func (p *ParkImporter) LoadScenario(path string) ([]rct2.ObjectEntry, error) {
	return p.loadFile(path, true)
}

// LoadSavedGame stages a saved-game file.
func (p *ParkImporter) LoadSavedGame(path string) ([]rct2.ObjectEntry, error) {
	return p.loadFile(path, false)
}

func (p *ParkImporter) loadFile(path string, isScenario bool) ([]rct2.ObjectEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		p.stage = StageFailed
		return nil, fmt.Errorf("opening park file: %w", err)
	}
	defer f.Close()
	return p.LoadFromStream(f, isScenario, filepath.Base(path))
}

// LoadFromStream stages every chunk of a park stream. filename is the
// source file's base name; scenarios adopt it over the unreliable embedded
// one. The stream must be positioned at the start of the file.
//
// Postcondition: on success the importer is in StageChunksLoaded and the
// returned entries list every object the park references.
func (p *ParkImporter) LoadFromStream(rs io.ReadSeeker, isScenario bool, filename string) ([]rct2.ObjectEntry, error) {
	if p.stage != StageIdle {
		return nil, fmt.Errorf("%w: importer already used (stage %s)", sawyer.ErrFormat, p.stage)
	}
	p.isScenario = isScenario
	p.filename = filename

	entries, err := p.loadFromStream(rs, isScenario)
	if err != nil {
		p.stage = StageFailed
		return nil, err
	}
	p.stage = StageChunksLoaded
	return entries, nil
}

func (p *ParkImporter) loadFromStream(rs io.ReadSeeker, isScenario bool) ([]rct2.ObjectEntry, error) {
	if isScenario && !p.opts.AllowInvalidChecksum {
		if err := sawyer.ValidateChecksum(rs); err != nil {
			return nil, err
		}
	}

	cr := sawyer.NewChunkReader(rs)

	buf := make([]byte, rct2.GameStateBlockSize)

	if err := cr.ReadChunk(buf[:rct2.HeaderSize]); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	p.header = rct2.DecodeHeader(buf[:rct2.HeaderSize])
	if p.header.ClassicFlag == rct2.ClassicFlagUnsupported {
		return nil, fmt.Errorf("%w: classic compressed save variant", sawyer.ErrUnsupportedFormat)
	}
	wantType := uint8(rct2.TypeSavedGame)
	if isScenario {
		wantType = rct2.TypeScenario
	}
	if p.header.Type != wantType {
		return nil, fmt.Errorf("%w: header type %d does not match layout", sawyer.ErrUnsupportedFormat, p.header.Type)
	}
	p.stage = StageHeaderRead
	p.log.Debug("header read",
		zap.Uint8("type", p.header.Type),
		zap.Uint16("packedObjects", p.header.NumPackedObjects),
		zap.Uint32("version", p.header.Version))

	if isScenario {
		if err := cr.ReadChunk(buf[:rct2.ScenarioInfoSize]); err != nil {
			return nil, fmt.Errorf("scenario info: %w", err)
		}
		p.info = rct2.DecodeScenarioInfo(buf[:rct2.ScenarioInfoSize])
	}

	for i := 0; i < int(p.header.NumPackedObjects); i++ {
		var entry [rct2.ObjectEntrySize]byte
		if _, err := io.ReadFull(rs, entry[:]); err != nil {
			return nil, fmt.Errorf("%w: packed object %d entry", sawyer.ErrTruncated, i)
		}
		po, err := objects.ReadPackedObject(cr, entry[:])
		if err != nil {
			return nil, err
		}
		if err := p.repo.AddPacked(po.Entry, po.Data); err != nil {
			return nil, fmt.Errorf("registering packed object %q: %w", po.Entry.Identifier(), err)
		}
	}

	if err := cr.ReadChunk(buf[:rct2.ObjectListSize]); err != nil {
		return nil, fmt.Errorf("object list: %w", err)
	}
	p.objects = rct2.DecodeObjectList(buf[:rct2.ObjectListSize])

	if err := cr.ReadChunk(buf[:rct2.DateChunkSize]); err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}
	p.date = rct2.DecodeDate(buf[:rct2.DateChunkSize])

	if err := cr.ReadChunk(buf[:rct2.TileElementsSize]); err != nil {
		return nil, fmt.Errorf("tile elements: %w", err)
	}
	p.tiles = rct2.DecodeTileRecords(buf[:rct2.TileElementsSize])

	// The game-state block arrives as one chunk for saves and as eight
	// windows of the same block for scenarios; regions a fresh scenario
	// never carries (histories, expenditure) are simply absent on disk.
	for i := range buf {
		buf[i] = 0
	}
	if isScenario {
		windows := []struct {
			off, size int
		}{
			{0, rct2.GameStateWindowASize},
			{rct2.GameStateWindowBOffset, rct2.GameStateWindowBSize},
			{rct2.GameStateWindowCOffset, rct2.GameStateWindowCSize},
			{rct2.GameStateWindowDOffset, rct2.GameStateWindowDSize},
			{rct2.GameStateWindowEOffset, rct2.GameStateWindowESize},
			{rct2.GameStateWindowFOffset, rct2.GameStateWindowFSize},
			{rct2.GameStateWindowGOffset, rct2.GameStateWindowGSize},
			{rct2.GameStateWindowHOffset, rct2.GameStateWindowHSize},
		}
		for i, win := range windows {
			if err := cr.ReadChunk(buf[win.off : win.off+win.size]); err != nil {
				return nil, fmt.Errorf("game state window %d: %w", i, err)
			}
		}
	} else {
		if err := cr.ReadChunk(buf); err != nil {
			return nil, fmt.Errorf("game state: %w", err)
		}
	}
	p.state = rct2.DecodeGameState(buf)

	return p.objects, nil
}

// Import decodes and migrates the staged chunks into w. The world is reset
// first; on error it must be treated as invalid, since fields may already
// have been overwritten (no rollback).
//
// Precondition: Load succeeded and required objects have been resolved
// (unless SkipObjectCheck is set).
func (p *ParkImporter) Import(w *world.World) error {
	if p.stage != StageChunksLoaded {
		return fmt.Errorf("%w: import called in stage %s", sawyer.ErrFormat, p.stage)
	}
	if err := p.doImport(w); err != nil {
		p.stage = StageFailed
		return err
	}
	p.stage = StageDone
	return nil
}

func (p *ParkImporter) doImport(w *world.World) error {
	if !p.opts.SkipObjectCheck {
		if err := p.repo.LoadObjects(p.objects); err != nil {
			return fmt.Errorf("resolving park objects: %w", err)
		}
	}

	w.InitAll(int32(p.state.MapSize))

	p.migrateScalars(w)
	p.migrateRides(w)
	p.migrateSprites(w)
	p.migrateNews(w)

	if err := p.migrateTiles(w); err != nil {
		return err
	}
	p.stage = StageMigrated

	w.Research.Invented = decodeInventedSets(&p.state)

	p.applyQuirks(w)

	p.repair(w)
	p.stage = StageRepaired

	p.log.Info("park imported",
		zap.String("filename", w.Scenario.Filename),
		zap.Bool("scenario", p.isScenario),
		zap.Int32("mapSize", w.MapSize),
		zap.Int("rides", w.RideCount()),
		zap.Uint16("guests", w.Park.GuestsInPark))
	return nil
}

// ScenarioDetails is the metadata a catalog serves for known scenarios.
type ScenarioDetails struct {
	Name    string
	Details string
}

// GetDetails reports catalog metadata for the loaded park. The importer
// itself never has any; the scenario catalog collaborator serves details
// instead.
func (p *ParkImporter) GetDetails() (ScenarioDetails, bool) {
	return ScenarioDetails{}, false
}
