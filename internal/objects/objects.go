// Package objects is the collaborator repository that resolves the external
// object definitions a park references. The importer hands it the declared
// entry list between Load and Import; resolution failures surface as a typed
// ObjectLoadError so callers can list exactly what is missing.
package objects

import (
	"fmt"
	"strings"

	"github.com/tomlankhorst/OpenRCT2/internal/rct2"
	"github.com/tomlankhorst/OpenRCT2/internal/sawyer"
)

// maxPackedObjectSize caps the decoded size of one packed object chunk.
// Legacy object data never comes close; the cap only guards against corrupt
// run lengths.
const maxPackedObjectSize = 1 << 22

// Repository resolves referenced object definitions by identifier.
type Repository interface {
	// LoadObjects resolves every non-empty entry. It returns an
	// *ObjectLoadError listing the entries that could not be resolved, or
	// nil when all are available.
	LoadObjects(entries []rct2.ObjectEntry) error

	// AddPacked registers an object carried inside the park file itself.
	AddPacked(entry rct2.ObjectEntry, data []byte) error
}

// ObjectLoadError reports object entries that could not be resolved.
type ObjectLoadError struct {
	Missing []rct2.ObjectEntry
}

func (e *ObjectLoadError) Error() string {
	ids := make([]string, len(e.Missing))
	for i, entry := range e.Missing {
		ids[i] = entry.Identifier()
	}
	return fmt.Sprintf("%d objects could not be resolved: %s", len(e.Missing), strings.Join(ids, ", "))
}

// PackedObject is one object definition embedded in a park file.
type PackedObject struct {
	Entry rct2.ObjectEntry
	Data  []byte
}

// ReadPackedObject consumes one packed object from the stream: a 16-byte
// object entry followed by one chunk of object data.
func ReadPackedObject(cr *sawyer.ChunkReader, entryBytes []byte) (PackedObject, error) {
	entry := rct2.DecodeObjectEntry(entryBytes)
	data, err := cr.ReadChunkAny(maxPackedObjectSize)
	if err != nil {
		return PackedObject{}, fmt.Errorf("packed object %q: %w", entry.Identifier(), err)
	}
	return PackedObject{Entry: entry, Data: data}, nil
}

// InMemoryRepository resolves objects against a fixed identifier set. It
// stands in for a full asset store; parks import against whatever set the
// caller registers.
type InMemoryRepository struct {
	known map[string][]byte
}

var _ Repository = (*InMemoryRepository)(nil)

// NewInMemoryRepository returns a repository pre-seeded with the given
// identifiers.
func NewInMemoryRepository(identifiers ...string) *InMemoryRepository {
	r := &InMemoryRepository{known: make(map[string][]byte, len(identifiers))}
	for _, id := range identifiers {
		r.known[id] = nil
	}
	return r
}

// Add registers an identifier as resolvable.
func (r *InMemoryRepository) Add(identifier string) {
	r.known[identifier] = nil
}

// AddPacked registers an object shipped inside a park file.
func (r *InMemoryRepository) AddPacked(entry rct2.ObjectEntry, data []byte) error {
	r.known[entry.Identifier()] = data
	return nil
}

// LoadObjects checks every non-empty entry against the registered set.
func (r *InMemoryRepository) LoadObjects(entries []rct2.ObjectEntry) error {
	var missing []rct2.ObjectEntry
	for _, e := range entries {
		if e.IsEmpty() {
			continue
		}
		if _, ok := r.known[e.Identifier()]; !ok {
			missing = append(missing, e)
		}
	}
	if len(missing) > 0 {
		return &ObjectLoadError{Missing: missing}
	}
	return nil
}

// PermissiveRepository resolves every entry. It backs the object-check
// bypass configuration.
type PermissiveRepository struct{}

var _ Repository = PermissiveRepository{}

// LoadObjects always succeeds.
func (PermissiveRepository) LoadObjects([]rct2.ObjectEntry) error { return nil }

// AddPacked discards the object.
func (PermissiveRepository) AddPacked(rct2.ObjectEntry, []byte) error { return nil }
