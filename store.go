package wealth

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"
)

// SnapshotFile is the fixed name of the persisted snapshot inside the data
// directory, the single storage key of the application.
const SnapshotFile = "wealth-tracker-v01.json"

// ExportFile is the fixed name of the user-initiated snapshot export.
const ExportFile = "wealth-tracker-export.json"

// Store owns the persistence of the root state object. Every save is a
// whole-snapshot overwrite; there is no partial or transactional write.
type Store struct {
	path string
	seed func(*State) // fixture generator invoked on first run
}

// OpenStore binds a store to the snapshot file inside dir.
func OpenStore(dir string) *Store {
	return &Store{
		path: filepath.Join(dir, SnapshotFile),
		seed: func(s *State) {
			SeedDemo(s, rand.New(rand.NewSource(time.Now().UnixNano())))
		},
	}
}

// Load reads the persisted snapshot and merges it over the default state:
// fields missing from the snapshot keep their defaults. On first run (no
// snapshot file) it seeds demo data and immediately persists it. A corrupt
// snapshot is discarded with a logged warning and the defaults kept; boot
// never fails on bad data.
func (st *Store) Load() *State {
	s := NewState()

	data, err := os.ReadFile(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, snapshot does not exist, seeding demo data instead")
		st.seed(s)
		st.Save(s)
		return s
	}
	if err != nil {
		log.Printf("warning, cannot read snapshot %q: %v", st.path, err)
		return s
	}

	if err := json.Unmarshal(data, s); err != nil {
		log.Printf("warning, discarding corrupt snapshot %q: %v", st.path, err)
		return NewState()
	}
	return s
}

// Save serializes the entire state and overwrites the stored snapshot.
// It is best effort: a failure is logged but not reported to the caller.
func (st *Store) Save(s *State) {
	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("warning, cannot serialize snapshot: %v", err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0755); err != nil {
		log.Printf("warning, cannot create data directory for %q: %v", st.path, err)
		return
	}
	if err := os.WriteFile(st.path, data, 0644); err != nil {
		log.Printf("warning, cannot write snapshot %q: %v", st.path, err)
	}
}

// Reset deletes the persisted snapshot; the next Load seeds fresh demo data.
func (st *Store) Reset() error {
	err := os.Remove(st.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Export writes the entire snapshot, pretty-printed, to w.
func Export(w io.Writer, s *State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
