package journal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ecomood/ecomood/internal/logging"
)

// FileVersion is the schema version written to journal files.
const FileVersion = 1

const (
	lockMaxRetries = 10
	lockRetryDelay = 100 * time.Millisecond
	staleLockAge   = 30 * time.Second
)

// fileData is the on-disk journal document.
type fileData struct {
	Version     int             `yaml:"version"`
	Activities  []ActivityEntry `yaml:"activities"`
	Reflections []Reflection    `yaml:"reflections"`
}

// FileStore persists the journal as a single YAML document. Every call reads
// the file afresh, so several processes may share a journal. Writes are
// serialized by an advisory lockfile and land atomically.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore returns a store backed by path. The file is created on the
// first submission; until then the journal reads as empty.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, fmt.Errorf("journal path cannot be empty")
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// Activities returns the activities logged between from and to.
func (s *FileStore) Activities(ctx context.Context, from, to time.Time) ([]ActivityEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return filterActivities(data.Activities, from, to), nil
}

// Reflections returns the reflections written between from and to.
func (s *FileStore) Reflections(ctx context.Context, from, to time.Time) ([]Reflection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		return nil, err
	}
	return filterReflections(data.Reflections, from, to), nil
}

// AddActivity validates entry and appends it to the journal file.
func (s *FileStore) AddActivity(ctx context.Context, entry ActivityEntry) (ActivityEntry, error) {
	if err := ValidateActivity(entry); err != nil {
		return ActivityEntry{}, err
	}
	if entry.ID == "" {
		entry.ID = newID()
	}
	err := s.update(ctx, func(d *fileData) {
		d.Activities = append(d.Activities, entry)
	})
	if err != nil {
		return ActivityEntry{}, err
	}

	logging.FromContext(ctx).Debug().
		Str("component", "journal").
		Str("id", entry.ID).
		Str("date", entry.Date).
		Str("category", entry.Category.String()).
		Str("type", entry.Type).
		Msg("activity recorded")
	return entry, nil
}

// AddReflection validates r and appends it to the journal file.
func (s *FileStore) AddReflection(ctx context.Context, r Reflection) (Reflection, error) {
	r, err := normalizeReflection(r)
	if err != nil {
		return Reflection{}, err
	}
	if r.ID == "" {
		r.ID = newID()
	}
	err = s.update(ctx, func(d *fileData) {
		d.Reflections = append(d.Reflections, r)
	})
	if err != nil {
		return Reflection{}, err
	}

	logging.FromContext(ctx).Debug().
		Str("component", "journal").
		Str("id", r.ID).
		Str("date", r.Date).
		Str("sentiment", string(r.Sentiment)).
		Msg("reflection recorded")
	return r, nil
}

// update runs fn against the current document and writes the result back.
func (s *FileStore) update(ctx context.Context, fn func(*fileData)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	unlock, err := s.acquireFileLock()
	if err != nil {
		return fmt.Errorf("acquiring file lock: %w", err)
	}
	defer unlock()

	data, err := s.read()
	if err != nil {
		return err
	}
	fn(data)
	return s.write(data)
}

// read loads the journal document. A missing file is an empty journal; an
// unreadable document or an unknown version is ErrJournalCorrupted and is
// never silently replaced.
func (s *FileStore) read() (*fileData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &fileData{Version: FileVersion}, nil
		}
		return nil, fmt.Errorf("reading journal file: %w", err)
	}

	var data fileData
	if unmarshalErr := yaml.Unmarshal(raw, &data); unmarshalErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrJournalCorrupted, unmarshalErr)
	}
	if data.Version == 0 && len(data.Activities) == 0 && len(data.Reflections) == 0 {
		// Empty file.
		data.Version = FileVersion
	}
	if data.Version != FileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d (expected %d)",
			ErrJournalCorrupted, data.Version, FileVersion)
	}
	return &data, nil
}

// write replaces the journal file via a temp file and rename.
func (s *FileStore) write(data *fileData) error {
	data.Version = FileVersion
	raw, err := yaml.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshaling journal: %w", err)
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(s.path), 0o750); mkdirErr != nil {
		return fmt.Errorf("creating journal directory: %w", mkdirErr)
	}

	tmpPath := s.path + ".tmp"
	if writeErr := os.WriteFile(tmpPath, raw, 0o600); writeErr != nil {
		return fmt.Errorf("writing journal temp file: %w", writeErr)
	}
	if renameErr := os.Rename(tmpPath, s.path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming journal temp file: %w", renameErr)
	}
	return nil
}

func (s *FileStore) lockFilePath() string {
	return s.path + ".lock"
}

// acquireFileLock takes a cross-process advisory lock and returns its release.
func (s *FileStore) acquireFileLock() (func(), error) {
	lockPath := s.lockFilePath()
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating lock directory: %w", err)
	}

	for range lockMaxRetries {
		f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err == nil {
			_, _ = fmt.Fprintf(f, "%d", os.Getpid())
			_ = f.Close()
			return func() { _ = os.Remove(lockPath) }, nil
		}
		if removeStaleLock(lockPath) {
			continue
		}
		time.Sleep(lockRetryDelay)
	}
	return nil, fmt.Errorf("could not acquire lock on %s after retries", lockPath)
}

// removeStaleLock deletes a lock older than staleLockAge whose owner is gone.
// Returns true when the caller should retry immediately.
func removeStaleLock(lockPath string) bool {
	info, err := os.Stat(lockPath)
	if err != nil || time.Since(info.ModTime()) <= staleLockAge {
		return false
	}
	if lockOwnerAlive(lockPath) {
		return false
	}
	_ = os.Remove(lockPath)
	return true
}

func lockOwnerAlive(lockPath string) bool {
	raw, err := os.ReadFile(lockPath)
	if err != nil || len(raw) == 0 {
		return false
	}
	var pid int
	if _, scanErr := fmt.Sscanf(string(raw), "%d", &pid); scanErr != nil || pid <= 0 {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Signal 0 probes for existence without delivering anything.
	return proc.Signal(syscall.Signal(0)) == nil
}
