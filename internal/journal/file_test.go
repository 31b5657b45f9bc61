package journal_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomood/ecomood/internal/greenops"
	"github.com/ecomood/ecomood/internal/journal"
)

func TestNewFileStore_EmptyPath(t *testing.T) {
	_, err := journal.NewFileStore("")
	require.Error(t, err)
}

func TestFileStore_MissingFileIsEmpty(t *testing.T) {
	s, err := journal.NewFileStore(filepath.Join(t.TempDir(), "journal.yaml"))
	require.NoError(t, err)

	acts, err := s.Activities(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Empty(t, acts)
}

func TestFileStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "journal.yaml")
	s, err := journal.NewFileStore(path)
	require.NoError(t, err)
	assert.Equal(t, path, s.Path())

	added, err := s.AddActivity(ctx, activity("2024-08-21", greenops.CategoryTransport, "bus", greenops.Number(12)))
	require.NoError(t, err)
	_, err = s.AddActivity(ctx, activity("2024-08-20", greenops.CategoryDiet, "vegetarian", greenops.Text("2")))
	require.NoError(t, err)
	_, err = s.AddReflection(ctx, journal.Reflection{
		Date: "2024-08-21", Text: "Took the bus", Sentiment: journal.SentimentPositive, Score: 0.4,
	})
	require.NoError(t, err)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file should be renamed away")
	_, err = os.Stat(path + ".lock")
	assert.True(t, os.IsNotExist(err), "lock should be released")

	reopened, err := journal.NewFileStore(path)
	require.NoError(t, err)
	acts, err := reopened.Activities(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, acts, 2)
	assert.Equal(t, "2024-08-20", acts[0].Date)
	assert.Equal(t, added.ID, acts[1].ID)

	v, ok := acts[0].Value.Float64()
	require.True(t, ok)
	assert.InDelta(t, 2.0, v, 1e-9)

	refl, err := reopened.Reflections(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, refl, 1)
	assert.Equal(t, journal.SentimentPositive, refl[0].Sentiment)
	assert.InDelta(t, 0.4, refl[0].Score, 1e-9)
}

func TestFileStore_ReadsHandWrittenJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: 1
activities:
  - id: a1
    date: "2024-08-20"
    category: transport
    type: car
    value: 10
  - id: a2
    date: "2024-08-20"
    category: transport
    type: hovercraft
    value: "5km"
reflections: []
`), 0o600))

	s, err := journal.NewFileStore(path)
	require.NoError(t, err)
	acts, err := s.Activities(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, acts, 2)

	// Hand edits bypass submission checks; aggregation still tolerates them.
	b := greenops.Aggregate(journal.Records(acts))
	assert.InDelta(t, 2.1, b.Transport, 1e-9)
}

func TestFileStore_Corrupted(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not yaml", "version: [1\nactivities: {"},
		{"future version", "version: 7\nactivities: []\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "journal.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			s, err := journal.NewFileStore(path)
			require.NoError(t, err)

			_, err = s.Activities(context.Background(), time.Time{}, time.Time{})
			require.ErrorIs(t, err, journal.ErrJournalCorrupted)

			_, err = s.AddActivity(context.Background(),
				activity("2024-08-20", greenops.CategoryTransport, "car", greenops.Number(1)))
			require.ErrorIs(t, err, journal.ErrJournalCorrupted)

			raw, readErr := os.ReadFile(path)
			require.NoError(t, readErr)
			assert.Equal(t, tt.content, string(raw), "corrupted journal must not be overwritten")
		})
	}
}

func TestFileStore_ConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	s, err := journal.NewFileStore(filepath.Join(t.TempDir(), "journal.yaml"))
	require.NoError(t, err)

	const writers = 8
	var wg sync.WaitGroup
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, addErr := s.AddActivity(ctx,
				activity("2024-08-20", greenops.CategoryEnergy, "electricity", greenops.Number(3)))
			assert.NoError(t, addErr)
		}()
	}
	wg.Wait()

	acts, err := s.Activities(ctx, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, acts, writers)
}
