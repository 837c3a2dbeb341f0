package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/wordbank/internal/entities"
)

func testSnapshot() entities.Snapshot {
	return entities.Snapshot{
		Words: []entities.Word{{ID: "w1", Term: "ubiquitous", Definition: "everywhere", TagIDs: []string{"t1"}}},
		Tags:  []entities.Tag{{ID: "t1", Name: "core"}},
	}
}

func newTestWriter(t *testing.T, retention int) *Writer {
	t.Helper()
	w := NewWriter(filepath.Join(t.TempDir(), "backups"), retention)
	clock := time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return w
}

func TestWriter_WriteAndRead(t *testing.T) {
	w := newTestWriter(t, 0)

	path, err := w.Write(testSnapshot())
	require.NoError(t, err)
	assert.Equal(t, "wordbank-20250622-120001.000.json", filepath.Base(path))

	snap, err := w.Read(filepath.Base(path))
	require.NoError(t, err)
	assert.Equal(t, "ubiquitous", snap.Words[0].Term)
	assert.Equal(t, "core", snap.Tags[0].Name)
}

func TestWriter_ReadRejectsPaths(t *testing.T) {
	w := newTestWriter(t, 0)

	_, err := w.Read("../wordbank-x.json")
	assert.Error(t, err)
	_, err = w.Read("notes.txt")
	assert.Error(t, err)
}

func TestWriter_SameTimestamp(t *testing.T) {
	w := newTestWriter(t, 0)
	fixed := time.Date(2025, 6, 22, 12, 0, 0, 0, time.UTC)
	w.now = func() time.Time { return fixed }

	first, err := w.Write(testSnapshot())
	require.NoError(t, err)
	second, err := w.Write(testSnapshot())
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	backups, err := w.List()
	require.NoError(t, err)
	assert.Len(t, backups, 2)
}

func TestWriter_Retention(t *testing.T) {
	w := newTestWriter(t, 3)

	var paths []string
	for i := 0; i < 5; i++ {
		p, err := w.Write(testSnapshot())
		require.NoError(t, err)
		paths = append(paths, p)
	}

	backups, err := w.List()
	require.NoError(t, err)
	require.Len(t, backups, 3)
	assert.Equal(t, filepath.Base(paths[2]), backups[0].Name)
	assert.Equal(t, filepath.Base(paths[4]), backups[2].Name)
	assert.Equal(t, time.Date(2025, 6, 22, 12, 0, 5, 0, time.UTC), backups[2].CreatedAt)

	_, err = os.Stat(paths[0])
	assert.True(t, os.IsNotExist(err))
}

func TestWriter_ListIgnoresOtherFiles(t *testing.T) {
	w := newTestWriter(t, 0)
	_, err := w.Write(testSnapshot())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(w.Dir(), "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(w.Dir(), "wordbank-dir.json"), 0755))

	backups, err := w.List()
	require.NoError(t, err)
	assert.Len(t, backups, 1)
}

func TestWriter_ListMissingDir(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "missing"), 2)

	backups, err := w.List()
	require.NoError(t, err)
	assert.Empty(t, backups)

	removed, err := w.Prune()
	require.NoError(t, err)
	assert.Zero(t, removed)
}
