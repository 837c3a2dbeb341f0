// Package backup writes timestamped copies of the vocabulary snapshot to a
// directory and prunes old ones.
package backup

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/mrlokans/wordbank/internal/entities"
	"github.com/mrlokans/wordbank/internal/storage"
)

const (
	filePrefix = "wordbank-"
	fileExt    = ".json"
	timeLayout = "20060102-150405.000"
)

// Info describes one backup file.
type Info struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
}

// Writer manages the backup directory. Retention is the number of files to
// keep; zero or less keeps everything.
type Writer struct {
	dir       string
	retention int
	now       func() time.Time
}

func NewWriter(dir string, retention int) *Writer {
	return &Writer{dir: dir, retention: retention, now: time.Now}
}

// Dir returns the backup directory.
func (w *Writer) Dir() string {
	return w.dir
}

// Write saves snap to a new file and prunes old backups. It returns the
// path of the written file.
func (w *Writer) Write(snap entities.Snapshot) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	path := w.nextPath()
	adapter := storage.NewAdapter(storage.NewFileBackend(path), "")
	if err := adapter.SaveSync(snap); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}
	log.Printf("[BACKUP] Wrote %d words and %d tags to %s", len(snap.Words), len(snap.Tags), path)

	if removed, err := w.Prune(); err != nil {
		log.Printf("[BACKUP] Prune failed: %v", err)
	} else if removed > 0 {
		log.Printf("[BACKUP] Removed %d old backups", removed)
	}

	return path, nil
}

// Read loads a backup by file name.
func (w *Writer) Read(name string) (entities.Snapshot, error) {
	if name != filepath.Base(name) || !isBackupName(name) {
		return entities.Snapshot{}, fmt.Errorf("invalid backup name %q", name)
	}
	adapter := storage.NewAdapter(storage.NewFileBackend(filepath.Join(w.dir, name)), "")
	return adapter.LoadSync()
}

// List returns the backups oldest first. A missing directory yields an
// empty list.
func (w *Writer) List() ([]Info, error) {
	entries, err := os.ReadDir(w.dir)
	if os.IsNotExist(err) {
		return []Info{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	backups := make([]Info, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isBackupName(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		backups = append(backups, Info{
			Name:      entry.Name(),
			Path:      filepath.Join(w.dir, entry.Name()),
			Size:      info.Size(),
			CreatedAt: parseName(entry.Name()),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Name < backups[j].Name
	})
	return backups, nil
}

// Prune deletes the oldest backups beyond the retention count.
func (w *Writer) Prune() (int, error) {
	if w.retention <= 0 {
		return 0, nil
	}

	backups, err := w.List()
	if err != nil {
		return 0, err
	}

	excess := len(backups) - w.retention
	removed := 0
	for i := 0; i < excess; i++ {
		if err := os.Remove(backups[i].Path); err != nil && !os.IsNotExist(err) {
			return removed, fmt.Errorf("remove %s: %w", backups[i].Name, err)
		}
		removed++
	}
	return removed, nil
}

func (w *Writer) nextPath() string {
	base := filePrefix + w.now().UTC().Format(timeLayout)
	path := filepath.Join(w.dir, base+fileExt)
	for n := 1; fileExists(path); n++ {
		path = filepath.Join(w.dir, fmt.Sprintf("%s-%d%s", base, n, fileExt))
	}
	return path
}

func isBackupName(name string) bool {
	return strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileExt)
}

func parseName(name string) time.Time {
	stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileExt)
	if len(stamp) > len(timeLayout) {
		stamp = stamp[:len(timeLayout)]
	}
	t, err := time.Parse(timeLayout, stamp)
	if err != nil {
		return time.Time{}
	}
	return t
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
