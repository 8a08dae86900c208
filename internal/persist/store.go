// Package persist reads and writes the flat files kept between runs.
package persist

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName names the data directory under XDG_DATA_HOME.
const AppName = "psymaze"

// File names inside the data directory.
const (
	ProfileFile  = "profile.txt"
	JournalFile  = "journal.txt"
	SummaryFile  = "session_stats.txt"
	SnapshotFile = "run_snapshot.txt"
	RunLogFile   = "runs.jsonl"
	LogFile      = "psymaze.log"
)

// DataDir returns the directory where psymaze keeps its files. A non-empty
// override wins; otherwise it follows the XDG Base Directory spec:
// $XDG_DATA_HOME/psymaze, defaulting to ~/.local/share/psymaze.
func DataDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, AppName), nil
}

// Store owns the data directory.
type Store struct {
	dir string
}

// Open creates dir if needed.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory.
func (s *Store) Dir() string { return s.dir }

// Path returns the full path of a file in the data directory.
func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) appendFile(name string, data []byte) error {
	f, err := os.OpenFile(s.Path(name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	return f.Close()
}
