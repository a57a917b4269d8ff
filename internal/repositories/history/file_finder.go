package history

import (
	"fmt"
	"os/user"
	"path/filepath"

	"github.com/goterm/goterm/internal/core/ports"
)

// DefaultFileFinder resolves the history file to its fixed location in the
// user's home directory.
type DefaultFileFinder struct{}

// NewDefaultFileFinder creates a new DefaultFileFinder.
func NewDefaultFileFinder() ports.HistoryFileFinder {
	return &DefaultFileFinder{}
}

// Find implements the ports.HistoryFileFinder interface.
func (d *DefaultFileFinder) Find() (string, error) {
	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("getting current user: %w", err)
	}
	return filepath.Join(usr.HomeDir, defaultHistoryFilename), nil
}

// FixedPathFinder resolves the history file to an explicit path, used when
// the --history-file flag is set and by tests.
type FixedPathFinder struct {
	Path string
}

// NewFixedPathFinder creates a FixedPathFinder for the given path.
func NewFixedPathFinder(path string) ports.HistoryFileFinder {
	return &FixedPathFinder{Path: path}
}

// Find implements the ports.HistoryFileFinder interface.
func (f *FixedPathFinder) Find() (string, error) {
	if f.Path == "" {
		return "", fmt.Errorf("history file path cannot be empty")
	}
	return f.Path, nil
}
