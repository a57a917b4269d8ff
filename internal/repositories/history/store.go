package history

import (
	"bufio"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/goterm/goterm/internal/core/domain/history"
	"github.com/goterm/goterm/internal/core/ports"
)

const defaultHistoryFilename = ".goterm_history"

/*
Store records every accepted input line in a flat text file, one raw line
per entry. The file is append-only: lines are written the moment they are
accepted and the program never rewrites or truncates it.
It implements the ports.HistoryStore interface.
*/
type Store struct {
	filePath string
}

// NewStore creates a new Store at the path resolved by fileFinder.
func NewStore(fileFinder ports.HistoryFileFinder) (ports.HistoryStore, error) {
	if fileFinder == nil {
		panic("fileFinder cannot be nil")
	}
	path, err := fileFinder.Find()
	if err != nil {
		return nil, fmt.Errorf("resolving history file path: %w", err)
	}
	return &Store{filePath: path}, nil
}

// Append implements the ports.HistoryStore interface.
func (s *Store) Append(line string) error {
	file, err := os.OpenFile(s.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history file %s for appending: %w", toUserFriendlyPath(s.filePath), err)
	}
	defer file.Close()

	// Stored entries are single lines; embedded newlines would desync the
	// one-line-per-input invariant.
	line = strings.ReplaceAll(line, "\n", " ")
	if _, err := file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to append to history file %s: %w", toUserFriendlyPath(s.filePath), err)
	}
	return nil
}

// Load implements the ports.HistoryStore interface. A missing file is an
// empty history, not an error.
func (s *Store) Load() ([]history.Entry, error) {
	file, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history file %s: %w", toUserFriendlyPath(s.filePath), err)
	}
	defer file.Close()

	var entries []history.Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		entries = append(entries, history.Entry{
			Index: len(entries) + 1,
			Line:  scanner.Text(),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history file %s: %w", toUserFriendlyPath(s.filePath), err)
	}
	return entries, nil
}

// Path implements the ports.HistoryStore interface.
func (s *Store) Path() string {
	return s.filePath
}

// toUserFriendlyPath converts an absolute path to a ~/-based path if it is
// under the user's home directory.
func toUserFriendlyPath(absPath string) string {
	usr, err := user.Current()
	if err != nil {
		return absPath
	}
	homeDir := usr.HomeDir

	if !strings.HasPrefix(absPath, homeDir) {
		return absPath
	}
	if absPath == homeDir {
		return "~"
	}
	relPath, err := filepath.Rel(homeDir, absPath)
	if err != nil {
		return absPath
	}
	return filepath.Join("~", relPath)
}
