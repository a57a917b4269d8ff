package ports

import "github.com/goterm/goterm/internal/core/domain/history"

// HistoryStore records accepted input lines, append-only.
type HistoryStore interface {
	// Append writes one raw line. Appends happen immediately, never
	// batched, so the file gains exactly one line per accepted input.
	Append(line string) error
	Load() ([]history.Entry, error)
	// Path returns the absolute path of the backing file.
	Path() string
}
