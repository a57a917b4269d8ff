package ports

// HistoryFileFinder resolves the path of the history file.
type HistoryFileFinder interface {
	Find() (string, error)
}
