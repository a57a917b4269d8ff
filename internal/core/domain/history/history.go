package history

// Entry is one recorded input line. The file stores nothing but the raw
// line; the index is its 1-based position, assigned on load.
type Entry struct {
	Index int
	Line  string
}
