package repl

import (
	"os"
	"sort"
	"strings"

	"github.com/goterm/goterm/internal/core/ports"
)

// completer implements readline.AutoCompleter over the builtin names plus
// the entries of the interpreter's current directory, like any shell's
// default completion.
type completer struct {
	dispatcher   ports.Dispatcher
	builtinNames []string
}

func newCompleter(dispatcher ports.Dispatcher, builtinNames []string) *completer {
	return &completer{dispatcher: dispatcher, builtinNames: builtinNames}
}

// Do implements the readline.AutoCompleter interface. It completes the
// word under the cursor and returns candidate suffixes.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	prefix := string(line[:pos])
	start := strings.LastIndexAny(prefix, " \t") + 1
	word := prefix[start:]

	seen := make(map[string]struct{})
	var candidates []string
	add := func(name string) {
		if strings.HasPrefix(name, word) {
			if _, dup := seen[name]; !dup {
				seen[name] = struct{}{}
				candidates = append(candidates, name)
			}
		}
	}

	for _, name := range c.builtinNames {
		add(name)
	}
	if entries, err := os.ReadDir(c.dispatcher.Dir()); err == nil {
		for _, e := range entries {
			add(e.Name())
		}
	}
	sort.Strings(candidates)

	completions := make([][]rune, 0, len(candidates))
	for _, cand := range candidates {
		completions = append(completions, []rune(cand[len(word):]))
	}
	return completions, len([]rune(word))
}
