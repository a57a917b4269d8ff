package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/goterm/goterm/internal/core/domain/history"
	"github.com/goterm/goterm/internal/core/testutil"
)

func newTestREPL(dispatcher *testutil.MockDispatcher, store *testutil.MockHistoryStore) (*REPL, *bytes.Buffer, *bytes.Buffer) {
	r := New(dispatcher, []string{"ls", "cd"}, store)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	r.out = out
	r.errOut = errOut
	return r, out, errOut
}

func TestNew(t *testing.T) {
	t.Run("panics on nil dispatcher", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("New did not panic with nil dispatcher")
			}
		}()
		New(nil, nil, &testutil.MockHistoryStore{})
	})

	t.Run("panics on nil history", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("New did not panic with nil history")
			}
		}()
		New(&testutil.MockDispatcher{}, nil, nil)
	})
}

func TestRunSimple(t *testing.T) {
	t.Run("renders a failure and keeps dispatching", func(t *testing.T) {
		dispatcher := &testutil.MockDispatcher{
			ExecuteFunc: func(_ context.Context, line string) (string, error) {
				if line == "frobnicate" {
					return "", fmt.Errorf("%w: %q", command.ErrUnrecognizedInput, line)
				}
				return "hello", nil
			},
		}
		r, out, errOut := newTestREPL(dispatcher, &testutil.MockHistoryStore{})

		input := strings.NewReader("frobnicate\necho hello\n")
		if err := r.runSimple(context.Background(), input); err != nil {
			t.Fatalf("runSimple() error: %v", err)
		}

		if want := 2; len(dispatcher.Calls) != want {
			t.Fatalf("dispatched %d lines, want %d: %v", len(dispatcher.Calls), want, dispatcher.Calls)
		}
		if !strings.Contains(errOut.String(), "unrecognized") {
			t.Errorf("errOut = %q, want the unrecognized input rendered", errOut.String())
		}
		if !strings.Contains(out.String(), "hello") {
			t.Errorf("out = %q, want the second command's output", out.String())
		}
	})

	t.Run("exit ends the loop before later lines", func(t *testing.T) {
		dispatcher := &testutil.MockDispatcher{
			ExecuteFunc: func(_ context.Context, line string) (string, error) {
				if line == "exit" {
					return "", &command.ExitError{Code: 0}
				}
				return "", nil
			},
		}
		r, out, _ := newTestREPL(dispatcher, &testutil.MockHistoryStore{})

		input := strings.NewReader("exit\nls\n")
		if err := r.runSimple(context.Background(), input); err != nil {
			t.Fatalf("runSimple() error: %v", err)
		}

		if want := []string{"exit"}; len(dispatcher.Calls) != 1 || dispatcher.Calls[0] != want[0] {
			t.Errorf("dispatched %v, want %v", dispatcher.Calls, want)
		}
		if !strings.Contains(out.String(), "Exiting goterm") {
			t.Errorf("out = %q, want the goodbye line", out.String())
		}
	})
}

// The history store is the single writer of the history file: readline must
// never be handed the file itself, or every accepted line would be recorded
// twice and readline's rewrite could truncate the append-only file.
func TestReadlineConfig_StoreOwnsHistoryFile(t *testing.T) {
	r, _, _ := newTestREPL(&testutil.MockDispatcher{}, &testutil.MockHistoryStore{})

	cfg := r.readlineConfig()
	if cfg.HistoryFile != "" {
		t.Errorf("readlineConfig().HistoryFile = %q, want empty", cfg.HistoryFile)
	}
}

type recordingSaver struct {
	saved []string
	err   error
}

func (s *recordingSaver) SaveHistory(content string) error {
	s.saved = append(s.saved, content)
	return s.err
}

func TestPrefillHistory(t *testing.T) {
	t.Run("seeds recall from the store", func(t *testing.T) {
		store := &testutil.MockHistoryStore{}
		store.Append("ls")
		store.Append("cd /tmp")
		r, _, _ := newTestREPL(&testutil.MockDispatcher{}, store)

		saver := &recordingSaver{}
		r.prefillHistory(saver)

		want := []string{"ls", "cd /tmp"}
		if len(saver.saved) != len(want) || saver.saved[0] != want[0] || saver.saved[1] != want[1] {
			t.Errorf("prefillHistory() saved %v, want %v", saver.saved, want)
		}
	})

	t.Run("a failing store is a warning, not a crash", func(t *testing.T) {
		store := &testutil.MockHistoryStore{
			LoadFunc: func() ([]history.Entry, error) { return nil, errors.New("disk gone") },
		}
		r, _, errOut := newTestREPL(&testutil.MockDispatcher{}, store)

		r.prefillHistory(&recordingSaver{})

		if !strings.Contains(errOut.String(), "could not load history") {
			t.Errorf("errOut = %q, want a load warning", errOut.String())
		}
	})
}
