package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/goterm/goterm/internal/core/ports"
)

// maxCommandBytes bounds the request body; a command line is never large.
const maxCommandBytes = 64 << 10

// Server is the thin HTTP front end: it forwards one text command per
// request to the shared interpreter. The interpreter's working directory
// is shared state, so dispatch calls are serialized on a mutex; requests
// need mutual exclusion, nothing more.
type Server struct {
	dispatcher ports.Dispatcher
	logger     *zap.Logger

	mu  sync.Mutex
	srv *http.Server
}

// NewServer creates a new Server listening on addr once started. It
// panics if dispatcher is nil; a nil logger is replaced with a no-op one.
func NewServer(addr string, dispatcher ports.Dispatcher, logger *zap.Logger) *Server {
	if dispatcher == nil {
		panic("dispatcher cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		dispatcher: dispatcher,
		logger:     logger,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the route table. Exposed separately so tests can drive
// it through httptest without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/run", s.handleRun)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

// ListenAndServe blocks until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("web front end listening", zap.String("addr", s.srv.Addr))
		if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down web server: %w", err)
		}
		return <-errCh
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxCommandBytes))
	if err != nil {
		http.Error(w, "could not read request body", http.StatusBadRequest)
		return
	}
	line := strings.TrimSpace(string(body))
	if line == "" {
		http.Error(w, "empty command", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	out, execErr := s.dispatcher.Execute(r.Context(), line)
	dir := s.dispatcher.Dir()
	s.mu.Unlock()

	var exitErr *command.ExitError
	if errors.As(execErr, &exitErr) {
		// The web surface has no session to terminate.
		execErr = nil
		out = "exit is only available in the interactive shell"
	}

	s.logger.Info("command dispatched",
		zap.String("remote", r.RemoteAddr),
		zap.String("command", line),
		zap.String("dir", dir),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(execErr),
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	// Command-level failures are results, not transport errors: the
	// rendered message goes back with a 200 like the interactive loop
	// printing to the terminal.
	var b strings.Builder
	if out != "" {
		b.WriteString(out)
		b.WriteString("\n")
	}
	if execErr != nil {
		b.WriteString(execErr.Error())
		b.WriteString("\n")
	}
	io.WriteString(w, b.String())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	io.WriteString(w, "ok\n")
}
