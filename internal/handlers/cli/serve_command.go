package cli

import (
	"fmt"

	"github.com/goterm/goterm/internal/handlers/web"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const defaultServeAddr = ":8475"

// NewServeCommand creates the command that exposes the interpreter over
// HTTP instead of an interactive prompt.
func NewServeCommand(opts *options) *cobra.Command {
	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interpreter over HTTP",
		Long: `Serve the interpreter over HTTP.

POST a command line to /run to execute it; GET /healthz reports liveness.
Requests run one at a time against a single session, so directory changes
made by one request are visible to the next.`,
		Example: `  goterm serve
  goterm serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServeCmd(cmd, opts, addr)
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "address to listen on")

	return serveCmd
}

func runServeCmd(cmd *cobra.Command, opts *options, addr string) error {
	interp, err := buildInterpreter(opts)
	if err != nil {
		return err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer logger.Sync()

	server := web.NewServer(addr, interp.dispatcher, logger)
	return server.ListenAndServe(cmd.Context())
}
