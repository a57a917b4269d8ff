package builtins

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/goterm/goterm/internal/core/domain/command"
)

// resolvePath expands a leading ~, anchors relative paths at dir, and
// cleans the result. dir is trusted to be absolute.
func resolvePath(dir, p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if usr, err := user.Current(); err == nil {
			p = filepath.Join(usr.HomeDir, strings.TrimPrefix(p[1:], "/"))
		}
	}
	if !filepath.IsAbs(p) {
		p = filepath.Join(dir, p)
	}
	return filepath.Clean(p)
}

// homeDir falls back to the root directory when the current user cannot be
// determined, so `cd` with no argument always has a target.
func homeDir() string {
	usr, err := user.Current()
	if err != nil || usr.HomeDir == "" {
		return string(filepath.Separator)
	}
	return usr.HomeDir
}

// classify maps an os-level error onto the failure taxonomy, keeping op as
// the human-readable prefix.
func classify(op string, err error) error {
	switch {
	case os.IsNotExist(err):
		return fmt.Errorf("%s: %w", op, command.ErrNotFound)
	case os.IsPermission(err):
		return fmt.Errorf("%s: %w", op, command.ErrPermissionDenied)
	default:
		return fmt.Errorf("%s: %v", op, err)
	}
}

// missingOperand is the InvalidArgument raised by builtins called with too
// few arguments.
func missingOperand() error {
	return fmt.Errorf("missing operand: %w", command.ErrInvalidArgument)
}
