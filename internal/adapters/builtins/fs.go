package builtins

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/goterm/goterm/internal/core/domain/command"
)

func lsHandler(_ context.Context, env command.ExecEnv, args []string) (command.Result, error) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}
	path := resolvePath(env.Dir, target)

	entries, err := os.ReadDir(path)
	if err != nil {
		return command.Result{}, classify(fmt.Sprintf("cannot access %q", target), err)
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			name += "/"
		}
		lines = append(lines, name)
	}
	return command.Result{Output: strings.Join(lines, "\n")}, nil
}

func cdHandler(_ context.Context, env command.ExecEnv, args []string) (command.Result, error) {
	target := homeDir()
	if len(args) > 0 {
		target = args[0]
	}
	path := resolvePath(env.Dir, target)

	info, err := os.Stat(path)
	if err != nil {
		return command.Result{}, classify(fmt.Sprintf("no such directory: %q", target), err)
	}
	if !info.IsDir() {
		return command.Result{}, fmt.Errorf("not a directory: %q: %w", target, command.ErrInvalidArgument)
	}
	return command.Result{Dir: path}, nil
}

func pwdHandler(_ context.Context, env command.ExecEnv, _ []string) (command.Result, error) {
	return command.Result{Output: env.Dir}, nil
}

func mkdirHandler(_ context.Context, env command.ExecEnv, args []string) (command.Result, error) {
	if len(args) == 0 {
		return command.Result{}, missingOperand()
	}
	for _, d := range args {
		path := resolvePath(env.Dir, d)
		if _, err := os.Stat(path); err == nil {
			return command.Result{}, fmt.Errorf("cannot create directory %q: file exists: %w", d, command.ErrInvalidArgument)
		}
		if err := os.MkdirAll(path, 0755); err != nil {
			return command.Result{}, classify(fmt.Sprintf("cannot create directory %q", d), err)
		}
	}
	return command.Result{}, nil
}

func rmHandler(_ context.Context, env command.ExecEnv, args []string) (command.Result, error) {
	if len(args) == 0 {
		return command.Result{}, missingOperand()
	}
	for _, target := range args {
		path := resolvePath(env.Dir, target)
		info, err := os.Lstat(path)
		if err != nil {
			return command.Result{}, classify(fmt.Sprintf("cannot remove %q", target), err)
		}
		// Directories need rmdir; there is no recursive mode.
		if info.IsDir() {
			return command.Result{}, fmt.Errorf("cannot remove %q: is a directory: %w", target, command.ErrInvalidArgument)
		}
		if err := os.Remove(path); err != nil {
			return command.Result{}, classify(fmt.Sprintf("cannot remove %q", target), err)
		}
	}
	return command.Result{}, nil
}

func rmdirHandler(_ context.Context, env command.ExecEnv, args []string) (command.Result, error) {
	if len(args) == 0 {
		return command.Result{}, missingOperand()
	}
	for _, target := range args {
		path := resolvePath(env.Dir, target)
		info, err := os.Stat(path)
		if err != nil {
			return command.Result{}, classify(fmt.Sprintf("cannot remove %q", target), err)
		}
		if !info.IsDir() {
			return command.Result{}, fmt.Errorf("not a directory: %q: %w", target, command.ErrInvalidArgument)
		}
		if err := os.Remove(path); err != nil {
			return command.Result{}, classify(fmt.Sprintf("cannot remove %q", target), err)
		}
	}
	return command.Result{}, nil
}

func catHandler(_ context.Context, env command.ExecEnv, args []string) (command.Result, error) {
	if len(args) == 0 {
		return command.Result{}, missingOperand()
	}
	parts := make([]string, 0, len(args))
	for _, f := range args {
		path := resolvePath(env.Dir, f)
		data, err := os.ReadFile(path)
		if err != nil {
			return command.Result{}, classify(fmt.Sprintf("cannot read %q", f), err)
		}
		parts = append(parts, strings.TrimRight(string(data), "\n"))
	}
	return command.Result{Output: strings.Join(parts, "\n")}, nil
}

func touchHandler(_ context.Context, env command.ExecEnv, args []string) (command.Result, error) {
	if len(args) == 0 {
		return command.Result{}, missingOperand()
	}
	for _, f := range args {
		path := resolvePath(env.Dir, f)
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return command.Result{}, classify(fmt.Sprintf("cannot touch %q", f), err)
		}
		file.Close()
	}
	return command.Result{}, nil
}

func mvHandler(_ context.Context, env command.ExecEnv, args []string) (command.Result, error) {
	if len(args) < 2 {
		return command.Result{}, missingOperand()
	}
	srcs, dst := args[:len(args)-1], resolvePath(env.Dir, args[len(args)-1])

	dstInfo, err := os.Stat(dst)
	dstIsDir := err == nil && dstInfo.IsDir()
	if len(srcs) > 1 && !dstIsDir {
		return command.Result{}, fmt.Errorf("target %q is not a directory: %w", args[len(args)-1], command.ErrInvalidArgument)
	}

	for _, s := range srcs {
		srcPath := resolvePath(env.Dir, s)
		final := dst
		if dstIsDir {
			final = filepath.Join(dst, filepath.Base(srcPath))
		}
		if err := os.Rename(srcPath, final); err != nil {
			return command.Result{}, classify(fmt.Sprintf("cannot move %q", s), err)
		}
	}
	return command.Result{}, nil
}

func cpHandler(_ context.Context, env command.ExecEnv, args []string) (command.Result, error) {
	if len(args) < 2 {
		return command.Result{}, missingOperand()
	}
	srcs, dst := args[:len(args)-1], resolvePath(env.Dir, args[len(args)-1])

	dstInfo, err := os.Stat(dst)
	dstIsDir := err == nil && dstInfo.IsDir()
	if len(srcs) > 1 && !dstIsDir {
		return command.Result{}, fmt.Errorf("target %q is not a directory: %w", args[len(args)-1], command.ErrInvalidArgument)
	}

	for _, s := range srcs {
		srcPath := resolvePath(env.Dir, s)
		info, err := os.Stat(srcPath)
		if err != nil {
			return command.Result{}, classify(fmt.Sprintf("cannot copy %q", s), err)
		}

		final := dst
		if dstIsDir {
			final = filepath.Join(dst, filepath.Base(srcPath))
		}

		if info.IsDir() {
			err = copyDir(srcPath, final)
		} else {
			err = copyFile(srcPath, final, info.Mode())
		}
		if err != nil {
			return command.Result{}, classify(fmt.Sprintf("cannot copy %q", s), err)
		}
	}
	return command.Result{}, nil
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func copyDir(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dst, info.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	for _, e := range entries {
		srcEntry := filepath.Join(src, e.Name())
		dstEntry := filepath.Join(dst, e.Name())
		if e.IsDir() {
			err = copyDir(srcEntry, dstEntry)
		} else {
			entryInfo, infoErr := e.Info()
			if infoErr != nil {
				return infoErr
			}
			err = copyFile(srcEntry, dstEntry, entryInfo.Mode())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
