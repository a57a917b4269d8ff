package builtins

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goterm/goterm/internal/core/domain/command"
	"github.com/goterm/goterm/internal/core/ports"
	"github.com/goterm/goterm/internal/core/testutil"
)

func testRegistry(t *testing.T) ports.BuiltinRegistry {
	t.Helper()
	return NewRegistry(&testutil.MockHistoryStore{}, &testutil.MockSystemInspector{})
}

func run(t *testing.T, r ports.BuiltinRegistry, dir, name string, args ...string) (command.Result, error) {
	t.Helper()
	h, ok := r.Lookup(name)
	if !ok {
		t.Fatalf("builtin %q not registered", name)
	}
	return h(context.Background(), command.ExecEnv{Dir: dir}, args)
}

func TestLs(t *testing.T) {
	r := testRegistry(t)
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("lists sorted entries with directory markers", func(t *testing.T) {
		res, err := run(t, r, dir, "ls")
		if err != nil {
			t.Fatalf("ls error: %v", err)
		}
		want := "a.txt\nb.txt\nsub/"
		if res.Output != want {
			t.Errorf("ls = %q, want %q", res.Output, want)
		}
	})

	t.Run("missing path is NotFound", func(t *testing.T) {
		_, err := run(t, r, dir, "ls", "nope")
		if !errors.Is(err, command.ErrNotFound) {
			t.Errorf("ls error = %v, want ErrNotFound", err)
		}
	})
}

func TestCdPwd(t *testing.T) {
	r := testRegistry(t)
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}

	t.Run("cd to a relative path resolves absolutely", func(t *testing.T) {
		res, err := run(t, r, dir, "cd", "sub")
		if err != nil {
			t.Fatalf("cd error: %v", err)
		}
		if res.Dir != sub {
			t.Errorf("cd Dir = %q, want %q", res.Dir, sub)
		}
		if !filepath.IsAbs(res.Dir) {
			t.Errorf("cd Dir = %q, want an absolute path", res.Dir)
		}
	})

	t.Run("cd then pwd round-trips", func(t *testing.T) {
		res, err := run(t, r, dir, "cd", "sub")
		if err != nil {
			t.Fatalf("cd error: %v", err)
		}
		pwdRes, err := run(t, r, res.Dir, "pwd")
		if err != nil {
			t.Fatalf("pwd error: %v", err)
		}
		if pwdRes.Output != sub {
			t.Errorf("pwd = %q, want %q", pwdRes.Output, sub)
		}
	})

	t.Run("cd into a file is InvalidArgument", func(t *testing.T) {
		file := filepath.Join(dir, "plain.txt")
		if err := os.WriteFile(file, nil, 0644); err != nil {
			t.Fatal(err)
		}
		_, err := run(t, r, dir, "cd", "plain.txt")
		if !errors.Is(err, command.ErrInvalidArgument) {
			t.Errorf("cd error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("cd to a missing directory is NotFound", func(t *testing.T) {
		_, err := run(t, r, dir, "cd", "missing")
		if !errors.Is(err, command.ErrNotFound) {
			t.Errorf("cd error = %v, want ErrNotFound", err)
		}
	})
}

func TestMkdirRmRmdir(t *testing.T) {
	r := testRegistry(t)

	t.Run("mkdir then ls lists it, rmdir removes it", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := run(t, r, dir, "mkdir", "x"); err != nil {
			t.Fatalf("mkdir error: %v", err)
		}
		res, _ := run(t, r, dir, "ls")
		if !strings.Contains(res.Output, "x/") {
			t.Errorf("ls after mkdir = %q, want x/ listed", res.Output)
		}

		if _, err := run(t, r, dir, "rmdir", "x"); err != nil {
			t.Fatalf("rmdir error: %v", err)
		}
		res, _ = run(t, r, dir, "ls")
		if strings.Contains(res.Output, "x") {
			t.Errorf("ls after rmdir = %q, want x gone", res.Output)
		}
	})

	t.Run("mkdir on an existing directory fails", func(t *testing.T) {
		dir := t.TempDir()
		if _, err := run(t, r, dir, "mkdir", "x"); err != nil {
			t.Fatal(err)
		}
		_, err := run(t, r, dir, "mkdir", "x")
		if !errors.Is(err, command.ErrInvalidArgument) {
			t.Errorf("mkdir error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("rm removes a file but not a directory", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "f.txt"), nil, 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Mkdir(filepath.Join(dir, "d"), 0755); err != nil {
			t.Fatal(err)
		}

		if _, err := run(t, r, dir, "rm", "f.txt"); err != nil {
			t.Fatalf("rm error: %v", err)
		}
		res, _ := run(t, r, dir, "ls")
		if strings.Contains(res.Output, "f.txt") {
			t.Errorf("ls after rm = %q, want f.txt gone", res.Output)
		}

		_, err := run(t, r, dir, "rm", "d")
		if !errors.Is(err, command.ErrInvalidArgument) {
			t.Errorf("rm on a directory error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("rm on a missing file is NotFound", func(t *testing.T) {
		_, err := run(t, r, t.TempDir(), "rm", "ghost")
		if !errors.Is(err, command.ErrNotFound) {
			t.Errorf("rm error = %v, want ErrNotFound", err)
		}
	})

	t.Run("missing operands are InvalidArgument", func(t *testing.T) {
		for _, name := range []string{"mkdir", "rm", "rmdir", "cat", "touch", "mv", "cp"} {
			_, err := run(t, r, t.TempDir(), name)
			if !errors.Is(err, command.ErrInvalidArgument) {
				t.Errorf("%s with no args error = %v, want ErrInvalidArgument", name, err)
			}
		}
	})
}

func TestTouchCat(t *testing.T) {
	r := testRegistry(t)
	dir := t.TempDir()

	if _, err := run(t, r, dir, "touch", "new.txt"); err != nil {
		t.Fatalf("touch error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "new.txt")); err != nil {
		t.Fatalf("touch did not create the file: %v", err)
	}

	// touch on an existing file must not truncate it
	if err := os.WriteFile(filepath.Join(dir, "keep.txt"), []byte("contents\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, r, dir, "touch", "keep.txt"); err != nil {
		t.Fatalf("touch error: %v", err)
	}
	res, err := run(t, r, dir, "cat", "keep.txt")
	if err != nil {
		t.Fatalf("cat error: %v", err)
	}
	if res.Output != "contents" {
		t.Errorf("cat = %q, want %q", res.Output, "contents")
	}

	t.Run("cat a missing file is NotFound", func(t *testing.T) {
		_, err := run(t, r, dir, "cat", "ghost.txt")
		if !errors.Is(err, command.ErrNotFound) {
			t.Errorf("cat error = %v, want ErrNotFound", err)
		}
	})
}

func TestMvCp(t *testing.T) {
	r := testRegistry(t)

	t.Run("mv renames a file", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := run(t, r, dir, "mv", "a.txt", "b.txt"); err != nil {
			t.Fatalf("mv error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "a.txt")); !os.IsNotExist(err) {
			t.Error("mv left the source behind")
		}
		if _, err := os.Stat(filepath.Join(dir, "b.txt")); err != nil {
			t.Errorf("mv did not create the destination: %v", err)
		}
	})

	t.Run("mv into a directory keeps the base name", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Mkdir(filepath.Join(dir, "into"), 0755); err != nil {
			t.Fatal(err)
		}
		if _, err := run(t, r, dir, "mv", "a.txt", "into"); err != nil {
			t.Fatalf("mv error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(dir, "into", "a.txt")); err != nil {
			t.Errorf("mv into directory failed: %v", err)
		}
	})

	t.Run("multiple sources need a directory target", func(t *testing.T) {
		dir := t.TempDir()
		for _, f := range []string{"a", "b"} {
			if err := os.WriteFile(filepath.Join(dir, f), nil, 0644); err != nil {
				t.Fatal(err)
			}
		}
		_, err := run(t, r, dir, "mv", "a", "b", "c")
		if !errors.Is(err, command.ErrInvalidArgument) {
			t.Errorf("mv error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("cp copies file contents and leaves the source", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "src.txt"), []byte("payload"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := run(t, r, dir, "cp", "src.txt", "dst.txt"); err != nil {
			t.Fatalf("cp error: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "dst.txt"))
		if err != nil || string(data) != "payload" {
			t.Errorf("cp destination = %q, %v; want payload", data, err)
		}
		if _, err := os.Stat(filepath.Join(dir, "src.txt")); err != nil {
			t.Error("cp removed the source")
		}
	})

	t.Run("cp copies directories recursively", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "tree", "deep"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "tree", "deep", "leaf.txt"), []byte("leaf"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := run(t, r, dir, "cp", "tree", "copy"); err != nil {
			t.Fatalf("cp error: %v", err)
		}
		data, err := os.ReadFile(filepath.Join(dir, "copy", "deep", "leaf.txt"))
		if err != nil || string(data) != "leaf" {
			t.Errorf("recursive cp = %q, %v; want leaf", data, err)
		}
	})
}
