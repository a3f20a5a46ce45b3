package core

import (
	"context"
	"errors"
	"io/fs"
	"testing"
)

func TestMockFileSystem_ReadWrite(t *testing.T) {
	ctx := context.Background()
	mfs := NewMockFileSystem()

	if _, err := mfs.ReadFile(ctx, "/missing.json"); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	if err := mfs.WriteFile(ctx, "/a/../pkg.json", []byte("{}"), 0o640); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := mfs.ReadFile(ctx, "/pkg.json")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "{}" {
		t.Errorf("got %q, want %q", data, "{}")
	}

	info, err := mfs.Stat(ctx, "/pkg.json")
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Errorf("mode = %v, want 0640", info.Mode().Perm())
	}
	if info.Name() != "pkg.json" {
		t.Errorf("name = %q, want pkg.json", info.Name())
	}

	if got := mfs.Writes(); len(got) != 1 || got[0] != "/pkg.json" {
		t.Errorf("Writes() = %v", got)
	}
}

func TestMockFileSystem_WriteErr(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.WriteErr = fs.ErrPermission

	err := mfs.WriteFile(context.Background(), "/x", []byte("y"), PermOwnerRW)
	if !errors.Is(err, fs.ErrPermission) {
		t.Fatalf("expected permission error, got %v", err)
	}
	if _, ok := mfs.GetFile("/x"); ok {
		t.Error("failed write should not store the file")
	}
}

func TestMockFileSystem_ContextCancellation(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.SetFile("/x", []byte("1"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := mfs.ReadFile(ctx, "/x"); !errors.Is(err, context.Canceled) {
		t.Errorf("ReadFile: expected context.Canceled, got %v", err)
	}
	if _, err := mfs.Stat(ctx, "/x"); !errors.Is(err, context.Canceled) {
		t.Errorf("Stat: expected context.Canceled, got %v", err)
	}
}

func TestMockCommandRunner(t *testing.T) {
	ctx := context.Background()
	runner := NewMockCommandRunner()
	runner.Stub("pnpm --version", "8.5.0\n", nil)

	out, err := runner.Run(ctx, "pnpm", "--version")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(out) != "8.5.0\n" {
		t.Errorf("got %q", out)
	}

	if _, err := runner.Run(ctx, "node", "--version"); err == nil {
		t.Error("expected error for unstubbed command")
	}

	calls := runner.Calls()
	if len(calls) != 2 || calls[0] != "pnpm --version" || calls[1] != "node --version" {
		t.Errorf("Calls() = %v", calls)
	}
}
