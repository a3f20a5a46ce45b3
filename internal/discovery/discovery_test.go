package discovery

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/indaco/pnpmsync/internal/core"
)

func TestService_FindNearest(t *testing.T) {
	tests := []struct {
		name     string
		files    []string
		startDir string
		want     string
	}{
		{
			name:     "manifest in start dir",
			files:    []string{"/repo/package.json"},
			startDir: "/repo",
			want:     "/repo/package.json",
		},
		{
			name:     "manifest in parent",
			files:    []string{"/repo/package.json"},
			startDir: "/repo/src/components",
			want:     "/repo/package.json",
		},
		{
			name:     "nearest wins over outer",
			files:    []string{"/repo/package.json", "/repo/packages/web/package.json"},
			startDir: "/repo/packages/web/src",
			want:     "/repo/packages/web/package.json",
		},
		{
			name:     "manifest at filesystem root",
			files:    []string{"/package.json"},
			startDir: "/a/b",
			want:     "/package.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := core.NewMockFileSystem()
			for _, f := range tt.files {
				fs.SetFile(f, []byte("{}"))
			}

			got, err := NewService(fs).FindNearest(context.Background(), tt.startDir, "package.json")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != filepath.Clean(tt.want) {
				t.Errorf("FindNearest() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestService_FindNearest_NotFound(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/elsewhere/package.json", []byte("{}"))

	_, err := NewService(fs).FindNearest(context.Background(), "/repo/src", "package.json")
	if !errors.Is(err, core.ErrManifestNotFound) {
		t.Fatalf("expected ErrManifestNotFound, got %v", err)
	}
}

func TestService_FindNearest_ContextCancellation(t *testing.T) {
	fs := core.NewMockFileSystem()
	fs.SetFile("/repo/package.json", []byte("{}"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(fs).FindNearest(ctx, "/repo", "package.json")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestService_FindNearest_OSFileSystem(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	// A directory named package.json must not be taken for the manifest.
	if err := os.Mkdir(filepath.Join(nested, "package.json"), 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, "package.json")
	if err := os.WriteFile(want, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewService(core.NewOSFileSystem()).FindNearest(context.Background(), nested, "package.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != want {
		t.Errorf("FindNearest() = %q, want %q", got, want)
	}
}
