package discovery

import (
	"context"
	"path/filepath"

	"github.com/indaco/pnpmsync/internal/core"
)

// Service provides upward manifest discovery over a core.FileSystem.
type Service struct {
	fs core.FileSystem
}

// NewService creates a new discovery Service.
func NewService(fs core.FileSystem) *Service {
	return &Service{fs: fs}
}

// FindNearest returns the path of the closest file called name in startDir
// or one of its ancestors. A directory with that name does not count, and
// directories that cannot be inspected are skipped.
//
// Returns a core.CodeManifestNotFound error when the root is reached
// without a match.
func (s *Service) FindNearest(ctx context.Context, startDir, name string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", core.WrapError(core.CodeManifestNotFound, err, "invalid start directory %q", startDir)
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		candidate := filepath.Join(dir, name)
		if info, err := s.fs.Stat(ctx, candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", core.NewError(core.CodeManifestNotFound, "no %s found in %s or any parent directory", name, startDir)
		}
		dir = parent
	}
}
