package sidebar

import (
	"fmt"

	"github.com/pinglow/apisidebar/internal/fileutil"
	"github.com/pinglow/apisidebar/internal/pathutil"
)

// Write serializes the descriptor with Marshal and writes it to path,
// creating parent directories as needed. The file is replaced through a
// temp file in the same directory. A symlinked path is written through to
// its target. Directory targets are refused. Failures are
// *oaserrors.IOError values.
func (s *Sidebars) Write(path string) error {
	target, err := pathutil.SanitizeOutputPath(path)
	if err != nil {
		return fmt.Errorf("sidebar: %w", err)
	}

	data, err := s.Marshal()
	if err != nil {
		return fmt.Errorf("sidebar: encoding %s: %w", s.ID, err)
	}

	if err := fileutil.WriteFileAtomic(target, data, fileutil.ReadableByAll); err != nil {
		return fmt.Errorf("sidebar: %w", err)
	}
	return nil
}
