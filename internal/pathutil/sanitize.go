package pathutil

import (
	"os"
	"path/filepath"

	"github.com/pinglow/apisidebar/oaserrors"
)

// maxSymlinkHops bounds how many links SanitizeOutputPath follows.
const maxSymlinkHops = 40

// SanitizeOutputPath validates and cleans an output file path.
// It resolves ".." components via filepath.Clean + filepath.Abs and
// follows symlinks to their final target, so the link itself is left in
// place. A dangling link resolves to the file it names. Paths that
// resolve to directories are rejected.
// New files in existing or missing directories are accepted.
// Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", &oaserrors.IOError{Op: "stat", Path: path, Message: "cannot resolve absolute path", Cause: err}
	}

	for hops := 0; ; hops++ {
		info, err := os.Lstat(abs)
		switch {
		case err == nil:
			if info.Mode()&os.ModeSymlink != 0 {
				if hops == maxSymlinkHops {
					return "", &oaserrors.IOError{Op: "stat", Path: path, Message: "too many levels of symbolic links"}
				}
				target, err := os.Readlink(abs)
				if err != nil {
					return "", &oaserrors.IOError{Op: "stat", Path: abs, Message: "cannot read symlink", Cause: err}
				}
				if !filepath.IsAbs(target) {
					target = filepath.Join(filepath.Dir(abs), target)
				}
				abs = filepath.Clean(target)
				continue
			}
			if info.IsDir() {
				return "", &oaserrors.IOError{Op: "stat", Path: abs, Message: "output path is a directory"}
			}
		case os.IsNotExist(err):
			// New file.
		default:
			return "", &oaserrors.IOError{Op: "stat", Path: abs, Message: "cannot stat path", Cause: err}
		}
		return abs, nil
	}
}
