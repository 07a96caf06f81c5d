// Package fileutil provides file permission constants and atomic file writes.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/pinglow/apisidebar/oaserrors"
)

// ReadableByAll is the file permission mode for generated files intended
// to be read by the docs site build and other users.
const ReadableByAll os.FileMode = 0o644

// DirReadableByAll is the permission mode for directories created on the
// way to an output file.
const DirReadableByAll os.FileMode = 0o755

// WriteFileAtomic writes data to path by writing a temp file in the same
// directory and renaming it over path. Parent directories are created as
// needed. On failure the previous content of path, if any, is unchanged.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirReadableByAll); err != nil {
		return &oaserrors.IOError{Op: "mkdir", Path: dir, Cause: err}
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &oaserrors.IOError{Op: "write", Path: path, Message: "creating temp file", Cause: err}
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return &oaserrors.IOError{Op: "write", Path: path, Message: "writing temp file", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &oaserrors.IOError{Op: "write", Path: path, Message: "closing temp file", Cause: err}
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return &oaserrors.IOError{Op: "write", Path: path, Message: "setting permissions", Cause: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &oaserrors.IOError{Op: "rename", Path: path, Cause: err}
	}
	committed = true
	return nil
}
