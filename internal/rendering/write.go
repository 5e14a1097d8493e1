package rendering

import (
	"os"
	"path/filepath"
)

// WriteFileAtomic writes content to a temp file next to path and renames it
// into place, so readers never observe a partial or empty file. The temp file
// is removed on every failure path.
func WriteFileAtomic(path string, content []byte) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	if err = tmp.Sync(); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	if err = tmp.Close(); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	if err = os.Chmod(tmpName, 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return nil
}
