package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// WriteFile replaces the file at path with data. The content is written to a
// temporary file in the same directory and renamed into place, so readers see
// either the old or the new content. An existing file keeps its permissions;
// a new file gets perm. The parent directory must already exist. When path is
// a symlink, the file it points to is replaced and the link is kept.
func WriteFile(path string, data []byte, perm os.FileMode) error {
	path, err := resolveLink(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("writing %s: is a directory", path)
		}
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", path, err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { os.Remove(tmpPath) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}
	if err := Chmod(tmpPath, perm); err != nil {
		cleanup()
		return fmt.Errorf("setting permissions on %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		cleanup()
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// resolveLink returns the file a symlink at path points to, or path itself
// when it is not a symlink. A dangling link is an error.
func resolveLink(path string) (string, error) {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return path, nil
	}
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return "", fmt.Errorf("resolving symlink %s: %w", path, err)
	}
	return target, nil
}

// Chmod sets permission bits. Windows has no Unix-style bits, so it is a
// no-op there.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
