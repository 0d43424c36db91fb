package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWriteFile_New(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dependencies.cmake")
	if err := WriteFile(path, []byte("set(a-version \"1\")\n"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "set(a-version \"1\")\n" {
		t.Errorf("content = %q", data)
	}
}

func TestWriteFile_OverwritesAndKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dependencies.cmake")
	if err := os.WriteFile(path, []byte("old content that is longer\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte("new\n"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new\n" {
		t.Errorf("content = %q, want %q", data, "new\n")
	}
	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("permissions = %o, want %o", perm, 0600)
		}
	}
}

func TestWriteFile_NoTempFilesLeft(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.cmake")
	for i := 0; i < 3; i++ {
		if err := WriteFile(path, []byte("x\n"), 0644); err != nil {
			t.Fatalf("WriteFile error: %v", err)
		}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory entries = %v, want only out.cmake", names)
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.cmake")
	if err := WriteFile(path, []byte("x"), 0644); err == nil {
		t.Fatal("expected error for missing parent directory, got nil")
	}
}

func TestWriteFile_TargetIsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFile(dir, []byte("x"), 0644); err == nil {
		t.Fatal("expected error when target is a directory, got nil")
	}
}

func TestWriteFile_ThroughSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on Windows")
	}
	dir := t.TempDir()
	target := filepath.Join(dir, "real.cmake")
	if err := os.WriteFile(target, []byte("old\n"), 0644); err != nil {
		t.Fatal(err)
	}
	link := filepath.Join(dir, "dependencies.cmake")
	if err := os.Symlink("real.cmake", link); err != nil {
		t.Fatal(err)
	}

	if err := WriteFile(link, []byte("new\n"), 0644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	info, err := os.Lstat(link)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&os.ModeSymlink == 0 {
		t.Errorf("%s was replaced by a regular file, want the symlink kept", link)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "new\n" {
		t.Errorf("target content = %q, want %q", data, "new\n")
	}
}

func TestWriteFile_DanglingSymlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges on Windows")
	}
	link := filepath.Join(t.TempDir(), "dependencies.cmake")
	if err := os.Symlink("missing.cmake", link); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(link, []byte("new\n"), 0644); err == nil {
		t.Error("expected error for a dangling symlink, got nil")
	}
}
