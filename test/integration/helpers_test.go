//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to an isolated project tree.
type testEnv struct {
	ProjectDir string // workspace root holding MODULE.bazel
	CMakeDir   string // ProjectDir/cmake, where the generated file goes
}

// setupTestEnv creates a project with an empty cmake/ directory.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	env := &testEnv{
		ProjectDir: root,
		CMakeDir:   filepath.Join(root, "cmake"),
	}
	if err := os.MkdirAll(env.CMakeDir, 0755); err != nil {
		t.Fatalf("creating cmake dir: %v", err)
	}
	return env
}

// ManifestPath is the project's MODULE.bazel.
func (e *testEnv) ManifestPath() string {
	return filepath.Join(e.ProjectDir, "MODULE.bazel")
}

// OutputPath is the generated dependencies file.
func (e *testEnv) OutputPath() string {
	return filepath.Join(e.CMakeDir, "dependencies.cmake")
}

// writeModule replaces the project's MODULE.bazel.
func (e *testEnv) writeModule(t *testing.T, content string) {
	t.Helper()
	writeFile(t, e.ManifestPath(), content)
}

// writeFile creates a file at the given path with the given content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// readFile returns the contents of path, failing the test if it is unreadable.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}

// assertDirEntries fails unless dir holds exactly the names in want, sorted.
func assertDirEntries(t *testing.T, dir string, want ...string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.Name())
	}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("entries of %s = %v, want %v", dir, got, want)
	}
}
