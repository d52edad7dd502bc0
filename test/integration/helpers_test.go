//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir string // HOME, holds .studioutils/config.yaml
	WorkDir string // scratch directory for catalog files
}

// setupTestEnv points HOME at a temp directory so config reads and writes
// are sandboxed, and resets viper afterwards.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	t.Cleanup(viper.Reset)
	return env
}

// writeCatalog writes a catalog file with one tool per status and returns
// its path.
func writeCatalog(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "catalog.yaml")
	writeFile(t, path, `tools:
  - id: export-data
    name: Export Data
    description: Export your content in various formats
    icon: "📤"
    category: data
    status: available
    package: sanity-export-data
  - id: bulk-data-operations
    name: Bulk Data Operations
    description: Perform batch operations on multiple documents at once
    icon: "📊"
    category: data
    status: available
  - id: media-audit
    name: Media Audit
    description: Report assets without alt text
    icon: "🖼️"
    category: assets
    status: coming-soon
  - id: legacy-import
    name: Legacy Import
    description: Import documents from the previous dataset layout
    icon: "📥"
    category: content
    status: deprecated
`)
	return path
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
