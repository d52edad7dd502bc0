package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()

	if got := Get(KeyBasePath); got != DefaultBasePath {
		t.Errorf("Get(%q) = %q, want %q", KeyBasePath, got, DefaultBasePath)
	}
	if got := Get(KeyListenAddr); got != DefaultListenAddr {
		t.Errorf("Get(%q) = %q, want %q", KeyListenAddr, got, DefaultListenAddr)
	}
	if got := Get(KeyStudioURL); got == "" {
		t.Errorf("Get(%q) is empty, want branding default", KeyStudioURL)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STUDIOUTILS_BASE_PATH", "/structure")
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()

	if got := Get(KeyBasePath); got != "/structure" {
		t.Errorf("Get(%q) = %q, want %q", KeyBasePath, got, "/structure")
	}
}

func TestSetWritesFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	if err := Set(KeyStudioURL, "https://studio.example.com"); err != nil {
		t.Fatalf("Set() error: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".studioutils", "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("config file is empty")
	}
	if got := Get(KeyStudioURL); got != "https://studio.example.com" {
		t.Errorf("Get(%q) = %q after Set", KeyStudioURL, got)
	}
}

func TestSetWritesOnlyFileKeys(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("STUDIOUTILS_STUDIO_URL", "https://from-env.example.com")
	viper.Reset()
	t.Cleanup(viper.Reset)

	Load()
	if err := Set(KeyCatalogFile, "/tmp/catalog.yaml"); err != nil {
		t.Fatalf("Set(%q) error: %v", KeyCatalogFile, err)
	}
	if err := Set(KeyBasePath, "/structure"); err != nil {
		t.Fatalf("Set(%q) error: %v", KeyBasePath, err)
	}

	data, err := os.ReadFile(filepath.Join(home, ".studioutils", "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	content := string(data)
	for _, want := range []string{"catalog_file: /tmp/catalog.yaml", "base_path: /structure"} {
		if !strings.Contains(content, want) {
			t.Errorf("config file missing %q:\n%s", want, content)
		}
	}
	for _, leaked := range []string{KeyStudioURL, KeyListenAddr, KeyLogLevel, KeyLogFormat} {
		if strings.Contains(content, leaked) {
			t.Errorf("config file contains %q, which was never set:\n%s", leaked, content)
		}
	}
	if got := Get(KeyStudioURL); got != "https://from-env.example.com" {
		t.Errorf("Get(%q) = %q, want env value", KeyStudioURL, got)
	}
}

func TestIsKnown(t *testing.T) {
	if !IsKnown(KeyCatalogFile) {
		t.Errorf("IsKnown(%q) = false, want true", KeyCatalogFile)
	}
	if IsKnown("catalog_repo") {
		t.Error("IsKnown(catalog_repo) = true, want false")
	}
}
