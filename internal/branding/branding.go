// Package branding provides compile-time identity values for the CLI and the
// studio entry point.
//
// Values are read from the embedded branding.yaml, with hard defaults used
// when the file is missing or partially filled in.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	StudioURL   string `yaml:"studio_url"`
	Icon        string `yaml:"icon"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "studioutils",
			DisplayName: "Studio Utilities",
			Description: "Discovery and launch dashboard for content studio utilities",
			HomeDir:     ".studioutils",
			EnvPrefix:   "STUDIOUTILS",
			GoModule:    "github.com/studioutils/studioutils",
			StudioURL:   "http://localhost:3333",
			Icon:        "🛠️",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "studioutils").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name, also used as the
// studio tool title.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".studioutils").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "STUDIOUTILS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// StudioURL returns the default studio origin that launch targets are
// resolved against.
func StudioURL() string { load(); return defaults.StudioURL }

// Icon returns the display token for the dashboard entry point.
func Icon() string { load(); return defaults.Icon }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("STUDIO_URL") → "STUDIOUTILS_STUDIO_URL".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
