package branding

import "testing"

func TestEmbeddedValues(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"cli name", CLIName(), "studioutils"},
		{"display name", DisplayName(), "Studio Utilities"},
		{"home dir", HomeDir(), ".studioutils"},
		{"env prefix", EnvPrefix(), "STUDIOUTILS"},
		{"icon", Icon(), "🛠️"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("%s = %q, want %q", tt.name, tt.got, tt.want)
			}
		})
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("studio_url"); got != "STUDIOUTILS_STUDIO_URL" {
		t.Errorf("EnvVar(studio_url) = %q, want %q", got, "STUDIOUTILS_STUDIO_URL")
	}
}
