package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad(t *testing.T) {
	// Helper to create temp file
	createTempFile := func(content string) string {
		path := filepath.Join(t.TempDir(), ConfigFile)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name       string
		setup      func() string // Returns filename
		wantConfig *Config
		wantErr    error
	}{
		{
			name: "File does not exist",
			setup: func() string {
				return filepath.Join(t.TempDir(), "missing.yaml")
			},
			wantConfig: &Config{},
		},
		{
			name: "Valid file",
			setup: func() string {
				return createTempFile("editor: nvim\ngh_path: /opt/gh\npush: true\nopen: true\n")
			},
			wantConfig: &Config{Editor: "nvim", GhPath: "/opt/gh", Push: true, Open: true},
		},
		{
			name: "Empty file",
			setup: func() string {
				return createTempFile("")
			},
			wantConfig: &Config{},
		},
		{
			name: "Invalid YAML",
			setup: func() string {
				return createTempFile("push: [unterminated\n")
			},
			wantErr: ErrInvalidDataFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.setup())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error = %v", err)
			}
			if !reflect.DeepEqual(cfg, tt.wantConfig) {
				t.Errorf("Load() = %+v, want %+v", cfg, tt.wantConfig)
			}
		})
	}
}

func TestDefaultPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/custom.yaml")

	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/tmp/custom.yaml" {
		t.Errorf("DefaultPath() = %q", got)
	}
}

func TestResolveString(t *testing.T) {
	if got := ResolveString("cli", "cfg", "def"); got != "cli" {
		t.Errorf("got %q, want cli", got)
	}
	if got := ResolveString("", "cfg", "def"); got != "cfg" {
		t.Errorf("got %q, want cfg", got)
	}
	if got := ResolveString("", "", "def"); got != "def" {
		t.Errorf("got %q, want def", got)
	}
}
