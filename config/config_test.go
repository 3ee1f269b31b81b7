package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}
	if !slices.Contains(c.Versions, "0.8.0") {
		t.Errorf("default versions should include 0.8.0, got %v", c.Versions)
	}
	if c.Parser != "xml" {
		t.Errorf("Parser = %q, want xml", c.Parser)
	}
	if c.Format != "json" {
		t.Errorf("Format = %q, want json", c.Format)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "versions: [\"0.6.2\"]\nparser: html\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !slices.Equal(c.Versions, []string{"0.6.2"}) {
		t.Errorf("Versions = %v, want [0.6.2]", c.Versions)
	}
	if c.Parser != "html" {
		t.Errorf("Parser = %q, want html", c.Parser)
	}
	if c.Workers != 4 {
		t.Errorf("Workers should keep its default, got %d", c.Workers)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("versions: [unclosed\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("workers: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(VersionsEnv, " 0.8.1, ,0.8.2 ")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !slices.Equal(c.Versions, []string{"0.8.1", "0.8.2"}) {
		t.Errorf("Versions = %v", c.Versions)
	}
	if c.Workers != 2 {
		t.Errorf("Workers = %d, want 2", c.Workers)
	}
}

func TestValidate(t *testing.T) {
	c := &Config{Workers: 0}
	err := c.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"version", "parser", "workers"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{input: "", want: nil},
		{input: "0.8.0", want: []string{"0.8.0"}},
		{input: "0.7.3, 0.8.0,,", want: []string{"0.7.3", "0.8.0"}},
	}
	for _, tt := range tests {
		if got := SplitList(tt.input); !slices.Equal(got, tt.want) {
			t.Errorf("SplitList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFindExplicit(t *testing.T) {
	if got := Find("/etc/custom.yaml"); got != "/etc/custom.yaml" {
		t.Errorf("Find should return the explicit path, got %q", got)
	}
}
