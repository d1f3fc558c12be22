package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(KeyDir, ".", "")
	flags.Bool(KeyVerbose, false, "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DWG_DIR", "")
	t.Setenv("DWG_VERBOSE", "")

	v := New()
	if err := BindFlags(v, newFlags()); err != nil {
		t.Fatal(err)
	}
	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want, _ := filepath.Abs(".")
	if s.Dir != want {
		t.Errorf("Dir = %q, want %q", s.Dir, want)
	}
	if s.Verbose {
		t.Error("Verbose should default to false")
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DWG_DIR", dir)
	t.Setenv("DWG_VERBOSE", "true")

	v := New()
	if err := BindFlags(v, newFlags()); err != nil {
		t.Fatal(err)
	}
	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Dir != dir {
		t.Errorf("Dir = %q, want %q", s.Dir, dir)
	}
	if !s.Verbose {
		t.Error("Verbose should be true from DWG_VERBOSE")
	}
}

func TestFlagOverridesEnv(t *testing.T) {
	envDir := t.TempDir()
	flagDir := t.TempDir()
	t.Setenv("DWG_DIR", envDir)

	flags := newFlags()
	if err := flags.Parse([]string{"--dir", flagDir}); err != nil {
		t.Fatal(err)
	}

	v := New()
	if err := BindFlags(v, flags); err != nil {
		t.Fatal(err)
	}
	s, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Dir != flagDir {
		t.Errorf("Dir = %q, want flag value %q", s.Dir, flagDir)
	}
}
