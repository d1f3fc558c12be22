package branding

import (
	"strings"
	"testing"
)

func TestEmbeddedBrandingIsValid(t *testing.T) {
	if got := Issues(); len(got) > 0 {
		t.Fatalf("embedded branding.yaml has issues: %v", got)
	}
}

func TestAccessors(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"CLIName", CLIName(), "dwg"},
		{"DisplayName", DisplayName(), "DwgElement"},
		{"EnvPrefix", EnvPrefix(), "DWG"},
		{"ClassPrefix", ClassPrefix(), "Dwg"},
		{"TagPrefix", TagPrefix(), "dwg"},
		{"BaseClass", BaseClass(), "DwgElement"},
		{"BaseModule", BaseModule(), "dwg_element"},
		{"ComponentsDir", ComponentsDir(), "src/components"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestEnvVar(t *testing.T) {
	if got := EnvVar("dir"); got != "DWG_DIR" {
		t.Errorf("EnvVar(\"dir\") = %q, want %q", got, "DWG_DIR")
	}
}

func TestParse(t *testing.T) {
	t.Run("overlay replaces defaults", func(t *testing.T) {
		b, found := parse([]byte("class_prefix: Acme\ntag_prefix: acme\n"))
		if len(found) > 0 {
			t.Fatalf("unexpected issues: %v", found)
		}
		if b.ClassPrefix != "Acme" || b.TagPrefix != "acme" {
			t.Errorf("got prefixes %q/%q, want Acme/acme", b.ClassPrefix, b.TagPrefix)
		}
		if b.BaseClass != "DwgElement" {
			t.Errorf("BaseClass = %q, want default DwgElement", b.BaseClass)
		}
	})

	t.Run("empty document keeps defaults", func(t *testing.T) {
		b, found := parse(nil)
		if len(found) > 0 {
			t.Fatalf("unexpected issues: %v", found)
		}
		if b != hardDefaults() {
			t.Errorf("got %+v, want hard defaults", b)
		}
	})

	t.Run("invalid tag prefix falls back", func(t *testing.T) {
		b, found := parse([]byte("tag_prefix: Not-Valid\n"))
		if len(found) == 0 {
			t.Fatal("expected schema issues for an uppercase tag prefix")
		}
		if found[0].Path != "/tag_prefix" {
			t.Errorf("issue path = %q, want /tag_prefix", found[0].Path)
		}
		if b.TagPrefix != "dwg" {
			t.Errorf("TagPrefix = %q, want default dwg", b.TagPrefix)
		}
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		_, found := parse([]byte("colour: blue\n"))
		if len(found) == 0 {
			t.Fatal("expected an issue for an unknown key")
		}
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, found := parse([]byte("cli_name: [unterminated\n"))
		if len(found) != 1 || !strings.Contains(found[0].Message, "parsing YAML") {
			t.Errorf("got %v, want one parsing YAML issue", found)
		}
	})
}
