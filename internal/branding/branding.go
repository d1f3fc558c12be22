// Package branding provides compile-time identity values for the CLI and the
// fixed tokens stamped into generated components (class prefix, tag prefix,
// base class and module).
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. The embedded document is checked against
// schema/branding.schema.json; a document that fails the check is ignored and
// the hard defaults are used instead.
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
	issues   []Issue
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	EnvPrefix     string `yaml:"env_prefix"`
	ClassPrefix   string `yaml:"class_prefix"`
	TagPrefix     string `yaml:"tag_prefix"`
	BaseClass     string `yaml:"base_class"`
	BaseModule    string `yaml:"base_module"`
	ComponentsDir string `yaml:"components_dir"`
}

func hardDefaults() brand {
	return brand{
		CLIName:       "dwg",
		DisplayName:   "DwgElement",
		Description:   "Scaffolds DwgElement components for the frontend",
		EnvPrefix:     "DWG",
		ClassPrefix:   "Dwg",
		TagPrefix:     "dwg",
		BaseClass:     "DwgElement",
		BaseModule:    "dwg_element",
		ComponentsDir: "src/components",
	}
}

func load() {
	once.Do(func() {
		defaults, issues = parse(rawBranding)
	})
}

// parse overlays data on the hard defaults. Schema issues or a YAML error
// leave the defaults untouched.
func parse(data []byte) (brand, []Issue) {
	b := hardDefaults()

	found, err := Validate(data)
	if err != nil {
		return b, []Issue{{Message: err.Error()}}
	}
	if len(found) > 0 {
		return b, found
	}

	overlay := b
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return b, []Issue{{Message: err.Error()}}
	}
	return overlay, nil
}

// CLIName returns the root command name (e.g., "dwg").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable element family name (e.g., "DwgElement").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "DWG").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// ClassPrefix returns the token prepended to generated class names (e.g., "Dwg").
func ClassPrefix() string { load(); return defaults.ClassPrefix }

// TagPrefix returns the custom-element tag prefix (e.g., "dwg").
func TagPrefix() string { load(); return defaults.TagPrefix }

// BaseClass returns the class every generated component extends.
func BaseClass() string { load(); return defaults.BaseClass }

// BaseModule returns the module, relative to the components root, that
// exports BaseClass.
func BaseModule() string { load(); return defaults.BaseModule }

// ComponentsDir returns the slash-separated components root relative to the
// frontend directory (e.g., "src/components").
func ComponentsDir() string { load(); return defaults.ComponentsDir }

// Issues returns the problems found in the embedded branding document, if any.
func Issues() []Issue { load(); return issues }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("dir") → "DWG_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
