package config

import (
	"fmt"
	"path/filepath"

	"github.com/dwg-labs/dwg/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by flags and environment variables.
const (
	KeyDir     = "dir"
	KeyVerbose = "verbose"
)

// Settings is the resolved configuration for one invocation.
type Settings struct {
	Dir     string // Frontend base directory containing src/components
	Verbose bool
}

// New returns a Viper instance with defaults and env binding applied.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.AutomaticEnv()
	v.SetDefault(KeyDir, ".")
	v.SetDefault(KeyVerbose, false)
	return v
}

// BindFlags binds the persistent flags of the root command.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{KeyDir, KeyVerbose} {
		f := flags.Lookup(key)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding flag --%s: %w", key, err)
		}
	}
	return nil
}

// Load resolves Settings from v. Dir is made absolute.
func Load(v *viper.Viper) (*Settings, error) {
	dir, err := filepath.Abs(v.GetString(KeyDir))
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", KeyDir, err)
	}
	return &Settings{
		Dir:     dir,
		Verbose: v.GetBool(KeyVerbose),
	}, nil
}
