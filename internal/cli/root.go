package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dwg-labs/dwg/internal/branding"
	"github.com/dwg-labs/dwg/internal/config"
	"github.com/dwg-labs/dwg/internal/menu"
	"github.com/dwg-labs/dwg/internal/scaffold"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type buildInfo struct {
	version string
	commit  string
	date    string
}

// app carries state resolved once per invocation and shared by all commands.
type app struct {
	v        *viper.Viper
	build    buildInfo
	settings *config.Settings
	logger   *slog.Logger
	fs       afero.Fs
}

func newRootCmd(build buildInfo) *cobra.Command {
	a := &app{v: config.New(), build: build, fs: afero.NewOsFs()}

	cmd := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: `CLI to add a new component to the frontend.

Run without a subcommand for the interactive menu, or use "component" to
scaffold ` + branding.DisplayName() + ` components directly. Components are created under
<dir>/` + branding.ComponentsDir() + `/<name>/.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return menu.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), a.generator()).Run()
		},
	}

	cmd.PersistentFlags().String(config.KeyDir, ".",
		fmt.Sprintf("Frontend directory containing %s (env %s)", branding.ComponentsDir(), branding.EnvVar(config.KeyDir)))
	cmd.PersistentFlags().BoolP(config.KeyVerbose, "v", false,
		fmt.Sprintf("Log each filesystem step to stderr (env %s)", branding.EnvVar(config.KeyVerbose)))

	cmd.AddCommand(
		newComponentCmd(a),
		newPageCmd(),
		newDoctorCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	if err := config.BindFlags(a.v, cmd.Root().PersistentFlags()); err != nil {
		return err
	}
	settings, err := config.Load(a.v)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	a.settings = settings
	a.logger = newLogger(cmd.ErrOrStderr(), settings.Verbose)
	a.logger.Debug("settings resolved", "dir", settings.Dir)
	return nil
}

func (a *app) generator() *scaffold.Generator {
	return &scaffold.Generator{FS: a.fs, BaseDir: a.settings.Dir, Logger: a.logger}
}

// newLogger returns a text logger on w. Debug records are only emitted when
// verbose is set.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	cmd := newRootCmd(buildInfo{version: version, commit: commit, date: date})
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
