package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dwg-labs/dwg/internal/branding"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the frontend directory can receive components",
		Long: `Verify that the components root and the ` + branding.BaseClass() + ` base module exist
under the frontend directory, and that the embedded branding is valid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			problems := runDoctor(cmd.OutOrStdout(), a)
			if problems > 0 {
				return fmt.Errorf("doctor found %d problem(s)", problems)
			}
			return nil
		},
	}
}

// runDoctor prints one line per check and returns the number of failures.
func runDoctor(w io.Writer, a *app) int {
	g := a.generator()
	problems := 0

	check := func(label, path string, ok bool, err error) {
		status := "ok"
		switch {
		case err != nil:
			status = "error: " + err.Error()
			problems++
		case !ok:
			status = "missing"
			problems++
		}
		fmt.Fprintf(w, "  %-18s %s [%s]\n", label, path, status)
	}

	fmt.Fprintf(w, "Frontend directory: %s\n\n", a.settings.Dir)

	root := g.ComponentsRoot()
	rootOK, err := afero.DirExists(a.fs, root)
	check("components root", root, rootOK, err)

	baseModule := filepath.Join(root, branding.BaseModule()+".ts")
	baseOK, err := afero.Exists(a.fs, baseModule)
	check("base module", baseModule, baseOK, err)

	issues := branding.Issues()
	if len(issues) == 0 {
		fmt.Fprintf(w, "  %-18s ok\n", "branding")
	} else {
		fmt.Fprintf(w, "  %-18s %d issue(s), using defaults\n", "branding", len(issues))
		for _, issue := range issues {
			fmt.Fprintf(w, "    - %s\n", issue)
		}
	}

	return problems
}
