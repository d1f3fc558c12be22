package cli

import (
	"fmt"
	"io"

	"github.com/dwg-labs/dwg/internal/menu"
	"github.com/dwg-labs/dwg/internal/naming"
	"github.com/dwg-labs/dwg/internal/scaffold"
	"github.com/spf13/cobra"
)

func newComponentCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "component [name]",
		Short: "Scaffold a new component",
		Long: `Scaffold a new component with markup, logic, and stylesheet stubs.

The name is lowercased and spaces become underscores. Slashes nest the
component under an existing directory. When no name is given it is read
from stdin.

Examples:
  dwg component "My Widget"
  dwg component lobby/room_badge`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				s := menu.NewSession(cmd.InOrStdin(), out, nil)
				line, err := s.AskName()
				if err != nil {
					return err
				}
				name = line
			}

			n := naming.Derive(name)
			result, err := menu.Generate(out, a.generator(), n)
			if err != nil {
				return err
			}

			printResult(out, result, scaffold.NewComponentData(n))
			return nil
		},
	}
}

func printResult(w io.Writer, result *scaffold.Result, data *scaffold.ComponentData) {
	fmt.Fprintf(w, "Created component at %s/\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(w, "  %s\n", f)
	}
	fmt.Fprintf(w, "\nUse it as <%s></%s>\n", data.ElementTag, data.ElementTag)
}
