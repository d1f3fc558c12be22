// Package cli defines the Cobra command tree for the dwg CLI. Running dwg
// with no subcommand shows the interactive menu; the component, page, doctor
// and version subcommands expose the same actions non-interactively. Command
// implementations delegate to internal packages and only handle flags, I/O
// formatting, and user interaction.
package cli
