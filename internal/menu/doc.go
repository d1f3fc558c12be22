// Package menu implements the interactive entry point: a two-option numbered
// menu read from stdin that dispatches once to the component generator, the
// page stub, or an "Unrecognized command" notice.
package menu
