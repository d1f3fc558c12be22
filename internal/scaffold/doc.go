// Package scaffold generates new DwgElement components from embedded
// templates. It powers the "component" menu entry and the "dwg component"
// command, creating src/components/<name>/ with the markup, logic, and
// stylesheet stubs the frontend build expects.
//
// All filesystem access goes through an afero.Fs so the generator can run
// against the real disk or an in-memory tree.
package scaffold
