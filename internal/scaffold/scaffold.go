package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path/filepath"
	"text/template"

	"github.com/dwg-labs/dwg/internal/branding"
	"github.com/dwg-labs/dwg/internal/naming"
	"github.com/spf13/afero"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// componentFiles lists the generated files in write order. Each template
// renders to <stem><ext>; an empty template name means an empty file.
var componentFiles = []struct {
	template string
	ext      string
}{
	{"component.html.tmpl", ".html"},
	{"component.ts.tmpl", ".ts"},
	{"", ".scss"},
}

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// ComponentData holds all template variables available to component templates.
type ComponentData struct {
	naming.Names
	ClassName  string // e.g., "DwgMyWidget"
	ElementTag string // e.g., "dwg-my-widget"
	BaseClass  string // e.g., "DwgElement"
	BaseModule string // e.g., "dwg_element"
}

// NewComponentData combines derived names with the brand tokens.
func NewComponentData(n naming.Names) *ComponentData {
	return &ComponentData{
		Names:      n,
		ClassName:  branding.ClassPrefix() + n.Type,
		ElementTag: branding.TagPrefix() + "-" + n.Tag,
		BaseClass:  branding.BaseClass(),
		BaseModule: branding.BaseModule(),
	}
}

// Result holds the outcome of a component generation.
type Result struct {
	Name      string
	OutputDir string
	Files     []string
}

// Generator writes components below BaseDir/<components dir>.
type Generator struct {
	FS      afero.Fs
	BaseDir string
	Logger  *slog.Logger
}

// New returns a Generator on the OS filesystem rooted at baseDir.
func New(baseDir string, logger *slog.Logger) *Generator {
	return &Generator{FS: afero.NewOsFs(), BaseDir: baseDir, Logger: logger}
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return g.Logger
}

// ComponentsRoot returns the directory new components are created under.
func (g *Generator) ComponentsRoot() string {
	return filepath.Join(g.BaseDir, filepath.FromSlash(branding.ComponentsDir()))
}

// TargetDir returns the directory a component with the given raw name maps to.
func (g *Generator) TargetDir(raw string) string {
	return filepath.Join(g.ComponentsRoot(), filepath.FromSlash(raw))
}

// Exists reports whether anything already occupies the target of raw.
func (g *Generator) Exists(raw string) (bool, error) {
	return occupied(g.FS, g.TargetDir(raw))
}

// occupied reports whether path names any entry, a dangling symlink included.
func occupied(fsys afero.Fs, path string) (bool, error) {
	var err error
	if l, ok := fsys.(afero.Lstater); ok {
		_, _, err = l.LstatIfPossible(path)
	} else {
		_, err = fsys.Stat(path)
	}
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Component creates the component directory and its three files. The parent
// of the target directory must already exist. If a file write fails, the
// partially populated directory is removed before the error is returned.
func (g *Generator) Component(n naming.Names) (*Result, error) {
	log := g.logger().With("component", n.Raw)
	outDir := g.TargetDir(n.Raw)

	exists, err := occupied(g.FS, outDir)
	if err != nil {
		return nil, classify("stat", outDir, err)
	}
	if exists {
		return nil, &Error{Kind: KindAlreadyExists, Op: "create", Path: outDir}
	}

	parent := filepath.Dir(outDir)
	if ok, err := afero.DirExists(g.FS, parent); err != nil {
		return nil, classify("stat", parent, err)
	} else if !ok {
		return nil, &Error{Kind: KindMissingParent, Op: "create", Path: parent}
	}

	data := NewComponentData(n)
	rendered := make([][]byte, len(componentFiles))
	for i, f := range componentFiles {
		if f.template == "" {
			rendered[i] = []byte{}
			continue
		}
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, f.template, data); err != nil {
			return nil, fmt.Errorf("executing template %s: %w", f.template, err)
		}
		rendered[i] = buf.Bytes()
	}

	if err := g.FS.Mkdir(outDir, 0755); err != nil {
		return nil, classify("mkdir", outDir, err)
	}
	log.Debug("created directory", "path", outDir)

	result := &Result{Name: n.Raw, OutputDir: outDir}
	for i, f := range componentFiles {
		name := n.Stem + f.ext
		outPath := filepath.Join(outDir, name)
		if err := afero.WriteFile(g.FS, outPath, rendered[i], 0644); err != nil {
			if rmErr := g.FS.RemoveAll(outDir); rmErr != nil {
				log.Warn("removing partial component failed", "path", outDir, "error", rmErr)
			}
			return nil, classify("write", outPath, err)
		}
		log.Debug("wrote file", "path", outPath, "bytes", len(rendered[i]))
		result.Files = append(result.Files, name)
	}

	return result, nil
}
