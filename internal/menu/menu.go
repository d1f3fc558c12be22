package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dwg-labs/dwg/internal/branding"
	"github.com/dwg-labs/dwg/internal/naming"
	"github.com/dwg-labs/dwg/internal/scaffold"
)

// Choice is the action selected at the top-level menu.
type Choice int

const (
	ChoiceUnrecognized Choice = iota
	ChoiceComponent
	ChoicePage
)

func (c Choice) String() string {
	switch c {
	case ChoiceComponent:
		return "component"
	case ChoicePage:
		return "page"
	default:
		return "unrecognized"
	}
}

// ParseChoice maps one line of menu input to a Choice. Only the line
// terminator is stripped; " 1" is unrecognized.
func ParseChoice(line string) Choice {
	switch strings.TrimRight(line, "\r\n") {
	case "1":
		return ChoiceComponent
	case "2":
		return ChoicePage
	default:
		return ChoiceUnrecognized
	}
}

// Session reads answers from In and writes prompts and notices to Out.
type Session struct {
	In        *bufio.Reader
	Out       io.Writer
	Generator *scaffold.Generator
}

// NewSession wraps r in a buffered reader shared by every prompt of the session.
func NewSession(r io.Reader, w io.Writer, g *scaffold.Generator) *Session {
	return &Session{In: bufio.NewReader(r), Out: w, Generator: g}
}

// Run shows the menu, reads one selection and dispatches it. There is no loop:
// one action (or the unrecognized notice) per call.
func (s *Session) Run() error {
	fmt.Fprintf(s.Out, "CLI to add a new component to the frontend:\n\n  1. %s component\n  2. New page\n\n  > ",
		branding.DisplayName())

	line, err := s.readLine()
	if err != nil {
		return fmt.Errorf("reading selection: %w", err)
	}
	fmt.Fprintln(s.Out)

	switch ParseChoice(line) {
	case ChoiceComponent:
		return s.PromptComponent()
	case ChoicePage:
		return scaffold.Page(s.Out)
	default:
		fmt.Fprintln(s.Out, "Unrecognized command")
		return nil
	}
}

// PromptComponent asks for a component name and generates it. A name that is
// already taken is reported and is not an error.
func (s *Session) PromptComponent() error {
	line, err := s.AskName()
	if err != nil {
		return err
	}

	_, err = Generate(s.Out, s.Generator, naming.Derive(line))
	if errors.Is(err, scaffold.ErrAlreadyExists) {
		return nil
	}
	return err
}

// AskName prompts for a component name and returns the line as typed.
func (s *Session) AskName() (string, error) {
	fmt.Fprint(s.Out, "New component name: ")
	line, err := s.readLine()
	if err != nil {
		return "", fmt.Errorf("reading component name: %w", err)
	}
	return line, nil
}

// Generate announces and creates one component. On a name collision it
// prints the conflict notice and returns the scaffold error unchanged.
func Generate(w io.Writer, g *scaffold.Generator, n naming.Names) (*scaffold.Result, error) {
	exists, err := g.Exists(n.Raw)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", g.TargetDir(n.Raw), err)
	}
	if !exists {
		fmt.Fprintf(w, "\nCreating new component with name %s\n", n.Raw)
	}

	result, err := g.Component(n)
	if errors.Is(err, scaffold.ErrAlreadyExists) {
		fmt.Fprintf(w, "A component with name %s already exists\n", n.Raw)
	}
	return result, err
}

// readLine returns the next line including its terminator. End of input
// counts as an empty final line.
func (s *Session) readLine() (string, error) {
	line, err := s.In.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
