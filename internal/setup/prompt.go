package setup

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strings"

	"github.com/kindling-dev/kindling/internal/errors"
	"github.com/kindling-dev/kindling/internal/validation"
)

// SetupInput holds the answers collected from the user for one run.
type SetupInput struct {
	ProjectName string
	Description string
	Author      string
}

// Prompter collects setup input from a line-oriented stream. Input and
// output are injected so tests can drive it with buffers.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Collect runs the three interactive prompts in order: project name
// (looped until valid), description, author.
func (p *Prompter) Collect() (SetupInput, error) {
	name, err := p.askProjectName()
	if err != nil {
		return SetupInput{}, err
	}

	description, err := p.askOptional("Project description (optional - press Enter to skip):")
	if err != nil {
		return SetupInput{}, err
	}

	author, err := p.askOptional("Author name (optional - press Enter to skip):")
	if err != nil {
		return SetupInput{}, err
	}

	return SetupInput{
		ProjectName: name,
		Description: description,
		Author:      author,
	}, nil
}

// askProjectName re-prompts until the input passes validation. Every
// rejection prints the specific rule that was violated before asking
// again.
func (p *Prompter) askProjectName() (string, error) {
	for {
		input, err := p.askLine("What is your project name? (e.g., my-awesome-api)")
		if err != nil {
			return "", err
		}

		if vErr := validation.ValidateProjectName(input); vErr != nil {
			fmt.Fprintf(p.out, "❌ %s\n", validationMessage(vErr))
			if suggestion := validation.SuggestProjectName(input); suggestion != "" {
				fmt.Fprintf(p.out, "   (did you mean %q?)\n", suggestion)
			}
			continue
		}

		return input, nil
	}
}

func (p *Prompter) askOptional(prompt string) (string, error) {
	return p.askLine(prompt)
}

func (p *Prompter) askLine(prompt string) (string, error) {
	fmt.Fprintln(p.out, prompt)
	fmt.Fprint(p.out, "> ")

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.WrapIO(err, errors.ErrCodePromptRead, "failed to read input")
	}

	return strings.TrimSpace(line), nil
}

// validationMessage strips the error-code prefix for prompt output;
// the interactive loop wants just the rule text.
func validationMessage(err error) string {
	var ke *errors.KindlingError
	if stderrors.As(err, &ke) {
		return ke.Message
	}
	return err.Error()
}
