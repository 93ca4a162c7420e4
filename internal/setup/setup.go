// Package setup implements the one-shot project initializer: it
// collects a project name, description and author interactively, then
// personalizes the template checkout in a strict sequence of
// filesystem mutations. Content generation (descriptor, README) runs
// before the irreversible steps (artifact removal, git history reset)
// so a failure partway through leaves the template files intact.
package setup

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kindling-dev/kindling/internal/logging"
)

// Options configures one setup run. All paths are scoped through Root
// so the run can be pointed at any directory, in particular a temp
// directory under test.
type Options struct {
	// Root is the project root; every mutated path is relative to it.
	Root string
	// Input is the line-oriented stream the prompts read from.
	Input io.Reader
	// Output receives prompts, progress, warnings and the final report.
	Output io.Writer
	// RemoveSelf controls whether the setup command's own source is
	// deleted, making the run one-shot.
	RemoveSelf bool
	// SkipGit disables the version-control reset entirely.
	SkipGit bool
}

// Service orchestrates the setup steps.
type Service struct {
	opts   Options
	logger logging.Logger

	// resetVCS is the version-control side effect, injectable so the
	// best-effort failure path is testable.
	resetVCS func(root, author string) error
}

// NewService creates a setup service. Nil option fields fall back to
// the process defaults (cwd, stdin, stdout).
func NewService(opts Options, logger logging.Logger) *Service {
	if opts.Root == "" {
		opts.Root = "."
	}
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if logger == nil {
		logger = logging.NewLogger(nil)
	}

	return &Service{
		opts:     opts,
		logger:   logger.WithComponent("setup"),
		resetVCS: ResetVersionControl,
	}
}

// Run executes the full interactive setup sequence. It returns an
// error only for fatal failures; a failed version-control reset is
// reported as a warning and the run still succeeds.
func (s *Service) Run(ctx context.Context) error {
	fmt.Fprintln(s.opts.Output, "🔥 kindling project setup")
	fmt.Fprintln(s.opts.Output, "=========================")
	fmt.Fprintln(s.opts.Output)

	prompter := NewPrompter(s.opts.Input, s.opts.Output)
	input, err := prompter.Collect()
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "input collected",
		"name", input.ProjectName,
		"has_description", input.Description != "",
		"has_author", input.Author != "")

	fmt.Fprintln(s.opts.Output)

	for _, result := range s.apply(ctx, input) {
		switch result.Status {
		case StatusFatal:
			s.logger.Error(ctx, result.Err, "setup step failed", "step", result.Step)
			return result.Err
		case StatusWarning:
			s.logger.Warn(ctx, result.Err, "setup step degraded", "step", result.Step)
			fmt.Fprintf(s.opts.Output, "⚠ Warning: %s failed: %v\n", result.Step, result.Err)
		}
	}

	s.report(input)

	return nil
}

// apply runs the mutation steps in order and yields one typed result
// per step. The slice stops at the first fatal result.
func (s *Service) apply(ctx context.Context, input SetupInput) []StepResult {
	var results []StepResult

	steps := []struct {
		name string
		fn   func() StepResult
	}{
		{"update descriptor", func() StepResult { return s.updateDescriptor(input) }},
		{"regenerate documentation", func() StepResult { return s.regenerateReadme(input) }},
		{"remove template artifacts", func() StepResult { return s.removeArtifacts() }},
		{"reset version control", func() StepResult { return s.resetVersionControl(input) }},
	}

	for _, step := range steps {
		result := step.fn()
		results = append(results, result)
		if result.Status == StatusFatal {
			break
		}
	}

	return results
}

func (s *Service) updateDescriptor(input SetupInput) StepResult {
	const step = "update descriptor"

	if err := UpdateDescriptor(s.opts.Root, input); err != nil {
		return Fatal(step, err)
	}

	fmt.Fprintln(s.opts.Output, "✓ Updated project.yml")
	return OK(step)
}

func (s *Service) regenerateReadme(input SetupInput) StepResult {
	const step = "regenerate documentation"

	if err := RegenerateReadme(s.opts.Root, input); err != nil {
		return Fatal(step, err)
	}

	fmt.Fprintln(s.opts.Output, "✓ Regenerated README.md")
	return OK(step)
}

func (s *Service) removeArtifacts() StepResult {
	const step = "remove template artifacts"

	removed, err := RemoveTemplateArtifacts(s.opts.Root, s.opts.RemoveSelf)
	for _, rel := range removed {
		fmt.Fprintf(s.opts.Output, "✓ Removed %s\n", rel)
	}
	if err != nil {
		return Fatal(step, err)
	}

	return OK(step)
}

func (s *Service) resetVersionControl(input SetupInput) StepResult {
	const step = "reset version control"

	if s.opts.SkipGit {
		return OK(step)
	}

	if err := s.resetVCS(s.opts.Root, input.Author); err != nil {
		return Warn(step, err)
	}

	fmt.Fprintln(s.opts.Output, "✓ Initialized fresh git history")
	return OK(step)
}

func (s *Service) report(input SetupInput) {
	out := s.opts.Output

	fmt.Fprintln(out)
	fmt.Fprintf(out, "✅ Project %s is ready!\n", input.ProjectName)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  1. cd into your project (if you are not already there)")
	fmt.Fprintln(out, "  2. go mod tidy")
	fmt.Fprintln(out, "  3. go run . serve")
}
