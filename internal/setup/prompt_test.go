package setup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_Collect_FirstTry(t *testing.T) {
	in := strings.NewReader("good-name1\nA cool API\nJane\n")
	out := &bytes.Buffer{}

	input, err := NewPrompter(in, out).Collect()
	require.NoError(t, err)

	assert.Equal(t, "good-name1", input.ProjectName)
	assert.Equal(t, "A cool API", input.Description)
	assert.Equal(t, "Jane", input.Author)

	prompts := out.String()
	assert.Contains(t, prompts, "What is your project name? (e.g., my-awesome-api)")
	assert.Contains(t, prompts, "Project description (optional - press Enter to skip):")
	assert.Contains(t, prompts, "Author name (optional - press Enter to skip):")
}

func TestPrompter_Collect_OptionalSkipped(t *testing.T) {
	in := strings.NewReader("my-api\n\n\n")
	out := &bytes.Buffer{}

	input, err := NewPrompter(in, out).Collect()
	require.NoError(t, err)

	assert.Equal(t, "my-api", input.ProjectName)
	assert.Empty(t, input.Description)
	assert.Empty(t, input.Author)
}

func TestPrompter_NameLoop(t *testing.T) {
	tests := []struct {
		name       string
		lines      []string
		wantName   string
		wantErrors []string
	}{
		{
			name:       "empty_then_valid",
			lines:      []string{"", "my-api"},
			wantName:   "my-api",
			wantErrors: []string{"cannot be empty"},
		},
		{
			name:       "uppercase_then_valid",
			lines:      []string{"BadName", "badname"},
			wantName:   "badname",
			wantErrors: []string{"lowercase letters, digits, and hyphens"},
		},
		{
			name:       "edge_hyphen_then_valid",
			lines:      []string{"-bad-", "bad"},
			wantName:   "bad",
			wantErrors: []string{"start or end with a hyphen"},
		},
		{
			name:     "several_failures",
			lines:    []string{"", "My App", "-x-", "my-app"},
			wantName: "my-app",
			wantErrors: []string{
				"cannot be empty",
				"lowercase letters, digits, and hyphens",
				"start or end with a hyphen",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := strings.NewReader(strings.Join(tt.lines, "\n") + "\n\n\n")
			out := &bytes.Buffer{}

			input, err := NewPrompter(in, out).Collect()
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, input.ProjectName)

			feedback := out.String()
			for _, want := range tt.wantErrors {
				assert.Contains(t, feedback, want)
			}

			// the prompt repeats once per attempt
			attempts := strings.Count(feedback, "What is your project name?")
			assert.Equal(t, len(tt.lines), attempts)
		})
	}
}

func TestPrompter_SuggestionShown(t *testing.T) {
	in := strings.NewReader("My Awesome API\nmy-awesome-api\n\n\n")
	out := &bytes.Buffer{}

	_, err := NewPrompter(in, out).Collect()
	require.NoError(t, err)

	assert.Contains(t, out.String(), `did you mean "my-awesome-api"?`)
}

func TestPrompter_EOFIsFatal(t *testing.T) {
	in := strings.NewReader("") // stream closes before any answer
	out := &bytes.Buffer{}

	_, err := NewPrompter(in, out).Collect()
	require.Error(t, err)
}

func TestPrompter_TrimsWhitespace(t *testing.T) {
	in := strings.NewReader("  my-api  \r\n  spaced description  \n\n")
	out := &bytes.Buffer{}

	input, err := NewPrompter(in, out).Collect()
	require.NoError(t, err)

	assert.Equal(t, "my-api", input.ProjectName)
	assert.Equal(t, "spaced description", input.Description)
}
