package setup

import (
	"os"
	"path/filepath"
	"text/template"

	"github.com/kindling-dev/kindling/internal/errors"
)

// ReadmeFile is the regenerated documentation file at the project root.
const ReadmeFile = "README.md"

// DefaultDescription is the sub-heading used when the user skips the
// description prompt.
const DefaultDescription = "A backend API project built from the kindling starter template."

var readmeTemplate = template.Must(template.New("readme").Parse(`# {{.Name}}

> {{.Description}}

## Getting Started

` + "```bash" + `
go mod tidy
go run . serve
` + "```" + `

The server listens on http://localhost:3000 by default. Override the
port with KINDLING_SERVER_PORT or the server section of project.yml.

## Endpoints

| Method | Path        | Description        |
|--------|-------------|--------------------|
| GET    | /           | Welcome payload    |
| GET    | /api/health | Health check       |

## Configuration

Project metadata and server settings live in project.yml. Environment
variables prefixed with KINDLING_ override file values.
{{if .Author}}
## Author

{{.Author}}
{{end}}`))

type readmeData struct {
	Name        string
	Description string
	Author      string
}

// RegenerateReadme replaces README.md with content generated from the
// collected input. This is a full rewrite, not a merge: the template
// checkout's placeholder documentation is discarded.
func RegenerateReadme(root string, input SetupInput) error {
	path := filepath.Join(root, ReadmeFile)

	data := readmeData{
		Name:        input.ProjectName,
		Description: input.Description,
		Author:      input.Author,
	}
	if data.Description == "" {
		data.Description = DefaultDescription
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WrapIO(err, errors.ErrCodeReadmeWrite,
			"failed to write README").WithPath(path)
	}

	if err := readmeTemplate.Execute(f, data); err != nil {
		f.Close()
		return errors.WrapIO(err, errors.ErrCodeReadmeWrite,
			"failed to render README").WithPath(path)
	}

	if err := f.Close(); err != nil {
		return errors.WrapIO(err, errors.ErrCodeReadmeWrite,
			"failed to write README").WithPath(path)
	}

	return nil
}
