package setup

import (
	"os"
	"path/filepath"

	"github.com/kindling-dev/kindling/internal/errors"
)

// Template-only artifacts removed at the end of a successful run.
const (
	// InstructionsFile documents how to use the template checkout and
	// has no role after personalization.
	InstructionsFile = "TEMPLATE.md"
	// SetupSourceFile is the setup command's own source. Removing it
	// makes the operation one-shot: the next build of the checkout no
	// longer carries the setup subcommand.
	SetupSourceFile = "cmd/setup.go"
)

// RemoveTemplateArtifacts deletes the template-only files under root.
// Files already absent are skipped silently, which makes the step
// idempotent. When the directory containing the setup source is left
// empty, it is removed as well. Returns the root-relative paths that
// were actually removed.
func RemoveTemplateArtifacts(root string, removeSelf bool) ([]string, error) {
	targets := []string{InstructionsFile}
	if removeSelf {
		targets = append(targets, filepath.FromSlash(SetupSourceFile))
	}

	var removed []string
	for _, rel := range targets {
		path := filepath.Join(root, rel)

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		if err := os.Remove(path); err != nil {
			return removed, errors.WrapIO(err, errors.ErrCodeCleanupFailed,
				"failed to remove template artifact").WithPath(path)
		}
		removed = append(removed, rel)
	}

	if removeSelf {
		pruned, err := pruneIfEmpty(root, filepath.Dir(filepath.FromSlash(SetupSourceFile)))
		if err != nil {
			return removed, err
		}
		if pruned != "" {
			removed = append(removed, pruned)
		}
	}

	return removed, nil
}

// pruneIfEmpty removes rel under root when it is an empty directory.
func pruneIfEmpty(root, rel string) (string, error) {
	path := filepath.Join(root, rel)

	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.WrapIO(err, errors.ErrCodeCleanupFailed,
			"failed to inspect directory").WithPath(path)
	}

	if len(entries) > 0 {
		return "", nil
	}

	if err := os.Remove(path); err != nil {
		return "", errors.WrapIO(err, errors.ErrCodeCleanupFailed,
			"failed to remove empty directory").WithPath(path)
	}

	return rel, nil
}
