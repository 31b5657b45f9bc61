package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// gitignoreContent keeps personal data out of version control when the
// ecomood directory lives inside a dotfiles repository.
const gitignoreContent = `# ecomood personal data (auto-generated)
# Config is tracked; the journal and logs are not.
journal.yaml
journal.yaml.tmp
*.log
`

// GitignoreContent returns the standard .gitignore content. Exported for testing.
func GitignoreContent() string {
	return gitignoreContent
}

// EnsureGitignore creates a .gitignore file in dir if one does not already
// exist. Returns true if a new file was created. Never overwrites an existing
// .gitignore.
func EnsureGitignore(dir string) (bool, error) {
	gitignorePath := filepath.Join(dir, ".gitignore")

	_, err := os.Stat(gitignorePath)
	if err == nil {
		return false, nil
	}

	if !os.IsNotExist(err) {
		return false, fmt.Errorf("checking .gitignore at %s: %w", gitignorePath, err)
	}

	if mkdirErr := os.MkdirAll(dir, 0o750); mkdirErr != nil {
		return false, fmt.Errorf("creating directory %s: %w", dir, mkdirErr)
	}

	//nolint:gosec // .gitignore must be world-readable (0644).
	if writeErr := os.WriteFile(gitignorePath, []byte(gitignoreContent), 0o644); writeErr != nil {
		return false, fmt.Errorf("writing .gitignore at %s: %w", gitignorePath, writeErr)
	}

	return true, nil
}
