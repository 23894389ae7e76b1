// Package sairepo acquires the baseline SAI header tree that generation
// patches. The tree comes from a shallow git clone; an existing
// destination is never overwritten, so a dirty tree from a previous run
// has to be removed explicitly.
package sairepo

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Defaults for the upstream SAI repository.
const (
	DefaultURL    = "https://github.com/opencomputeproject/SAI"
	DefaultBranch = "master"
)

// Clone shallow-clones the given branch of the SAI repository into dest.
// Errors if dest already exists.
func Clone(url, branch, dest string) error {
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("destination %s already exists, remove it to proceed", dest)
	}
	cmd := exec.Command("git", "clone", "--depth", "1", "--branch", branch, url, dest)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git clone %s: %w\n%s", url, err, out)
	}
	return nil
}

// HeadCommit returns the commit hash the tree at dir is checked out at,
// for provenance logging.
func HeadCommit(dir string) (string, error) {
	out, err := exec.Command("git", "-C", dir, "rev-parse", "HEAD").Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse in %s: %w", dir, err)
	}
	return strings.TrimSpace(string(out)), nil
}
