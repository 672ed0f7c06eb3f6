package repo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// absPath is a variable for filepath.Abs to allow mocking in tests.
var absPath = filepath.Abs

// CLIGitter is the concrete implementation of Gitter using the git CLI.
type CLIGitter struct {
	binary string
}

// NewCLIGitter creates a new CLIGitter instance.
func NewCLIGitter() *CLIGitter {
	return &CLIGitter{binary: "git"}
}

// git runs a git command from dir and returns its standard output.
func (g *CLIGitter) git(ctx context.Context, dir string, args ...string) (string, error) {
	//nolint:gosec // arguments are built internally and paths are absolute
	cmd := exec.CommandContext(ctx, g.binary, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s failed: %w (output: %s)",
			args[0], err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// workDir returns the directory git should run from for path.
func workDir(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return filepath.Dir(path)
}

// Changes lists files under path that were added or modified since the given revision.
func (g *CLIGitter) Changes(ctx context.Context, since Revision, path string) ([]Change, error) {
	abs, err := absPath(path)
	if err != nil {
		return nil, err
	}
	dir := workDir(abs)

	top, err := g.git(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("failed to find git root: %w", err)
	}
	root := strings.TrimSpace(top)

	// Renames show up as a deletion plus an addition.
	diff, err := g.git(ctx, dir, "diff", "--name-status", "--no-renames", since.String(), "--", abs)
	if err != nil {
		return nil, err
	}

	var changes []Change
	for _, line := range strings.Split(strings.TrimSpace(diff), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 || fields[0] == "D" {
			continue
		}
		// git diff returns paths relative to the repo root.
		changes = append(changes, Change{
			Path:  filepath.Join(root, fields[1]),
			IsNew: fields[0] == "A",
		})
	}

	untracked, err := g.git(ctx, dir, "ls-files", "--others", "--exclude-standard", "--full-name", "--", abs)
	if err != nil {
		return nil, err
	}
	for _, line := range strings.Split(strings.TrimSpace(untracked), "\n") {
		if line == "" {
			continue
		}
		changes = append(changes, Change{Path: filepath.Join(root, line), IsNew: true})
	}

	return changes, nil
}
