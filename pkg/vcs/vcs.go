// Package vcs initialises a version control repository in a scaffolded project.
package vcs

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/olimci/cmake-init/pkg/errdef"
	"github.com/olimci/cmake-init/pkg/options"
	"github.com/olimci/cmake-init/pkg/utils/fileutils"
)

// Runner runs name with args in dir.
type Runner func(ctx context.Context, dir, name string, args ...string) error

// ExecRunner runs commands with os/exec, folding stderr into the error.
func ExecRunner(ctx context.Context, dir, name string, args ...string) error {
	if _, err := exec.LookPath(name); err != nil {
		return fmt.Errorf("%s is required: %w", name, err)
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s %s: %w: %s", name, strings.Join(args, " "), err, msg)
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Marker is the entry whose presence means a repository already exists.
func Marker(kind options.VCS) string {
	switch kind {
	case options.VCSGit:
		return ".git"
	default:
		return ""
	}
}

// Command returns the command that initialises kind, or nil for none.
func Command(kind options.VCS) []string {
	switch kind {
	case options.VCSGit:
		return []string{"git", "init", "--quiet"}
	default:
		return nil
	}
}

// Init initialises kind in dir unless a repository is already there. It reports
// whether a command was run.
func Init(ctx context.Context, run Runner, dir string, kind options.VCS) (bool, error) {
	if _, err := kind.Name(); err != nil {
		return false, err
	}

	argv := Command(kind)
	if len(argv) == 0 {
		return false, nil
	}

	exists, err := fileutils.Exists(filepath.Join(dir, Marker(kind)))
	if err != nil {
		return false, errdef.Wrap(errdef.CodeIO, err, "checking for an existing %s repository", kind)
	}
	if exists {
		return false, nil
	}

	if run == nil {
		run = ExecRunner
	}
	if err := run(ctx, dir, argv[0], argv[1:]...); err != nil {
		return false, errdef.Wrap(errdef.CodeIO, err, "initialising %s repository", kind)
	}
	return true, nil
}
