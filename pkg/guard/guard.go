// Package guard decides, before anything is written, whether each scaffold
// artifact may be created, appended to, left alone, or must stop the run.
package guard

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/olimci/cmake-init/pkg/errdef"
)

// Mode is the write policy of one artifact.
type Mode uint8

const (
	// CreateIfAbsent leaves an existing file untouched.
	CreateIfAbsent Mode = iota
	// CreateOrAppend adds to an existing file without disturbing its content.
	CreateOrAppend
	// CreateOrAbort stops the run if the file exists.
	CreateOrAbort
)

func (m Mode) String() string {
	switch m {
	case CreateIfAbsent:
		return "create-if-absent"
	case CreateOrAppend:
		return "create-or-append"
	case CreateOrAbort:
		return "create-or-abort"
	default:
		return "unknown"
	}
}

// Decision is the guard's verdict for one artifact.
type Decision uint8

const (
	Create Decision = iota
	Append
	Skip
	Abort
)

func (d Decision) String() string {
	switch d {
	case Create:
		return "create"
	case Append:
		return "append"
	case Skip:
		return "skip"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// Inspection is the observed state of one artifact path.
type Inspection struct {
	Path     string
	Decision Decision
	// Content holds the existing bytes of an append-mode artifact.
	Content []byte
}

type Guard struct {
	root string
}

func New(root string) *Guard {
	return &Guard{root: root}
}

// Root is the directory artifacts are resolved against.
func (g *Guard) Root() string {
	return g.root
}

// Abs joins rel onto the root, refusing paths that leave it.
func (g *Guard) Abs(rel string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(rel))
	if clean == "." || clean == ".." || filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", errdef.New(errdef.CodeInvariant, "artifact path %q escapes %s", rel, g.root)
	}
	return filepath.Join(g.root, clean), nil
}

// Inspect classifies rel under mode.
func (g *Guard) Inspect(rel string, mode Mode) (Inspection, error) {
	abs, err := g.Abs(rel)
	if err != nil {
		return Inspection{}, err
	}

	in := Inspection{Path: rel}

	info, err := os.Lstat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		in.Decision = Create
		return in, nil
	}
	if err != nil {
		return Inspection{}, errdef.Wrap(errdef.CodeIO, err, "stat %s", rel)
	}

	switch mode {
	case CreateOrAbort:
		in.Decision = Abort
	case CreateIfAbsent:
		if info.IsDir() {
			return Inspection{}, errdef.Wrap(errdef.CodeArtifactConflict, errdef.ErrArtifactExists, "%s is a directory", rel)
		}
		in.Decision = Skip
	case CreateOrAppend:
		if info.IsDir() {
			return Inspection{}, errdef.Wrap(errdef.CodeArtifactConflict, errdef.ErrArtifactExists, "%s is a directory", rel)
		}
		content, err := os.ReadFile(abs)
		if err != nil {
			return Inspection{}, errdef.Wrap(errdef.CodeIO, err, "read %s", rel)
		}
		in.Decision = Append
		in.Content = content
	default:
		return Inspection{}, errdef.New(errdef.CodeInvariant, "unknown write mode %d", mode)
	}

	return in, nil
}

// Preflight checks every path as CreateOrAbort before any of them is written and
// fails on the first one that already exists, returning it as conflict.
func (g *Guard) Preflight(rels ...string) (conflict string, err error) {
	for _, rel := range rels {
		in, err := g.Inspect(rel, CreateOrAbort)
		if err != nil {
			return rel, err
		}
		if in.Decision == Abort {
			return rel, errdef.Exists(rel)
		}
	}
	return "", nil
}

// EnsureRoot creates the root directory if needed. An existing non-directory fails.
func (g *Guard) EnsureRoot(create bool) error {
	info, err := os.Stat(g.root)
	if err == nil {
		if !info.IsDir() {
			return errdef.New(errdef.CodeUserInput, "%s is not a directory", g.root)
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return errdef.Wrap(errdef.CodeIO, err, "stat %s", g.root)
	}
	if !create {
		return nil
	}
	if err := os.MkdirAll(g.root, 0o755); err != nil {
		return errdef.Wrap(errdef.CodeIO, err, "create %s", g.root)
	}
	return nil
}
