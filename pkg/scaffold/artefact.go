package scaffold

import (
	"io"
	"io/fs"

	"github.com/olimci/cmake-init/pkg/guard"
)

const (
	filePerm fs.FileMode = 0o644
	execPerm fs.FileMode = 0o755
	dirPerm  fs.FileMode = 0o755
)

// Artefact is one file of a project skeleton.
type Artefact struct {
	// Path is slash-separated and relative to the project root.
	Path string
	Mode guard.Mode
	Perm fs.FileMode

	// Builder produces the file body when the file is created.
	Builder func(w io.Writer) error

	// Extend returns the text to append to an existing file, or nil when the file
	// already has what it needs. Only CreateOrAppend artefacts use it.
	Extend func(existing []byte) []byte
}

// TextArtefact creates path with a fixed body.
func TextArtefact(path string, mode guard.Mode, text string) Artefact {
	return Artefact{
		Path: path,
		Mode: mode,
		Perm: filePerm,
		Builder: func(w io.Writer) error {
			_, err := io.WriteString(w, text)
			return err
		},
	}
}

// Executable marks the artefact as runnable.
func (a Artefact) Executable() Artefact {
	a.Perm = execPerm
	return a
}

// Plan is the ordered list of artefacts for one run.
type Plan []Artefact

// Paths lists the paths of every artefact written with mode, in plan order.
func (p Plan) Paths(mode guard.Mode) []string {
	var out []string
	for _, a := range p {
		if a.Mode == mode {
			out = append(out, a.Path)
		}
	}
	return out
}
