// Package config resolves raw scaffold options into one consistent configuration.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/olimci/cmake-init/pkg/errdef"
	"github.com/olimci/cmake-init/pkg/options"
	"github.com/olimci/cmake-init/pkg/version"
)

// Input holds raw option values as they leave the parsing boundary.
// The zero value selects every default.
type Input struct {
	Dir string
	VCS string

	Bin bool
	Lib bool

	C   bool
	CXX bool

	CStandard   string
	CXXStandard string

	Name         string
	CMakeMinimum string
}

// Overlay returns in with every value set in over taking precedence. Selecting one
// side of a paired option in over clears the other side inherited from in.
func (in Input) Overlay(over Input) Input {
	out := in

	if over.Dir != "" {
		out.Dir = over.Dir
	}
	if over.VCS != "" {
		out.VCS = over.VCS
	}
	if over.Bin || over.Lib {
		out.Bin, out.Lib = over.Bin, over.Lib
	}
	if over.C || over.CXX {
		out.C, out.CXX = over.C, over.CXX
	}
	if over.CStandard != "" || over.CXXStandard != "" {
		out.CStandard, out.CXXStandard = over.CStandard, over.CXXStandard
	}
	if over.Name != "" {
		out.Name = over.Name
	}
	if over.CMakeMinimum != "" {
		out.CMakeMinimum = over.CMakeMinimum
	}

	return out
}

// Resolved is the fully defaulted configuration for one run. It is passed by value
// and never modified after Resolve returns it.
type Resolved struct {
	Dir string
	VCS options.VCS

	Binary  bool
	Library bool

	C   bool
	CXX bool

	CStandard   options.CStandard
	CXXStandard options.CXXStandard

	Name         string
	CMakeMinimum version.Version
}

// Resolve merges in with the defaults: binary target, C++, the latest standard
// edition, no VCS, and a project name taken from the target directory. Only the
// dialect flags select the dialect; a standard edition never does.
func Resolve(in Input) (Resolved, error) {
	if in.Bin && in.Lib {
		return Resolved{}, errdef.New(errdef.CodeConfig, "binary and library targets are mutually exclusive")
	}
	if in.C && in.CXX {
		return Resolved{}, errdef.New(errdef.CodeConfig, "C and C++ dialects are mutually exclusive")
	}
	if strings.TrimSpace(in.CStandard) != "" && strings.TrimSpace(in.CXXStandard) != "" {
		return Resolved{}, errdef.New(errdef.CodeConfig, "a C standard and a C++ standard cannot both be selected")
	}

	dir := strings.TrimSpace(in.Dir)
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Resolved{}, errdef.Wrap(errdef.CodeIO, err, "resolving target directory %s", dir)
	}

	r := Resolved{
		Dir:          abs,
		VCS:          options.DefaultVCS,
		Library:      in.Lib,
		C:            in.C,
		CStandard:    options.DefaultCStandard,
		CXXStandard:  options.DefaultCXXStandard,
		CMakeMinimum: version.DefaultCMake,
	}
	r.Binary = !r.Library

	if v := strings.TrimSpace(in.VCS); v != "" {
		if r.VCS, err = options.ParseVCS(v); err != nil {
			return Resolved{}, err
		}
	}

	if s := strings.TrimSpace(in.CStandard); s != "" {
		if r.CStandard, err = options.ParseCStandard(s); err != nil {
			return Resolved{}, err
		}
	}
	if s := strings.TrimSpace(in.CXXStandard); s != "" {
		if r.CXXStandard, err = options.ParseCXXStandard(s); err != nil {
			return Resolved{}, err
		}
	}
	r.CXX = !r.C

	if r.Name, err = projectName(in.Name, abs); err != nil {
		return Resolved{}, err
	}

	if s := strings.TrimSpace(in.CMakeMinimum); s != "" {
		v, err := version.Parse(s)
		if err != nil {
			return Resolved{}, errdef.Wrap(errdef.CodeUserInput, err, "cmake minimum")
		}
		if v.Less(version.MinimumCMake) {
			return Resolved{}, errdef.New(errdef.CodeUserInput, "cmake minimum %s is older than %s, the first release reading preset schema %d", v, version.MinimumCMake, version.PresetSchema)
		}
		r.CMakeMinimum = v
	}

	return r, r.Validate()
}

var errNoName = errors.New("no project name")

func projectName(name, dir string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = filepath.Base(dir)
		if name == "." || name == string(filepath.Separator) || name == "" {
			return "", errdef.Wrap(errdef.CodeUserInput, errNoName, "cannot derive a project name from %s (use --name)", dir)
		}
	}
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

// ValidateName checks that name can be used verbatim as a file name and as a CMake
// project and target name: letters, digits, '_', '.', '+' and '-'.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return errdef.Wrap(errdef.CodeUserInput, errNoName, "invalid project name")
	case name == "." || name == "..":
		return errdef.New(errdef.CodeUserInput, "invalid project name %q", name)
	case strings.ContainsAny(name, `/\`):
		return errdef.New(errdef.CodeUserInput, "invalid project name %q: must not contain path separators", name)
	}

	for _, r := range name {
		if !isNameRune(r) {
			return errdef.New(errdef.CodeUserInput, "invalid project name %q: %q is not allowed in a CMake target name", name, r)
		}
	}
	return nil
}

func isNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '_', r == '.', r == '+', r == '-':
		return true
	}
	return false
}

// Validate checks the pairing invariants of r.
func (r Resolved) Validate() error {
	if r.Binary == r.Library {
		return errdef.New(errdef.CodeInvariant, "exactly one of binary and library must be selected")
	}
	if r.C == r.CXX {
		return errdef.New(errdef.CodeInvariant, "exactly one of C and C++ must be selected")
	}
	if r.Name == "" {
		return errdef.New(errdef.CodeInvariant, "empty project name")
	}
	return nil
}

// Extension is the source file extension of the selected dialect.
func (r Resolved) Extension() string {
	if r.CXX {
		return "cpp"
	}
	return "c"
}

// Standard returns the display form of the selected dialect's standard edition.
func (r Resolved) Standard() (string, error) {
	if r.CXX {
		return r.CXXStandard.Name()
	}
	return r.CStandard.Name()
}
