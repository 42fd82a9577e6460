// Package options holds the enumerated values a scaffold can be configured with
// and their external string forms.
package options

import (
	"fmt"
	"strings"

	"github.com/olimci/cmake-init/pkg/errdef"
)

// VCS is the version control system to initialise in the target directory.
type VCS int

const (
	VCSNone VCS = iota
	VCSGit
)

// CStandard is an edition of The C Standard.
type CStandard int

const (
	C90 CStandard = iota
	C99
	C11
	C17
	C23
)

// CXXStandard is an edition of The C++ Standard.
type CXXStandard int

const (
	CXX98 CXXStandard = iota
	CXX11
	CXX17
	CXX20
	CXX23
	CXX26
)

const (
	DefaultVCS         = VCSNone
	DefaultCStandard   = C23
	DefaultCXXStandard = CXX23
)

type entry[T comparable] struct {
	value T
	name  string
	token string
}

var vcsTable = []entry[VCS]{
	{VCSNone, "none", ""},
	{VCSGit, "git", ""},
}

var cTable = []entry[CStandard]{
	{C90, "c90", "c_std_90"},
	{C99, "c99", "c_std_99"},
	{C11, "c11", "c_std_11"},
	{C17, "c17", "c_std_17"},
	{C23, "c23", "c_std_23"},
}

var cxxTable = []entry[CXXStandard]{
	{CXX98, "c++98", "cxx_std_98"},
	{CXX11, "c++11", "cxx_std_11"},
	{CXX17, "c++17", "cxx_std_17"},
	{CXX20, "c++20", "cxx_std_20"},
	{CXX23, "c++23", "cxx_std_23"},
	{CXX26, "c++26", "cxx_std_26"},
}

func lookup[T comparable](table []entry[T], v T, kind string) (entry[T], error) {
	for _, e := range table {
		if e.value == v {
			return e, nil
		}
	}
	var zero entry[T]
	return zero, errdef.New(errdef.CodeInvariant, "unknown %s value %d", kind, v)
}

func parse[T comparable](table []entry[T], s, kind string) (T, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, e := range table {
		if e.name == s {
			return e.value, nil
		}
	}
	var zero T
	return zero, errdef.New(errdef.CodeUserInput, "invalid %s %q (expected one of: %s)", kind, s, strings.Join(names(table), ", "))
}

func names[T comparable](table []entry[T]) []string {
	out := make([]string, len(table))
	for i, e := range table {
		out[i] = e.name
	}
	return out
}

// Name returns the external string form of v.
func (v VCS) Name() (string, error) {
	e, err := lookup(vcsTable, v, "vcs")
	return e.name, err
}

func (v VCS) String() string {
	if s, err := v.Name(); err == nil {
		return s
	}
	return fmt.Sprintf("VCS(%d)", int(v))
}

// ParseVCS parses the external form of a version control system.
func ParseVCS(s string) (VCS, error) {
	return parse(vcsTable, s, "vcs")
}

// VCSNames lists the accepted --vcs values.
func VCSNames() []string {
	return names(vcsTable)
}

// Name returns the display form of s, such as "c17".
func (s CStandard) Name() (string, error) {
	e, err := lookup(cTable, s, "C standard")
	return e.name, err
}

// FeatureToken returns the CMake compile feature requesting s, such as "c_std_17".
func (s CStandard) FeatureToken() (string, error) {
	e, err := lookup(cTable, s, "C standard")
	return e.token, err
}

func (s CStandard) String() string {
	if n, err := s.Name(); err == nil {
		return n
	}
	return fmt.Sprintf("CStandard(%d)", int(s))
}

// ParseCStandard parses the display form of a C standard edition.
func ParseCStandard(s string) (CStandard, error) {
	return parse(cTable, s, "C standard")
}

// CStandards lists every known C standard edition, oldest first.
func CStandards() []CStandard {
	out := make([]CStandard, len(cTable))
	for i, e := range cTable {
		out[i] = e.value
	}
	return out
}

// CStandardNames lists the accepted --c-standard values.
func CStandardNames() []string {
	return names(cTable)
}

// Name returns the display form of s, such as "c++20".
func (s CXXStandard) Name() (string, error) {
	e, err := lookup(cxxTable, s, "C++ standard")
	return e.name, err
}

// FeatureToken returns the CMake compile feature requesting s, such as "cxx_std_20".
func (s CXXStandard) FeatureToken() (string, error) {
	e, err := lookup(cxxTable, s, "C++ standard")
	return e.token, err
}

func (s CXXStandard) String() string {
	if n, err := s.Name(); err == nil {
		return n
	}
	return fmt.Sprintf("CXXStandard(%d)", int(s))
}

// ParseCXXStandard parses the display form of a C++ standard edition.
func ParseCXXStandard(s string) (CXXStandard, error) {
	return parse(cxxTable, s, "C++ standard")
}

// CXXStandards lists every known C++ standard edition, oldest first.
func CXXStandards() []CXXStandard {
	out := make([]CXXStandard, len(cxxTable))
	for i, e := range cxxTable {
		out[i] = e.value
	}
	return out
}

// CXXStandardNames lists the accepted --cxx-standard values.
func CXXStandardNames() []string {
	return names(cxxTable)
}
