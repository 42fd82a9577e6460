package config

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/olimci/cmake-init/pkg/errdef"
)

// File is the on-disk form of an options file. Every key is optional.
type File struct {
	VCS          string `toml:"vcs" yaml:"vcs" json:"vcs"`
	Target       string `toml:"target" yaml:"target" json:"target"`
	Language     string `toml:"language" yaml:"language" json:"language"`
	CStandard    string `toml:"c_standard" yaml:"c_standard" json:"c_standard"`
	CXXStandard  string `toml:"cxx_standard" yaml:"cxx_standard" json:"cxx_standard"`
	Name         string `toml:"name" yaml:"name" json:"name"`
	CMakeMinimum string `toml:"cmake_minimum" yaml:"cmake_minimum" json:"cmake_minimum"`
}

// LoadFile reads an options file and converts it to an Input.
func LoadFile(path string) (Input, error) {
	var f File
	if err := decodeFile(path, &f); err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return Input{}, errdef.Wrap(errdef.CodeIO, err, "reading options file")
		}
		return Input{}, errdef.Wrap(errdef.CodeConfig, err, "decoding options file %s", path)
	}
	return f.Input()
}

// Input converts the file's string keys to the paired flags of an Input.
func (f File) Input() (Input, error) {
	in := Input{
		VCS:          strings.TrimSpace(f.VCS),
		CStandard:    strings.TrimSpace(f.CStandard),
		CXXStandard:  strings.TrimSpace(f.CXXStandard),
		Name:         strings.TrimSpace(f.Name),
		CMakeMinimum: strings.TrimSpace(f.CMakeMinimum),
	}

	switch strings.ToLower(strings.TrimSpace(f.Target)) {
	case "":
	case "bin", "binary", "executable":
		in.Bin = true
	case "lib", "library":
		in.Lib = true
	default:
		return Input{}, errdef.New(errdef.CodeConfig, "options file: invalid target %q (expected bin or lib)", f.Target)
	}

	switch strings.ToLower(strings.TrimSpace(f.Language)) {
	case "":
	case "c":
		in.C = true
	case "cxx", "c++", "cpp":
		in.CXX = true
	default:
		return Input{}, errdef.New(errdef.CodeConfig, "options file: invalid language %q (expected c or cxx)", f.Language)
	}

	if in.CStandard != "" && in.CXXStandard != "" {
		return Input{}, errdef.New(errdef.CodeConfig, "options file: c_standard and cxx_standard cannot both be set")
	}

	return in, nil
}
