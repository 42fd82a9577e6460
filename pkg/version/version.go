package version

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Version of cmake-init itself.
const (
	Major = 0
	Minor = 1
	Patch = 0
)

var ErrInvalidVersion = errors.New("invalid version")

var (
	// DefaultCMake is the cmake_minimum_required written into new projects.
	DefaultCMake = Version{Major: 3, Minor: 29, Patch: 0}

	// MinimumCMake is the oldest CMake that understands the generated preset schema.
	MinimumCMake = Version{Major: 3, Minor: 28, Patch: 0}
)

// PresetSchema is the CMakePresets.json "version" written into new projects.
const PresetSchema = 8

type Version struct {
	Major int
	Minor int
	Patch int
}

func Current() Version {
	return Version{Major: Major, Minor: Minor, Patch: Patch}
}

// String gives the version of cmake-init.
func String() string {
	return Current().String()
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse accepts "x.y" or "x.y.z", with an optional leading "v".
func Parse(s string) (Version, error) {
	raw := s
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")

	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 3 {
		return Version{}, fmt.Errorf("%w: %q (expected x.y or x.y.z)", ErrInvalidVersion, raw)
	}

	var nums [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("%w: %q (bad component %q)", ErrInvalidVersion, raw, part)
		}
		nums[i] = n
	}

	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, other.Patch)
}

func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}
