package scaffold

import (
	"github.com/olimci/cmake-init/pkg/config"
	"github.com/olimci/cmake-init/pkg/guard"
	"github.com/olimci/cmake-init/pkg/render"
	"github.com/olimci/cmake-init/pkg/version"
)

const (
	IgnoreFile  = ".gitignore"
	BuildFile   = "CMakeLists.txt"
	TaskFile    = "task.cmake"
	PresetsFile = "CMakePresets.json"
)

// NextStep is the command that configures and builds a fresh skeleton.
const NextStep = "cmake --workflow --preset default"

// Data is the template data for cfg.
func Data(cfg config.Resolved) (map[string]any, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cStd, err := cfg.CStandard.FeatureToken()
	if err != nil {
		return nil, err
	}
	cxxStd, err := cfg.CXXStandard.FeatureToken()
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"name":          cfg.Name,
		"bin":           cfg.Binary,
		"lib":           cfg.Library,
		"c":             cfg.C,
		"cxx":           cfg.CXX,
		"c_std":         cStd,
		"cxx_std":       cxxStd,
		"cmake_minimum": cfg.CMakeMinimum.String(),
		"cmake_major":   cfg.CMakeMinimum.Major,
		"cmake_minor":   cfg.CMakeMinimum.Minor,
		"cmake_patch":   cfg.CMakeMinimum.Patch,
		"preset_schema": version.PresetSchema,
	}, nil
}

// NewPlan renders every artefact for cfg. Order matters: the ignore file comes
// first, then the project definition, then the starter sources.
func NewPlan(cfg config.Resolved, assets *render.Assets) (Plan, error) {
	if assets == nil {
		assets = render.Builtin()
	}

	data, err := Data(cfg)
	if err != nil {
		return nil, err
	}

	ignore, err := assets.Render("gitignore", data)
	if err != nil {
		return nil, err
	}
	ignoreFile := TextArtefact(IgnoreFile, guard.CreateOrAppend, ignore)
	ignoreFile.Extend = ignoreAppendix(IgnoreEntry)
	plan := Plan{ignoreFile}

	core := []struct {
		path, tmpl string
		exec       bool
	}{
		{BuildFile, "CMakeLists.txt", false},
		{TaskFile, "task.cmake", true},
		{PresetsFile, "CMakePresets.json", false},
	}
	for _, c := range core {
		text, err := assets.Render(c.tmpl, data)
		if err != nil {
			return nil, err
		}
		a := TextArtefact(c.path, guard.CreateOrAbort, text)
		if c.exec {
			a = a.Executable()
		}
		plan = append(plan, a)
	}

	starters, err := starterArtefacts(cfg, assets, data)
	if err != nil {
		return nil, err
	}
	return append(plan, starters...), nil
}

func starterArtefacts(cfg config.Resolved, assets *render.Assets, data map[string]any) (Plan, error) {
	ext := cfg.Extension()

	if cfg.Binary {
		text, err := assets.Render("main."+ext, data)
		if err != nil {
			return nil, err
		}
		return Plan{TextArtefact("src/main."+ext, guard.CreateIfAbsent, text)}, nil
	}

	umbrella, err := assets.Render("umbrella.h", data)
	if err != nil {
		return nil, err
	}
	return Plan{
		TextArtefact("src/lib."+ext, guard.CreateIfAbsent, ""),
		TextArtefact("src/lib.h", guard.CreateIfAbsent, ""),
		TextArtefact("include/"+cfg.Name+".h", guard.CreateIfAbsent, umbrella),
	}, nil
}
