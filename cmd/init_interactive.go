package cmd

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/olimci/cmake-init/pkg/config"
	"github.com/olimci/cmake-init/pkg/errdef"
	"github.com/olimci/cmake-init/pkg/options"
)

const (
	targetBin   = "bin"
	targetLib   = "lib"
	languageC   = "c"
	languageCXX = "cxx"
)

// promptInput asks for every option in left unset. Options given as flags or in
// the options file are not asked for again.
func promptInput(ctx context.Context, in config.Input, out io.Writer) (config.Input, error) {
	result := in

	target := targetBin
	language := languageCXX
	vcs := options.DefaultVCS.String()
	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = defaultName(in.Dir)
	}

	askLanguage := !in.C && !in.CXX

	var fields []huh.Field
	if !in.Bin && !in.Lib {
		fields = append(fields, huh.NewSelect[string]().
			Title("Target").
			Options(
				huh.NewOption("executable", targetBin),
				huh.NewOption("library", targetLib),
			).
			Value(&target))
	}
	if askLanguage {
		fields = append(fields, huh.NewSelect[string]().
			Title("Language").
			Options(
				huh.NewOption("C++", languageCXX),
				huh.NewOption("C", languageC),
			).
			Value(&language))
	}
	if in.VCS == "" {
		fields = append(fields, huh.NewSelect[string]().
			Title("Version control").
			Options(huh.NewOptions(options.VCSNames()...)...).
			Value(&vcs))
	}
	if strings.TrimSpace(in.Name) == "" {
		fields = append(fields, huh.NewInput().
			Title("Project name").
			Value(&name).
			Validate(config.ValidateName))
	}

	if len(fields) > 0 {
		if err := runForm(ctx, out, huh.NewGroup(fields...)); err != nil {
			return in, err
		}

		if !in.Bin && !in.Lib {
			result.Bin, result.Lib = target == targetBin, target == targetLib
		}
		if askLanguage {
			result.C, result.CXX = language == languageC, language == languageCXX
		}
		if in.VCS == "" {
			result.VCS = vcs
		}
		if strings.TrimSpace(in.Name) == "" {
			result.Name = name
		}
	}

	if result.CStandard != "" || result.CXXStandard != "" {
		return result, nil
	}

	useC := result.C && !result.CXX
	standard := options.DefaultCXXStandard.String()
	names := options.CXXStandardNames()
	title := "C++ standard"
	if useC {
		standard = options.DefaultCStandard.String()
		names = options.CStandardNames()
		title = "C standard"
	}

	err := runForm(ctx, out, huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(huh.NewOptions(names...)...).
			Value(&standard),
	))
	if err != nil {
		return in, err
	}

	if useC {
		result.CStandard = standard
	} else {
		result.CXXStandard = standard
	}
	return result, nil
}

func runForm(ctx context.Context, out io.Writer, groups ...*huh.Group) error {
	keys := huh.NewDefaultKeyMap()
	keys.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))

	form := huh.NewForm(groups...).
		WithKeyMap(keys).
		WithProgramOptions(tea.WithOutput(out))

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return errdef.Wrap(errdef.CodeUserInput, err, "cancelled")
		}
		return errdef.Wrap(errdef.CodeIO, err, "running prompts")
	}
	return nil
}

func defaultName(dir string) string {
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	return filepath.Base(abs)
}
