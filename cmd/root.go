package cmd

import (
	"context"
	"io"
	"os"

	"github.com/olimci/cmake-init/pkg/errdef"
	"github.com/olimci/cmake-init/pkg/options"
	"github.com/olimci/cmake-init/pkg/version"
	"github.com/urfave/cli/v3"
)

var Version = version.String()

// Execute runs the command line in args. Errors the command line library raises
// itself (unknown flags, conflicting flags) are reported as user input errors.
func Execute(ctx context.Context, args []string) error {
	return execute(ctx, args, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	err := newApp(stdout, stderr).Run(ctx, args)
	if err != nil && errdef.CodeOf(err) == errdef.CodeUnknown {
		return errdef.Wrap(errdef.CodeUserInput, err, "")
	}
	return err
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "cmake-init",
		Usage:     "Scaffold a CMake project",
		ArgsUsage: "[directory]",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags:     initFlags(),
		MutuallyExclusiveFlags: []cli.MutuallyExclusiveFlags{
			{Flags: [][]cli.Flag{
				{&cli.BoolFlag{Name: "bin", Usage: "Scaffold an executable (default)"}},
				{&cli.BoolFlag{Name: "lib", Usage: "Scaffold a library"}},
			}},
			{Flags: [][]cli.Flag{
				{&cli.BoolFlag{Name: "cxx", Usage: "Use C++ (default)"}},
				{&cli.BoolFlag{Name: "c", Usage: "Use C"}},
			}},
			{Flags: [][]cli.Flag{
				{&cli.StringFlag{
					Name:      "c-standard",
					Usage:     "C standard edition (c90, c99, c11, c17, c23; used with --c)",
					Validator: validateWith(options.ParseCStandard),
				}},
				{&cli.StringFlag{
					Name:      "cxx-standard",
					Usage:     "C++ standard edition (c++98 through c++26)",
					Validator: validateWith(options.ParseCXXStandard),
				}},
			}},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return Init(ctx, cmd, stdout, stderr)
		},
		Commands: []*cli.Command{
			{
				Name:  "version",
				Usage: "print version",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runVersion(stdout)
				},
			},
			{
				Name:  "standards",
				Usage: "List the supported language standards and their CMake feature names",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return runStandards(stdout)
				},
			},
		},
	}
}

func initFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:      "vcs",
			Usage:     "Version control to initialise (none, git)",
			Validator: validateWith(options.ParseVCS),
		},
		&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Project name (defaults to the directory name)"},
		&cli.StringFlag{Name: "cmake-minimum", Usage: "Minimum CMake version (default " + version.DefaultCMake.String() + ")"},
		&cli.StringFlag{Name: "config", Usage: "Options file (.toml, .yaml, .yml, .json)"},
		&cli.StringFlag{Name: "templates", Hidden: true, Usage: "Directory of <name>.tmpl files replacing the built-in templates"},
		&cli.BoolFlag{Name: "dry-run", Usage: "Report what would be written without writing"},
		&cli.BoolFlag{Name: "interactive", Aliases: []string{"i"}, Usage: "Prompt for options not given as flags"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "Suppress output"},
	}
}

func validateWith[T any](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(s)
		return err
	}
}
