package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/olimci/cmake-init/pkg/config"
	"github.com/olimci/cmake-init/pkg/errdef"
	"github.com/olimci/cmake-init/pkg/render"
	"github.com/olimci/cmake-init/pkg/scaffold"
	"github.com/urfave/cli/v3"
)

func Init(ctx context.Context, cmd *cli.Command, stdout, stderr io.Writer) error {
	if cmd.NArg() > 1 {
		return errdef.New(errdef.CodeUserInput, "expected at most one directory, got %d arguments", cmd.NArg())
	}

	in, err := gatherInput(cmd)
	if err != nil {
		return err
	}

	quiet := cmd.Bool("quiet")
	logger := newLogger(stderr, quiet)

	if cmd.Bool("interactive") {
		if !isTerminal(os.Stdin) || !isTerminal(stderr) {
			return errdef.New(errdef.CodeUserInput, "--interactive needs a terminal")
		}
		if in, err = promptInput(ctx, in, stderr); err != nil {
			return err
		}
	}

	cfg, err := config.Resolve(in)
	if err != nil {
		return err
	}

	logger.Debug("resolved options",
		"dir", cfg.Dir,
		"name", cfg.Name,
		"library", cfg.Library,
		"cxx", cfg.CXX,
		"vcs", cfg.VCS,
		"cmake", cfg.CMakeMinimum,
	)

	opts := []scaffold.Option{
		scaffold.WithHandler(newEventLogger(logger, stdout, quiet)),
		scaffold.WithDryRun(cmd.Bool("dry-run")),
	}
	if dir := cmd.String("templates"); dir != "" {
		assets, err := loadTemplates(dir)
		if err != nil {
			return err
		}
		logger.Debug("using templates", "dir", dir)
		opts = append(opts, scaffold.WithAssets(assets))
	}

	writer := scaffold.NewWriter(opts...)

	result, err := writer.Write(ctx, cfg)
	if err != nil {
		return err
	}

	if !quiet {
		printSummary(stdout, cfg, result)
	}
	return nil
}

// gatherInput merges the options file, if any, with the flags set on cmd.
func gatherInput(cmd *cli.Command) (config.Input, error) {
	flags := config.Input{
		VCS:          cmd.String("vcs"),
		Bin:          cmd.Bool("bin"),
		Lib:          cmd.Bool("lib"),
		C:            cmd.Bool("c"),
		CXX:          cmd.Bool("cxx"),
		CStandard:    cmd.String("c-standard"),
		CXXStandard:  cmd.String("cxx-standard"),
		Name:         cmd.String("name"),
		CMakeMinimum: cmd.String("cmake-minimum"),
	}
	if cmd.NArg() > 0 {
		flags.Dir = cmd.Args().First()
	}

	path := cmd.String("config")
	if path == "" {
		return flags, nil
	}

	file, err := config.LoadFile(path)
	if err != nil {
		return config.Input{}, err
	}
	return file.Overlay(flags), nil
}

// loadTemplates reads a template directory that replaces every built-in template.
func loadTemplates(dir string) (*render.Assets, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errdef.Wrap(errdef.CodeUserInput, err, "templates")
	}
	if !info.IsDir() {
		return nil, errdef.New(errdef.CodeUserInput, "templates: %s is not a directory", dir)
	}

	required, err := render.Builtin().Names()
	if err != nil {
		return nil, err
	}
	assets := render.FromFS(os.DirFS(dir), ".")
	if err := assets.Require(required...); err != nil {
		return nil, err
	}
	return assets, nil
}

func printSummary(out io.Writer, cfg config.Resolved, result *scaffold.Result) {
	kind := "executable"
	if cfg.Library {
		kind = "library"
	}
	std, _ := cfg.Standard()

	if result.DryRun {
		fmt.Fprintf(out, "Dry run: %d files would be created, %d appended, %d skipped.\n",
			len(result.Created), len(result.Appended), len(result.Skipped))
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, successStyle(out).Render(fmt.Sprintf("Created %s %s (%s) in %s", kind, cfg.Name, std, result.Dir)))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  cd %s\n", result.Dir)
	fmt.Fprintf(out, "  %s\n", result.NextStep)
}
