// Package scaffold writes the files of a CMake project skeleton.
package scaffold

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/olimci/cmake-init/pkg/config"
	"github.com/olimci/cmake-init/pkg/errdef"
	"github.com/olimci/cmake-init/pkg/events"
	"github.com/olimci/cmake-init/pkg/guard"
	"github.com/olimci/cmake-init/pkg/utils/fileutils"
	"github.com/olimci/cmake-init/pkg/vcs"
)

// Result summarises one run.
type Result struct {
	// Dir is the absolute project root.
	Dir string

	Created  []string
	Appended []string
	Skipped  []string

	// VCS reports whether a repository was initialised.
	VCS bool

	DryRun   bool
	NextStep string
}

// Writer turns a resolved configuration into files on disk.
type Writer struct {
	opts *options
}

func NewWriter(opts ...Option) *Writer {
	return &Writer{opts: defaultOptions().apply(opts...)}
}

// Write scaffolds the project described by cfg into cfg.Dir.
//
// The ignore file is updated before the project definition is checked, so an
// aborted run may still have appended to it. Nothing else is written once any
// of CMakeLists.txt, task.cmake or CMakePresets.json exists.
func (w *Writer) Write(ctx context.Context, cfg config.Resolved) (*Result, error) {
	plan, err := NewPlan(cfg, w.opts.assets)
	if err != nil {
		return nil, err
	}

	g := guard.New(cfg.Dir)
	if err := g.EnsureRoot(!w.opts.dryRun); err != nil {
		return nil, err
	}

	res, err := w.Apply(g, plan)
	if err != nil {
		return res, err
	}

	if w.opts.dryRun {
		if argv := vcs.Command(cfg.VCS); len(argv) > 0 {
			w.emit(events.Event{Action: events.Run, Message: strings.Join(argv, " ")})
		}
		return res, nil
	}

	ran, err := vcs.Init(ctx, w.opts.runner, cfg.Dir, cfg.VCS)
	if err != nil {
		return res, err
	}
	if ran {
		res.VCS = true
		w.emit(events.Event{Action: events.Run, Message: strings.Join(vcs.Command(cfg.VCS), " ")})
	}

	return res, nil
}

// Apply writes plan under the guard's root. Before the first CreateOrAbort
// artefact is written, all of them are checked together.
func (w *Writer) Apply(g *guard.Guard, plan Plan) (*Result, error) {
	res := &Result{Dir: g.Root(), DryRun: w.opts.dryRun, NextStep: NextStep}
	checked := false

	for _, a := range plan {
		if a.Mode == guard.CreateOrAbort && !checked {
			if conflict, err := g.Preflight(plan.Paths(guard.CreateOrAbort)...); err != nil {
				w.emit(events.Event{Action: events.Abort, Path: conflict, Error: err})
				return res, err
			}
			checked = true
		}

		in, err := g.Inspect(a.Path, a.Mode)
		if err != nil {
			return res, err
		}

		switch in.Decision {
		case guard.Create:
			if err := w.create(g, a); err != nil {
				return res, err
			}
			res.Created = append(res.Created, a.Path)
			w.emit(events.Event{Action: events.Create, Path: a.Path})

		case guard.Append:
			var extra []byte
			if a.Extend != nil {
				extra = a.Extend(in.Content)
			}
			if len(extra) == 0 {
				res.Skipped = append(res.Skipped, a.Path)
				w.emit(events.Event{Action: events.Skip, Path: a.Path, Message: "up to date"})
				continue
			}
			if err := w.append(g, a, extra); err != nil {
				return res, err
			}
			res.Appended = append(res.Appended, a.Path)
			w.emit(events.Event{Action: events.Append, Path: a.Path, Message: strings.TrimSpace(string(extra))})

		case guard.Skip:
			res.Skipped = append(res.Skipped, a.Path)
			w.emit(events.Event{Action: events.Skip, Path: a.Path, Message: "exists"})

		case guard.Abort:
			err := errdef.Exists(a.Path)
			w.emit(events.Event{Action: events.Abort, Path: a.Path, Error: err})
			return res, err
		}
	}

	return res, nil
}

func (w *Writer) create(g *guard.Guard, a Artefact) error {
	if w.opts.dryRun {
		return nil
	}

	abs, err := g.Abs(a.Path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(abs), dirPerm); err != nil {
		return errdef.Wrap(errdef.CodeIO, err, "create directory for %s", a.Path)
	}

	perm := a.Perm
	if perm == 0 {
		perm = filePerm
	}
	if err := fileutils.AtomicCreate(abs, perm, a.Builder); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return errdef.Exists(a.Path)
		}
		return errdef.Wrap(errdef.CodeIO, err, "write %s", a.Path)
	}
	return nil
}

func (w *Writer) append(g *guard.Guard, a Artefact, extra []byte) error {
	if w.opts.dryRun {
		return nil
	}

	abs, err := g.Abs(a.Path)
	if err != nil {
		return err
	}
	err = fileutils.Append(abs, filePerm, func(out io.Writer) error {
		_, err := io.Copy(out, bytes.NewReader(extra))
		return err
	})
	if err != nil {
		return errdef.Wrap(errdef.CodeIO, err, "append to %s", a.Path)
	}
	return nil
}

func (w *Writer) emit(event events.Event) {
	event.DryRun = w.opts.dryRun
	w.opts.handler.Handle(event)
}
