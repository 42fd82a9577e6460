package scaffold

import (
	"github.com/olimci/cmake-init/pkg/events"
	"github.com/olimci/cmake-init/pkg/render"
	"github.com/olimci/cmake-init/pkg/vcs"
)

func defaultOptions() *options {
	return &options{
		handler: events.NoopHandler{},
		assets:  render.Builtin(),
		runner:  vcs.ExecRunner,
	}
}

type options struct {
	handler events.Handler
	assets  *render.Assets
	runner  vcs.Runner
	dryRun  bool
}

func (o *options) apply(opts ...Option) *options {
	for _, opt := range opts {
		opt(o)
	}

	return o
}

type Option func(o *options)

// WithHandler receives an event for every decision the writer makes.
func WithHandler(handler events.Handler) Option {
	if handler == nil {
		handler = events.NoopHandler{}
	}

	return func(o *options) {
		o.handler = handler
	}
}

// WithAssets replaces the built-in templates.
func WithAssets(assets *render.Assets) Option {
	return func(o *options) {
		if assets != nil {
			o.assets = assets
		}
	}
}

// WithRunner sets how VCS commands are executed.
func WithRunner(runner vcs.Runner) Option {
	return func(o *options) {
		if runner != nil {
			o.runner = runner
		}
	}
}

// WithDryRun reports every decision without touching the filesystem.
func WithDryRun(dryRun bool) Option {
	return func(o *options) {
		o.dryRun = dryRun
	}
}
