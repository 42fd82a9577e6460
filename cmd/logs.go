package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/olimci/cmake-init/pkg/events"
)

// LogLevelEnv selects the logger's level.
const LogLevelEnv = "CMAKE_INIT_LOG"

func newLogger(out io.Writer, quiet bool) *log.Logger {
	logger := log.NewWithOptions(out, log.Options{Prefix: "cmake-init"})

	level := log.InfoLevel
	if quiet {
		level = log.ErrorLevel
	}
	if v := strings.TrimSpace(os.Getenv(LogLevelEnv)); v != "" {
		parsed, err := log.ParseLevel(v)
		if err != nil {
			logger.Warn("ignoring log level", "env", LogLevelEnv, "value", v, "err", err)
		} else {
			level = parsed
		}
	}
	logger.SetLevel(level)

	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func successStyle(out io.Writer) lipgloss.Style {
	if !isTerminal(out) {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#a6e3a1")) // green
}

// eventLogger prints one line per scaffold decision and mirrors it to the logger.
type eventLogger struct {
	logger *log.Logger
	out    io.Writer
	quiet  bool
	mu     sync.Mutex

	actionStyles map[events.Action]lipgloss.Style
}

func newEventLogger(logger *log.Logger, out io.Writer, quiet bool) *eventLogger {
	l := &eventLogger{
		logger: logger,
		out:    out,
		quiet:  quiet,
	}

	if !isTerminal(out) {
		return l
	}

	l.actionStyles = map[events.Action]lipgloss.Style{
		events.Create: lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")), // green
		events.Append: lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")), // blue
		events.Skip:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6c7086")), // muted
		events.Abort:  lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8")), // red
		events.Run:    lipgloss.NewStyle().Foreground(lipgloss.Color("#f9e2af")), // yellow
	}
	return l
}

func (l *eventLogger) Handle(event events.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logger.Debug(event.Action.String(), "path", event.Path, "message", event.Message, "dry_run", event.DryRun)

	if event.Action == events.Abort {
		l.logger.Error("refusing to overwrite", "path", event.Path)
		return
	}
	if l.quiet {
		return
	}

	fmt.Fprintln(l.out, l.format(event))
}

func (l *eventLogger) format(event events.Event) string {
	label := event.Action.String()
	if style, ok := l.actionStyles[event.Action]; ok {
		label = style.Render(fmt.Sprintf("%-6s", label))
	} else {
		label = fmt.Sprintf("%-6s", label)
	}

	var b strings.Builder
	if event.DryRun {
		b.WriteString("(dry run) ")
	}
	b.WriteString(label)

	subject := event.Path
	if event.Action == events.Run {
		subject = event.Message
	}
	if subject != "" {
		b.WriteString(" ")
		b.WriteString(subject)
	}
	if event.Action == events.Skip && event.Message != "" {
		b.WriteString(" (")
		b.WriteString(event.Message)
		b.WriteString(")")
	}

	return b.String()
}
