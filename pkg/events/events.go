package events

// Action is what the scaffold did, or would do, with one artifact.
type Action uint8

const (
	Create Action = iota
	Append
	Skip
	Abort
	Run
)

func (a Action) String() string {
	switch a {
	case Create:
		return "create"
	case Append:
		return "append"
	case Skip:
		return "skip"
	case Abort:
		return "abort"
	case Run:
		return "run"
	default:
		return "unknown"
	}
}

type Event struct {
	Action  Action
	Path    string
	Message string
	DryRun  bool
	Error   error
}

type Handler interface {
	Handle(event Event)
}

// NoopHandler drops every event.
type NoopHandler struct{}

func (NoopHandler) Handle(Event) {}

// HandlerFunc adapts a function to a Handler.
type HandlerFunc func(event Event)

func (h HandlerFunc) Handle(event Event) {
	h(event)
}
