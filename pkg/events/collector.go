package events

func NewCollector(handler Handler) *Collector {
	if handler == nil {
		handler = NoopHandler{}
	}
	return &Collector{
		Events:  make([]Event, 0),
		handler: handler,
	}
}

// Collector records events before passing them on.
type Collector struct {
	Events  []Event
	handler Handler
}

func (c *Collector) Handle(event Event) {
	c.Events = append(c.Events, event)
	c.handler.Handle(event)
}

// Paths returns the paths of every recorded event with the given action, in order.
func (c *Collector) Paths(action Action) []string {
	out := make([]string, 0)
	for _, event := range c.Events {
		if event.Action == action {
			out = append(out, event.Path)
		}
	}
	return out
}
