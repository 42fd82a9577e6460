package events

import (
	"slices"
	"testing"
)

func TestCollector(t *testing.T) {
	var forwarded []Event
	c := NewCollector(HandlerFunc(func(e Event) {
		forwarded = append(forwarded, e)
	}))

	c.Handle(Event{Action: Create, Path: "CMakeLists.txt"})
	c.Handle(Event{Action: Skip, Path: "src/main.cpp"})
	c.Handle(Event{Action: Create, Path: "task.cmake"})

	if len(forwarded) != 3 {
		t.Fatalf("forwarded %d events, want 3", len(forwarded))
	}
	if got := c.Paths(Create); !slices.Equal(got, []string{"CMakeLists.txt", "task.cmake"}) {
		t.Errorf("Paths(Create) = %v", got)
	}
	if got := c.Paths(Skip); !slices.Equal(got, []string{"src/main.cpp"}) {
		t.Errorf("Paths(Skip) = %v", got)
	}
}

func TestNilHandler(t *testing.T) {
	c := NewCollector(nil)
	c.Handle(Event{Action: Append, Path: ".gitignore"})
	if len(c.Events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(c.Events))
	}
	if got := Append.String(); got != "append" {
		t.Errorf("Append.String() = %q", got)
	}
}
