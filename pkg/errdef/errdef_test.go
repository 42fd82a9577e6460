package errdef

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestWrapNil(t *testing.T) {
	if err := Wrap(CodeIO, nil, "ignored"); err != nil {
		t.Fatalf("Wrap(nil) = %v, want nil", err)
	}
}

func TestErrorText(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{New(CodeUserInput, "bad %s", "flag"), "bad flag"},
		{Wrap(CodeIO, fs.ErrPermission, "write %s", "a.txt"), "write a.txt: permission denied"},
		{Wrap(CodeIO, fs.ErrPermission, ""), "permission denied"},
		{&Error{Code: CodeConfig}, "config"},
		{Exists("CMakeLists.txt"), "CMakeLists.txt: already exists"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestCodes(t *testing.T) {
	wrapped := fmt.Errorf("scaffold: %w", Exists("task.cmake"))

	if got := CodeOf(wrapped); got != CodeArtifactConflict {
		t.Errorf("CodeOf = %s, want %s", got, CodeArtifactConflict)
	}
	if !errors.Is(wrapped, ErrArtifactExists) {
		t.Errorf("wrapped error lost ErrArtifactExists")
	}
	if got := CodeOf(errors.New("plain")); got != CodeUnknown {
		t.Errorf("CodeOf(plain) = %s", got)
	}
	if got := New("", "x").(*Error).Code; got != CodeUnknown {
		t.Errorf("empty code = %q, want unknown", got)
	}
	if Is(nil, CodeUnknown) {
		t.Errorf("Is(nil) = true")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{New(CodeUserInput, "bad"), 2},
		{fmt.Errorf("ctx: %w", New(CodeUserInput, "bad")), 2},
		{Exists("CMakeLists.txt"), 1},
		{New(CodeInvariant, "broken"), 1},
		{errors.New("plain"), 1},
	}

	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
