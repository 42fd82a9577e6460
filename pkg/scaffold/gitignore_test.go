package scaffold

import "testing"

func TestMatchesIgnoreEntry(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"build", true},
		{"build/", true},
		{"/build", true},
		{"/build/", true},
		{"  build  ", true},
		{"build\r", true},
		{"build # generated", true},
		{"build#x", false},
		{"# build", false},
		{"!build", false},
		{"builds", false},
		{"build/*", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := matchesIgnoreEntry(tt.line, IgnoreEntry); got != tt.want {
			t.Errorf("matchesIgnoreEntry(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestIgnoreAppendix(t *testing.T) {
	extend := ignoreAppendix(IgnoreEntry)

	if got := extend([]byte("a\n/build/\n")); got != nil {
		t.Errorf("existing entry: got %q, want nil", got)
	}
	if got := string(extend([]byte("a"))); got != "\nbuild\n" {
		t.Errorf("no trailing newline: got %q", got)
	}
	if got := string(extend(nil)); got != "build\n" {
		t.Errorf("empty: got %q", got)
	}
}
