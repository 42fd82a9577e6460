package version

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Version
		wantErr bool
	}{
		{name: "full", input: "3.29.0", want: Version{3, 29, 0}},
		{name: "major minor", input: "3.30", want: Version{3, 30, 0}},
		{name: "leading v", input: "v4.0.1", want: Version{4, 0, 1}},
		{name: "padded", input: " 3.28.2 ", want: Version{3, 28, 2}},
		{name: "single component", input: "3", wantErr: true},
		{name: "too many", input: "3.29.0.1", wantErr: true},
		{name: "negative", input: "3.-1", wantErr: true},
		{name: "garbage", input: "three.two", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidVersion) {
					t.Fatalf("Parse(%q) error = %v, want ErrInvalidVersion", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompare(t *testing.T) {
	if !MinimumCMake.Less(DefaultCMake) {
		t.Fatalf("minimum %s should be below default %s", MinimumCMake, DefaultCMake)
	}
	if c := (Version{3, 29, 1}).Compare(Version{3, 29, 0}); c != 1 {
		t.Errorf("Compare = %d, want 1", c)
	}
	if c := (Version{3, 29, 0}).Compare(Version{3, 29, 0}); c != 0 {
		t.Errorf("Compare = %d, want 0", c)
	}
}
