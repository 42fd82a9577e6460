package options

import (
	"testing"

	"github.com/olimci/cmake-init/pkg/errdef"
)

func TestCStandardRoundTrip(t *testing.T) {
	for _, std := range CStandards() {
		name, err := std.Name()
		if err != nil {
			t.Fatalf("%d: Name: %v", std, err)
		}
		got, err := ParseCStandard(name)
		if err != nil {
			t.Fatalf("ParseCStandard(%q): %v", name, err)
		}
		if got != std {
			t.Errorf("ParseCStandard(%q) = %v, want %v", name, got, std)
		}

		token, err := std.FeatureToken()
		if err != nil {
			t.Fatalf("%s: FeatureToken: %v", name, err)
		}
		if token == name {
			t.Errorf("%s: feature token equals display form", name)
		}
		again, _ := std.FeatureToken()
		if again != token {
			t.Errorf("%s: feature token not stable: %q then %q", name, token, again)
		}
	}
}

func TestCXXStandardRoundTrip(t *testing.T) {
	for _, std := range CXXStandards() {
		name, err := std.Name()
		if err != nil {
			t.Fatalf("%d: Name: %v", std, err)
		}
		got, err := ParseCXXStandard(name)
		if err != nil {
			t.Fatalf("ParseCXXStandard(%q): %v", name, err)
		}
		if got != std {
			t.Errorf("ParseCXXStandard(%q) = %v, want %v", name, got, std)
		}

		token, err := std.FeatureToken()
		if err != nil {
			t.Fatalf("%s: FeatureToken: %v", name, err)
		}
		if token == name {
			t.Errorf("%s: feature token equals display form", name)
		}
	}
}

func TestFeatureTokens(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{name: "c17", got: C17.FeatureToken, want: "c_std_17"},
		{name: "c90", got: C90.FeatureToken, want: "c_std_90"},
		{name: "c++23", got: CXX23.FeatureToken, want: "cxx_std_23"},
		{name: "c++98", got: CXX98.FeatureToken, want: "cxx_std_98"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	if _, err := ParseCStandard("c++17"); !errdef.Is(err, errdef.CodeUserInput) {
		t.Errorf("ParseCStandard(c++17) error = %v, want user-input", err)
	}
	if _, err := ParseCXXStandard("c17"); !errdef.Is(err, errdef.CodeUserInput) {
		t.Errorf("ParseCXXStandard(c17) error = %v, want user-input", err)
	}
	if _, err := ParseVCS("svn"); !errdef.Is(err, errdef.CodeUserInput) {
		t.Errorf("ParseVCS(svn) error = %v, want user-input", err)
	}
}

func TestParseNormalizesCase(t *testing.T) {
	got, err := ParseCXXStandard(" C++20 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != CXX20 {
		t.Errorf("got %v, want c++20", got)
	}

	vcs, err := ParseVCS("Git")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if vcs != VCSGit {
		t.Errorf("got %v, want git", vcs)
	}
}

func TestUnknownValueIsInvariantViolation(t *testing.T) {
	if _, err := CStandard(42).FeatureToken(); !errdef.Is(err, errdef.CodeInvariant) {
		t.Errorf("CStandard(42).FeatureToken() error = %v, want invariant", err)
	}
	if _, err := CXXStandard(-1).Name(); !errdef.Is(err, errdef.CodeInvariant) {
		t.Errorf("CXXStandard(-1).Name() error = %v, want invariant", err)
	}
	if _, err := VCS(7).Name(); !errdef.Is(err, errdef.CodeInvariant) {
		t.Errorf("VCS(7).Name() error = %v, want invariant", err)
	}
	if got := CStandard(42).String(); got != "CStandard(42)" {
		t.Errorf("String() = %q", got)
	}
}
