package textfmt

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "shorter than max", in: "abc", max: 10, want: "abc"},
		{name: "exactly max", in: "abcde", max: 5, want: "abcde"},
		{name: "longer than max", in: "abcdefgh", max: 5, want: "abcde"},
		{name: "zero max", in: "abc", max: 0, want: ""},
		{name: "negative max", in: "abc", max: -1, want: ""},
		{name: "empty input", in: "", max: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestSprintf(t *testing.T) {
	if got := Sprintf(16, "%s-%d", "node", 42); got != "node-42" {
		t.Errorf("Sprintf() = %q, want %q", got, "node-42")
	}

	// Output never exceeds the cap, and the kept prefix is exact.
	long := strings.Repeat("x", 100)
	got := Sprintf(10, "%s", long)
	if len(got) != 10 {
		t.Errorf("len = %d, want 10", len(got))
	}
	if got != long[:10] {
		t.Errorf("Sprintf() = %q, want first 10 bytes of input", got)
	}
}

func TestSprintfNoVerbs(t *testing.T) {
	if got := Sprintf(32, "plain text"); got != "plain text" {
		t.Errorf("Sprintf() = %q, want %q", got, "plain text")
	}
}
