package cli

import (
	"strings"
	"testing"
)

func TestStatsLine(t *testing.T) {
	tests := []struct {
		name      string
		nodeCount int
		cached    bool
		want      []string
		notWant   []string
	}{
		{
			name:      "fresh with count",
			nodeCount: 5,
			cached:    false,
			want:      []string{"5 nodes", iconFresh},
		},
		{
			name:      "cached without count",
			nodeCount: 0,
			cached:    true,
			want:      []string{iconCached},
			notWant:   []string{"0 nodes"},
		},
		{
			name:      "cached with count",
			nodeCount: 3,
			cached:    true,
			want:      []string{"3 nodes", iconCached},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := statsLine(tt.nodeCount, tt.cached)
			for _, want := range tt.want {
				if !strings.Contains(line, want) {
					t.Errorf("line %q missing %q", line, want)
				}
			}
			for _, notWant := range tt.notWant {
				if strings.Contains(line, notWant) {
					t.Errorf("line %q should not contain %q", line, notWant)
				}
			}
		})
	}
}
