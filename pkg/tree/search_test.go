package tree

import (
	"strings"
	"testing"
)

func TestSearchVisitsChildrenBeforeSiblings(t *testing.T) {
	// Root with two children A, B (A attached first); A has its own child C.
	// A query matching both C and B must return C, because A's subtree is
	// explored before B.
	root := New("root")
	a, err := NewChild(root, "A")
	if err != nil {
		t.Fatalf("NewChild error: %v", err)
	}
	b, err := NewChildWithValue(root, "B", "match")
	if err != nil {
		t.Fatalf("NewChildWithValue error: %v", err)
	}
	c, err := NewChildWithValue(a, "C", "match")
	if err != nil {
		t.Fatalf("NewChildWithValue error: %v", err)
	}

	got := SearchByValue(root, "match")
	if got != c {
		t.Errorf("SearchByValue returned %v, want C (deep child before later sibling)", got)
	}
	_ = b
}

func TestSearchMatchesOriginFirst(t *testing.T) {
	origin := NewWithValue("origin", "v")
	if _, err := NewChildWithValue(origin, "decoy", "v"); err != nil {
		t.Fatalf("NewChildWithValue error: %v", err)
	}

	if got := SearchByValue(origin, "v"); got != origin {
		t.Error("origin itself must be visited before its children")
	}
}

func TestSearchByLabel(t *testing.T) {
	root := New("solar system")
	sun, err := NewChild(root, "sun")
	if err != nil {
		t.Fatalf("NewChild error: %v", err)
	}
	if _, err := NewChild(root, "planets"); err != nil {
		t.Fatalf("NewChild error: %v", err)
	}

	if got := SearchByLabel(root, "sun"); got != sun {
		t.Errorf("SearchByLabel(\"sun\") = %v, want the sun node", got)
	}
	if got := SearchByLabel(root, "asteroids"); got != nil {
		t.Errorf("SearchByLabel(\"asteroids\") = %v, want nil", got)
	}
}

func TestSearchExactMatchNotPrefix(t *testing.T) {
	root := New("rooted")
	if SearchByLabel(root, "root") != nil {
		t.Error("a prefix of the stored label must not match")
	}
	if SearchByLabel(root, "rooted!") != nil {
		t.Error("an extension of the stored label must not match")
	}
	if SearchByLabel(root, "rooted") != root {
		t.Error("the exact label must match")
	}
}

func TestSearchOverlengthQueryNeverMatches(t *testing.T) {
	long := strings.Repeat("q", MaxLabelLen+1)
	root := New(long) // stored truncated

	if SearchByLabel(root, long) != nil {
		t.Error("an over-length query can never equal a truncated stored field")
	}
	if SearchByLabel(root, long[:MaxLabelLen]) != root {
		t.Error("the truncated form is the stored label and must match")
	}
}

func TestSearchNilOrigin(t *testing.T) {
	if SearchByLabel(nil, "x") != nil {
		t.Error("SearchByLabel(nil, ...) should be nil")
	}
	if SearchByValue(nil, "x") != nil {
		t.Error("SearchByValue(nil, ...) should be nil")
	}
}

func TestSearchSiblingChainFromOrigin(t *testing.T) {
	// Search must also walk the origin's own sibling chain.
	head := New("head")
	if _, err := NewSibling(head, "tail"); err != nil {
		t.Fatalf("NewSibling error: %v", err)
	}

	if got := SearchByLabel(head, "tail"); got == nil || got.Label() != "tail" {
		t.Error("search should reach the origin's sibling chain")
	}
}

func TestContains(t *testing.T) {
	root := New("root")
	child, _ := NewChild(root, "child")
	grand, _ := NewChild(child, "grand")
	sib, _ := NewSibling(child, "sib")

	tests := []struct {
		name   string
		from   *Node
		target *Node
		want   bool
	}{
		{name: "self", from: root, target: root, want: true},
		{name: "direct child", from: root, target: child, want: true},
		{name: "grandchild", from: root, target: grand, want: true},
		{name: "sibling chain", from: child, target: sib, want: true},
		{name: "upward", from: grand, target: root, want: false},
		{name: "nil from", from: nil, target: root, want: false},
		{name: "nil target", from: root, target: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contains(tt.from, tt.target); got != tt.want {
				t.Errorf("contains() = %v, want %v", got, tt.want)
			}
		})
	}
}
