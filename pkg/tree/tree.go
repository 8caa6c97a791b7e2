package tree

import (
	"github.com/treemark/treemark/pkg/errors"
	"github.com/treemark/treemark/pkg/observability"
	"github.com/treemark/treemark/pkg/textfmt"
)

const (
	// MaxLabelLen is the maximum number of bytes stored in a node label.
	MaxLabelLen = 128

	// MaxValueLen is the maximum number of bytes stored in a node value.
	MaxValueLen = 256
)

// Node is a single tree component: a bounded label/value pair plus links to
// the head of its child chain and to its next sibling.
//
// Nodes are created through New and its derivatives and released through
// Destroy. The zero value is usable but carries an empty label; prefer New,
// which also reports the allocation to the tree hooks.
type Node struct {
	label   string
	value   string
	child   *Node
	sibling *Node
}

// Label returns the node label. Labels are set at construction and never
// exceed MaxLabelLen bytes.
func (n *Node) Label() string { return n.label }

// Value returns the node value, or the empty string when unset.
func (n *Node) Value() string { return n.value }

// HasValue reports whether the node carries a value.
func (n *Node) HasValue() bool { return n.value != "" }

// Child returns the head of the node's child chain, or nil.
func (n *Node) Child() *Node { return n.child }

// Sibling returns the next node at the same level, or nil.
func (n *Node) Sibling() *Node { return n.sibling }

// New allocates a node with the given label.
// Labels longer than MaxLabelLen bytes are silently truncated. The value
// starts empty and the child/sibling links start nil.
func New(label string) *Node {
	n := &Node{label: textfmt.Truncate(label, MaxLabelLen)}
	observability.Tree().OnNodeAlloc(n.label)
	return n
}

// NewWithValue allocates a node with a label and a formatted value.
// Equivalent to New followed by SetValue. Values longer than MaxValueLen
// bytes are silently truncated.
func NewWithValue(label, format string, args ...any) *Node {
	n := New(label)
	n.value = textfmt.Sprintf(MaxValueLen, format, args...)
	return n
}

// SetValue overwrites the node value with a formatted string, truncated to
// MaxValueLen bytes. Truncation is silent, never an error.
//
// Returns an INVALID_PARAMETER error if node is nil.
func SetValue(node *Node, format string, args ...any) error {
	if node == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "invalid node")
	}
	node.value = textfmt.Sprintf(MaxValueLen, format, args...)
	return nil
}

// NewChild allocates a node with the given label and attaches it to origin
// as the last child. On attachment failure the fresh node is released before
// returning, so the caller never receives a constructed-but-unattached node.
func NewChild(origin *Node, label string) (*Node, error) {
	node := New(label)
	if err := AddChild(origin, node); err != nil {
		Release(node)
		return nil, err
	}
	return node, nil
}

// NewChildWithValue allocates a node with a label and a formatted value and
// attaches it to origin as the last child.
// Equivalent to NewChild followed by SetValue, in that order.
func NewChildWithValue(origin *Node, label, format string, args ...any) (*Node, error) {
	node, err := NewChild(origin, label)
	if err != nil {
		return nil, err
	}
	node.value = textfmt.Sprintf(MaxValueLen, format, args...)
	return node, nil
}

// NewSibling allocates a node with the given label and attaches it to origin
// as the last sibling. On attachment failure the fresh node is released
// before returning.
func NewSibling(origin *Node, label string) (*Node, error) {
	node := New(label)
	if err := AddSibling(origin, node); err != nil {
		Release(node)
		return nil, err
	}
	return node, nil
}

// NewSiblingWithValue allocates a node with a label and a formatted value
// and attaches it to origin as the last sibling.
// Equivalent to NewSibling followed by SetValue, in that order.
func NewSiblingWithValue(origin *Node, label, format string, args ...any) (*Node, error) {
	node, err := NewSibling(origin, label)
	if err != nil {
		return nil, err
	}
	node.value = textfmt.Sprintf(MaxValueLen, format, args...)
	return node, nil
}

// AddChild attaches candidate to origin as the last element of origin's
// child chain. Attachment links by reference: a candidate carrying its own
// child/sibling chains is grafted as-is, so the grafted subtree must already
// satisfy the tree invariants.
//
// The candidate must not already be attached elsewhere; the package does not
// defend against double attachment, and nodes provide no parent lookup to
// recover a grafted subtree once the caller drops its reference.
//
// Returns an INVALID_PARAMETER error if either node is nil, or a
// LOOP_DETECTED error if origin is reachable from candidate (the attachment
// would create a cycle).
func AddChild(origin, candidate *Node) error {
	if origin == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "invalid origin node")
	}
	if candidate == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "invalid child node")
	}

	// Loop detection
	if contains(candidate, origin) {
		return errors.New(errors.ErrCodeLoopDetected, "child node already contains origin node")
	}

	if origin.child != nil {
		// Searching last child node
		scout := origin.child
		for scout.sibling != nil {
			scout = scout.sibling
		}
		scout.sibling = candidate
	} else {
		// First child
		origin.child = candidate
	}

	return nil
}

// AddSibling attaches candidate to origin as the last element of origin's
// sibling chain. It behaves exactly like AddChild, walking and extending
// the sibling chain directly from origin instead of from origin's child.
//
// Returns an INVALID_PARAMETER error if either node is nil, or a
// LOOP_DETECTED error if origin is reachable from candidate.
func AddSibling(origin, candidate *Node) error {
	if origin == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "invalid origin node")
	}
	if candidate == nil {
		return errors.New(errors.ErrCodeInvalidParameter, "invalid sibling node")
	}

	// Loop detection
	if contains(candidate, origin) {
		return errors.New(errors.ErrCodeLoopDetected, "sibling node already contains origin node")
	}

	if origin.sibling != nil {
		// Searching last sibling node
		scout := origin.sibling
		for scout.sibling != nil {
			scout = scout.sibling
		}
		scout.sibling = candidate
	} else {
		origin.sibling = candidate
	}

	return nil
}

// Release releases exactly one node: it severs the node's links and reports
// the release to the tree hooks without touching the child or sibling
// targets. It is the non-recursive primitive behind Destroy and the cleanup
// path of the NewChild/NewSibling constructors; for whole structures use
// Destroy. A nil node is a no-op.
func Release(node *Node) {
	if node == nil {
		return
	}
	node.child = nil
	node.sibling = nil
	observability.Tree().OnNodeFree(node.label)
}

// Destroy releases origin and every node reachable from it.
// The sibling chain is torn down first, then the child subtree, then origin
// itself; this order is normative so instrumented release sequences stay
// reproducible. A nil origin is a no-op.
//
// Destroy is the only way to reclaim a structure; there is no operation to
// detach and release a single node from the middle of a chain.
func Destroy(origin *Node) {
	if origin == nil {
		return
	}

	if origin.sibling != nil {
		Destroy(origin.sibling)
	}
	if origin.child != nil {
		Destroy(origin.child)
	}

	Release(origin)
}

// Count returns the number of nodes reachable from origin, origin included.
// A nil origin counts zero.
func Count(origin *Node) int {
	if origin == nil {
		return 0
	}
	return 1 + Count(origin.child) + Count(origin.sibling)
}
