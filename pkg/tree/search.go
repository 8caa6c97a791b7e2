package tree

// searchField selects which node component a search matches on.
type searchField int

const (
	searchByLabel searchField = iota
	searchByValue
)

// SearchByLabel returns the first node whose label equals label, exploring
// the tree path from origin depth-first, children before siblings: origin
// itself is visited first, then origin's entire child subtree, then origin's
// sibling chain. Returns nil if no node matches or origin is nil.
func SearchByLabel(origin *Node, label string) *Node {
	return searchByComponent(origin, label, searchByLabel)
}

// SearchByValue returns the first node whose value equals value, in the same
// children-before-siblings traversal order as SearchByLabel.
// Returns nil if no node matches or origin is nil.
func SearchByValue(origin *Node, value string) *Node {
	return searchByComponent(origin, value, searchByValue)
}

// searchByComponent walks the tree path from origin, children first, and
// returns the first node whose selected component equals match. Stored
// fields are truncated at construction, so an over-length query can never
// match.
func searchByComponent(origin *Node, match string, field searchField) *Node {
	if origin == nil {
		return nil
	}

	switch field {
	case searchByLabel:
		if origin.label == match {
			return origin
		}
	case searchByValue:
		if origin.value == match {
			return origin
		}
	}

	if origin.child != nil {
		if scout := searchByComponent(origin.child, match, field); scout != nil {
			return scout
		}
	}

	if origin.sibling != nil {
		if scout := searchByComponent(origin.sibling, match, field); scout != nil {
			return scout
		}
	}

	return nil
}

// contains reports whether the tree path from (and including) from reaches
// target, following child edges before sibling edges. It is the loop guard
// behind AddChild and AddSibling, called as contains(candidate, origin).
// Nil inputs are never contained.
func contains(from, target *Node) bool {
	if from == nil || target == nil {
		return false
	}

	if from == target {
		return true
	}

	if from.child != nil && contains(from.child, target) {
		return true
	}
	if from.sibling != nil && contains(from.sibling, target) {
		return true
	}

	return false
}
