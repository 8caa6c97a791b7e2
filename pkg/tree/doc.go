// Package tree implements the prioritized label/value tree at the heart of
// treemark.
//
// The tree is an n-ary hierarchy stored as chains of nodes: each node points
// at the first of its children (vertical direction) and at its next sibling
// (horizontal direction). A node's children are therefore not a collection
// but a linked chain reachable via Child, then Sibling, Sibling, ...
//
//	┌──────┐
//	│ node │
//	└──┼───┘ ┌──────┐ ┌──────┐ ┌──────┐
//	   └─────┼ node ┼─┼ node ┼─┼ node │
//	         └──┼───┘ └──────┘ └──┼───┘ ┌──────┐ ┌──────┐
//	            │                 └─────┼ node ┼─┼ node │
//	            │                       └──────┘ └──────┘
//	            │     ┌──────┐
//	            └─────┼ node │
//	                  └──────┘
//
// Each node carries a pair of bounded text fields: a required label and an
// optional value. The purpose of the structure is to prioritize data so it
// can later be transformed into a markup language such as XML.
//
// # Ownership
//
// A node exclusively owns its child chain and its sibling chain; there must
// be exactly one owning reference to any node, and nodes hold no
// back-reference to their parent or preceding sibling. Attachment is by
// reference: grafting a fully built subtree links it in place without
// copying. AddChild and AddSibling reject any attachment that would make a
// node reachable from itself, which is the only structural invariant
// enforced at runtime.
//
// Trees are torn down explicitly with Destroy, which releases every node
// reachable from the origin. The package is not safe for concurrent use on
// overlapping trees.
package tree
