// Package markup declares the contract for rendering a prioritized tree
// into a markup byte encoding.
//
// The intended encoding maps labels to element names, values to element
// content, child links to nesting, and sibling links to document order. The
// exact byte layout is deliberately not fixed yet: ToXML declares the
// contract and always reports NOT_IMPLEMENTED, and callers must treat the
// destination buffer contents as undefined until an encoding is specified.
package markup

import (
	"github.com/treemark/treemark/pkg/bytebuf"
	"github.com/treemark/treemark/pkg/errors"
	"github.com/treemark/treemark/pkg/tree"
)

// Encoder renders the whole structure reachable from origin into a
// fixed-capacity destination buffer.
type Encoder interface {
	Encode(dst *bytebuf.Buffer, origin *tree.Node) error
}

// ToXML converts origin and all its associated nodes into an XML byte
// encoding placed in dst.
//
// Not currently available: always returns a NOT_IMPLEMENTED error and
// leaves dst untouched. Once implemented it will report the number of bytes
// written through the buffer's used area.
func ToXML(dst *bytebuf.Buffer, origin *tree.Node) error {
	return errors.New(errors.ErrCodeNotImplemented, "feature not currently available")
}

// XML is the Encoder for the XML byte encoding. It carries no state; the
// zero value is ready to use.
type XML struct{}

// Encode implements Encoder by delegating to ToXML.
func (XML) Encode(dst *bytebuf.Buffer, origin *tree.Node) error {
	return ToXML(dst, origin)
}

var _ Encoder = XML{}
