// Package manifest loads tree definitions from TOML documents.
//
// A manifest describes one root node and, through nested [[nodes]] tables,
// its whole hierarchy. Document order of the [[nodes]] arrays is preserved
// as sibling order in the resulting tree.
package manifest

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/treemark/treemark/pkg/errors"
	"github.com/treemark/treemark/pkg/tree"
)

// Document is the TOML shape of a single node and its descendants.
type Document struct {
	Label string     `toml:"label"`
	Value string     `toml:"value"`
	Nodes []Document `toml:"nodes"`
}

// Load reads a TOML manifest from disk and builds the tree it describes.
func Load(path string) (*tree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to read manifest %s", path)
	}
	return Parse(data)
}

// Parse builds a tree from raw TOML manifest bytes. Labels are required on
// every node; values are optional. On any failure no nodes leak: the partial
// tree built so far is destroyed before returning.
func Parse(data []byte) (*tree.Node, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "failed to parse manifest")
	}

	root, err := build(&doc)
	if err != nil {
		return nil, err
	}
	return root, nil
}

func build(doc *Document) (*tree.Node, error) {
	if doc.Label == "" {
		return nil, errors.New(errors.ErrCodeInvalidManifest, "node without a label")
	}

	node := tree.New(doc.Label)
	if doc.Value != "" {
		if err := tree.SetValue(node, "%s", doc.Value); err != nil {
			tree.Destroy(node)
			return nil, err
		}
	}

	for i := range doc.Nodes {
		child, err := build(&doc.Nodes[i])
		if err != nil {
			tree.Destroy(node)
			return nil, err
		}
		if err := tree.AddChild(node, child); err != nil {
			tree.Destroy(child)
			tree.Destroy(node)
			return nil, err
		}
	}
	return node, nil
}
