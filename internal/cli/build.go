package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/treemark/treemark/pkg/manifest"
	"github.com/treemark/treemark/pkg/tree"
)

// newBuildCmd creates the build command for loading and inspecting a manifest.
func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <manifest.toml>",
		Short: "Load a manifest and print the resulting tree",
		Long: `Load a TOML manifest and print the tree it describes.

The manifest declares one root node and, through nested [[nodes]] tables,
its whole hierarchy. Document order is preserved as sibling order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			root, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			defer tree.Destroy(root)

			count := tree.Count(root)
			prog.done(fmt.Sprintf("Built %d nodes", count))

			printTree(root)
			printStats(count, false)
			return nil
		},
	}
}

// printTree prints the hierarchy with two-space indentation per depth level.
func printTree(root *tree.Node) {
	var walk func(n *tree.Node, depth int)
	walk = func(n *tree.Node, depth int) {
		for ; n != nil; n = n.Sibling() {
			line := strings.Repeat("  ", depth) + n.Label()
			if n.HasValue() {
				line += " " + StyleDim.Render("= "+n.Value())
			}
			fmt.Println(line)
			walk(n.Child(), depth+1)
		}
	}
	fmt.Println(StyleTitle.Render(root.Label()))
	walk(root.Child(), 1)
}
