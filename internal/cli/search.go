package cli

import (
	"github.com/spf13/cobra"

	"github.com/treemark/treemark/pkg/errors"
	"github.com/treemark/treemark/pkg/manifest"
	"github.com/treemark/treemark/pkg/tree"
)

// newSearchCmd creates the search command for finding a node in a manifest.
func newSearchCmd() *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "search <manifest.toml> <query>",
		Short: "Find a node by label or value",
		Long: `Find the first node whose label or value matches the query exactly.

The walk starts at the root, then descends into children before moving
along siblings, so deeper matches win over later top-level ones.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			defer tree.Destroy(root)

			var match *tree.Node
			switch by {
			case "label":
				match = tree.SearchByLabel(root, args[1])
			case "value":
				match = tree.SearchByValue(root, args[1])
			default:
				return errors.New(errors.ErrCodeInvalidParameter, "unknown search field %q, want label or value", by)
			}

			if match == nil {
				printError("No node matches %q", args[1])
				return nil
			}

			printSuccess("Found %s", match.Label())
			if match.HasValue() {
				printDetail("value: %s", match.Value())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "label", "search field: label (default), value")
	return cmd
}
