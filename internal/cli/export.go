package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/treemark/treemark/pkg/bytebuf"
	"github.com/treemark/treemark/pkg/manifest"
	"github.com/treemark/treemark/pkg/markup"
	"github.com/treemark/treemark/pkg/tree"
)

// exportBufSize bounds the serialized document size.
const exportBufSize = 1 << 20

// newExportCmd creates the export command for serializing a tree to markup.
func newExportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <manifest.toml>",
		Short: "Serialize the tree to a markup encoding",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			defer tree.Destroy(root)

			dst, err := bytebuf.New(exportBufSize)
			if err != nil {
				return err
			}
			if err := markup.ToXML(dst, root); err != nil {
				return err
			}

			if output == "" {
				_, err = os.Stdout.Write(dst.Bytes())
				return err
			}
			if err := os.WriteFile(output, dst.Bytes(), 0644); err != nil {
				return err
			}
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout)")
	return cmd
}
