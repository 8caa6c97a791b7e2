package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/treemark/treemark/pkg/cache"
	"github.com/treemark/treemark/pkg/errors"
	"github.com/treemark/treemark/pkg/manifest"
	"github.com/treemark/treemark/pkg/render"
	"github.com/treemark/treemark/pkg/tree"
)

// artifactTTL bounds how long rendered diagrams stay cached.
const artifactTTL = 7 * 24 * time.Hour

// newVizCmd creates the viz command for rendering a manifest as a diagram.
func newVizCmd() *cobra.Command {
	var (
		format   string
		output   string
		noCache  bool
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "viz <manifest.toml>",
		Short: "Render the tree as an SVG, PNG, or DOT diagram",
		Long: `Render the tree described by a manifest as a node-link diagram.

Rendered artifacts are cached locally, keyed by the manifest content and
output format, so unchanged manifests render instantly on repeat runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = strings.ToLower(format)
			switch format {
			case "svg", "png", "dot":
			default:
				return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q, want svg, png, or dot", format)
			}
			if output == "" {
				output = strings.TrimSuffix(args[0], ".toml") + "." + format
			}
			return runViz(cmd.Context(), args[0], format, output, noCache, detailed)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "svg", "output format: svg (default), png, dot")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to the manifest name)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include node values in the diagram")

	return cmd
}

func runViz(ctx context.Context, input, format, output string, noCache, detailed bool) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	data, err := os.ReadFile(input)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", input)
		}
		return err
	}

	store, err := newArtifactCache(ctx, noCache)
	if err != nil {
		return err
	}
	defer store.Close()

	key := cache.ArtifactKey(cache.Hash(data), fmt.Sprintf("%s:detailed=%t", format, detailed))
	if artifact, ok, err := store.Get(ctx, key); err == nil && ok {
		if err := os.WriteFile(output, artifact, 0644); err != nil {
			return err
		}
		prog.done("Rendered " + format)
		printFile(output)
		printStats(0, true)
		return nil
	}

	root, err := manifest.Parse(data)
	if err != nil {
		return err
	}
	defer tree.Destroy(root)

	dot := render.ToDOT(root, render.Options{Detailed: detailed})

	var artifact []byte
	switch format {
	case "dot":
		artifact = []byte(dot)
	case "svg":
		artifact, err = render.RenderSVG(ctx, dot)
	case "png":
		artifact, err = render.RenderPNG(ctx, dot)
	}
	if err != nil {
		return err
	}

	if err := store.Set(ctx, key, artifact, artifactTTL); err != nil {
		logger.Debug("failed to cache artifact", "err", err)
	}
	if err := os.WriteFile(output, artifact, 0644); err != nil {
		return err
	}

	prog.done("Rendered " + format)
	printFile(output)
	printStats(tree.Count(root), false)
	return nil
}
