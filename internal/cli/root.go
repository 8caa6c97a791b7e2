package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/treemark/treemark/pkg/buildinfo"
	"github.com/treemark/treemark/pkg/cache"
)

// appName is the application name used for directories and display.
const appName = "treemark"

// Execute runs the treemark CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Treemark builds and renders prioritized trees",
		Long:         `Treemark is a CLI tool for building hierarchical label/value trees from TOML manifests and turning them into searchable, renderable structures.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newBuildCmd())
	root.AddCommand(newSearchCmd())
	root.AddCommand(newVizCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newBrowseCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// newArtifactCache selects the cache backend for rendered artifacts.
// With TREEMARK_REDIS_ADDR set, artifacts go to Redis so multiple processes
// can share one cache; otherwise they land in the local file cache.
func newArtifactCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if addr := os.Getenv("TREEMARK_REDIS_ADDR"); addr != "" {
		c, err := cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     addr,
			Password: os.Getenv("TREEMARK_REDIS_PASSWORD"),
		})
		if err == nil {
			return c, nil
		}
		loggerFromContext(ctx).Debug("redis cache unavailable, falling back to file cache", "addr", addr, "err", err)
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/treemark/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
