package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ifcwalk/ifcwalk/pkg/cache"
	"github.com/ifcwalk/ifcwalk/pkg/pipeline"
	"github.com/ifcwalk/ifcwalk/pkg/server"
	"github.com/ifcwalk/ifcwalk/pkg/session"
)

// defaultAddr is the default HTTP listen address.
const defaultAddr = ":8080"

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		models   []string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve models over an HTTP API",
		Long: `Serve open models over an HTTP API.

Models are opened by path through POST /api/models or preloaded with
--model. The hierarchy, entity details, takeoff tables and scene
descriptions are exposed per model. Artifacts are cached in the local
file cache, or in Redis when --redis points at a server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, redisURL, models, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for the artifact cache (redis://host:port)")
	cmd.Flags().StringArrayVar(&models, "model", nil, "model file to open at startup (repeatable)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisURL string, models []string, noCache bool) error {
	store, err := c.serveCache(ctx, redisURL, noCache)
	if err != nil {
		return err
	}

	runner := serveRunner(store, c.Logger)
	defer runner.Close()

	sess := session.New()
	for _, path := range models {
		doc, err := sess.Open(path)
		if err != nil {
			return fmt.Errorf("preload %s: %w", path, err)
		}
		printInfo("Opened %s as %s", doc.Path(), doc.ID())
	}

	srv := server.New(sess, runner, c.Logger)
	printInfo("Listening on %s", addr)
	printDetail("API under /api/models, health under /healthz")
	return srv.ListenAndServe(ctx, addr)
}

// serveRunner builds the pipeline runner for serve mode. Keys carry a
// serve prefix so server entries live in their own namespace, separate
// from ad-hoc CLI runs against the same files.
func serveRunner(store cache.Cache, logger *log.Logger) *pipeline.Runner {
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), "serve:")
	return pipeline.NewRunner(store, keyer, logger)
}

// serveCache picks the cache backend for serve mode: Redis when a URL
// is given (with retries to ride out startup ordering), otherwise the
// local file cache.
func (c *CLI) serveCache(ctx context.Context, redisURL string, noCache bool) (cache.Cache, error) {
	if redisURL == "" {
		return newCache(noCache)
	}

	var store cache.Cache
	err := cache.RetryWithBackoff(ctx, func() error {
		var cerr error
		store, cerr = cache.NewRedisCache(ctx, redisURL)
		return cerr
	})
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}
	c.Logger.Info("using redis cache", "url", redisURL)
	return store, nil
}
