package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/seatforge/seatforge/internal/server"
	"github.com/seatforge/seatforge/pkg/cache"
	"github.com/seatforge/seatforge/pkg/events"
	"github.com/seatforge/seatforge/pkg/pipeline"
	"github.com/seatforge/seatforge/pkg/store"
)

// serveOpts holds the command-line flags for the serve command. Every flag
// falls back to a SEATFORGE_* environment variable so the server can be
// configured without a command line (containers, systemd units).
type serveOpts struct {
	addr    string // listen address
	redis   string // redis address for the layout cache
	mongo   string // mongodb connection string for the manifest store
	mongoDB string // mongodb database name
	amqp    string // rabbitmq url for manifest-changed events
	noCache bool   // disable the layout cache entirely
}

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Backends are optional and degrade gracefully:
  - without --redis, layouts are cached on the local filesystem
  - without --mongo, manifests are held in memory (lost on restart)
  - without --amqp, manifest-changed events are dropped

Each flag falls back to the matching SEATFORGE_* environment variable.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", envOr("SEATFORGE_ADDR", ":8080"), "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", envOr("SEATFORGE_REDIS_ADDR", ""), "redis address for the layout cache")
	cmd.Flags().StringVar(&opts.mongo, "mongo", envOr("SEATFORGE_MONGO_URL", ""), "mongodb connection string for the manifest store")
	cmd.Flags().StringVar(&opts.mongoDB, "mongo-db", envOr("SEATFORGE_MONGO_DB", "seatforge"), "mongodb database name")
	cmd.Flags().StringVar(&opts.amqp, "amqp", envOr("SEATFORGE_AMQP_URL", ""), "rabbitmq url for manifest-changed events")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the layout cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, opts serveOpts) error {
	cch, err := c.serveCache(ctx, opts)
	if err != nil {
		return err
	}

	st, err := c.serveStore(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = st.Close(shutdownCtx)
	}()

	pub, err := c.servePublisher(opts)
	if err != nil {
		return err
	}
	defer pub.Close()

	runner := pipeline.NewRunner(cch, nil, c.Logger)
	defer runner.Close()

	srv := &http.Server{
		Addr:         opts.addr,
		Handler:      server.New(runner, st, pub, c.Logger).Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", opts.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		c.Logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// serveCache selects the layout cache backend: redis when configured, a
// local file cache otherwise.
func (c *CLI) serveCache(ctx context.Context, opts serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		cch, err := cache.NewRedisCache(ctx, opts.redis, os.Getenv("SEATFORGE_REDIS_PASSWORD"), 0)
		if err != nil {
			return nil, fmt.Errorf("connect redis: %w", err)
		}
		c.Logger.Info("layout cache on redis", "addr", opts.redis)
		return cch, nil
	}
	return newCache(false)
}

// serveStore selects the manifest store backend: mongodb when configured,
// in-memory otherwise.
func (c *CLI) serveStore(ctx context.Context, opts serveOpts) (store.Store, error) {
	if opts.mongo == "" {
		c.Logger.Warn("no mongodb configured, manifests are held in memory")
		return store.NewMemoryStore(), nil
	}
	st, err := store.NewMongoStore(ctx, opts.mongo, opts.mongoDB)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	c.Logger.Info("manifest store on mongodb", "database", opts.mongoDB)
	return st, nil
}

// servePublisher selects the event publisher: rabbitmq when configured, a
// no-op otherwise.
func (c *CLI) servePublisher(opts serveOpts) (events.Publisher, error) {
	if opts.amqp == "" {
		return events.NopPublisher{}, nil
	}
	pub, err := events.NewAMQPPublisher(opts.amqp, c.Logger)
	if err != nil {
		return nil, fmt.Errorf("connect rabbitmq: %w", err)
	}
	c.Logger.Info("publishing manifest deltas", "queue", events.QueueManifestChanged)
	return pub, nil
}

// envOr returns the environment variable's value, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
