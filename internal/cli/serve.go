package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/urutau-nz/dash-evaluating-proximity/internal/server"
	"github.com/urutau-nz/dash-evaluating-proximity/pkg/cache"
)

// serveCommand creates the serve command for the HTTP stylesheet service.
func (c *CLI) serveCommand() *cobra.Command {
	var configPath, addr, sheetPath, backend string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the stylesheet and resolution API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig()
			if configPath != "" {
				var err error
				cfg, err = server.LoadConfig(configPath)
				if err != nil {
					return err
				}
			}
			// Flags override the config file.
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("sheet") {
				cfg.SheetPath = sheetPath
			}
			if cmd.Flags().Changed("cache") {
				cfg.CacheBackend = backend
			}

			store, err := serveCache(cmd, cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			srv, err := server.New(cmd.Context(), cfg, store, c.Logger)
			if err != nil {
				return err
			}

			printInfo("Listening on %s", StyleHighlight.Render(cfg.Addr))
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVarP(&sheetPath, "sheet", "s", "", "sheet TOML file (default: built-in dashboard sheet)")
	cmd.Flags().StringVar(&backend, "cache", "file", "cache backend: file, redis, mongo, none")
	return cmd
}

// serveCache builds the cache backend named in the config.
func serveCache(cmd *cobra.Command, cfg server.Config) (cache.Cache, error) {
	switch cfg.CacheBackend {
	case "none":
		return cache.NewNullCache(), nil
	case "file":
		dir := cfg.CacheDir
		if dir == "" {
			var err error
			dir, err = cacheDir()
			if err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(cmd.Context(), cfg.RedisAddr)
	case "mongo":
		return cache.NewMongoCache(cmd.Context(), cfg.MongoURI, cfg.MongoDB, "artifacts")
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
