package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"page-cache/internal/api"
	"page-cache/internal/config"
	"page-cache/internal/logger"
	"page-cache/internal/services"
	"page-cache/internal/store"

	"github.com/spf13/cobra"
)

var (
	redisURL  string
	redisHost string
	redisPort string
	showStats bool
)

func NewRootCmd() *cobra.Command {
	cfg := config.FromEnv()

	cmd := &cobra.Command{
		Use:   "getpage <url>",
		Short: "Fetch a URL through the Redis page cache.",
		Long: `getpage fetches a URL through the same Redis-backed cache the server uses.
Bodies stay cached for 10 seconds and every call bumps count:<url>.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.RedisURL = redisURL
			cfg.RedisHost = redisHost
			cfg.RedisPort = redisPort
			return run(cmd.Context(), cfg, args[0], showStats, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&redisURL, "redis-url", cfg.RedisURL, "Redis URL, overrides host and port")
	cmd.Flags().StringVar(&redisHost, "redis-host", cfg.RedisHost, "Redis host")
	cmd.Flags().StringVar(&redisPort, "redis-port", cfg.RedisPort, "Redis port")
	cmd.Flags().BoolVar(&showStats, "stats", false, "print counter and cache state instead of the body")
	return cmd
}

func run(ctx context.Context, cfg *config.Config, url string, stats bool, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := store.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	fetcher := services.NewCachedFetcher(s, api.NewPageClient(nil), nil)

	if stats {
		st, err := fetcher.Stats(ctx, url)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(st)
	}

	res, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	logger.Debugf("%s served from %s", url, res.Source)
	_, err = io.WriteString(out, res.Body)
	return err
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
