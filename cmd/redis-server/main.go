/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/cmd/redis-server/main.go
*/

// Command redis-server is the CLI entrypoint, replacing the teacher's
// flat main.go with a cobra command tree so flags, help text, and
// argument validation come from spf13/cobra/pflag rather than a
// hand-rolled os.Args scan.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/redis-clone/internal/config"
	"github.com/akashmaji946/redis-clone/internal/logging"
	"github.com/akashmaji946/redis-clone/internal/metrics"
	"github.com/akashmaji946/redis-clone/internal/server"
	"github.com/akashmaji946/redis-clone/internal/store"
)

const asciiArt = `
   ___  ____      ____          _ _
  / _ \/ __ \    / __ \___  ___| (_)___
 / , _/ /_/ /___/ /_/ / _ \/ _  / / (_-<
/_/|_|\____/___/\____/_//_/\_,_/_/_/___/
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	var host string
	var port int
	var logFile string
	var logLevel string
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "redis-server",
		Short: "A RESP-compatible in-memory key-value server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "path to a redis.conf-style configuration file")
	flags.StringVar(&host, "host", "127.0.0.1", "address to bind")
	flags.IntVar(&port, "port", 6379, "port to listen on")
	flags.StringVar(&logFile, "logfile", "", "path to a rotated log file (stderr if empty)")
	flags.StringVar(&logLevel, "loglevel", "info", "debug, info, warn, or error")
	flags.StringVar(&metricsAddr, "metrics-addr", "", "address to serve Prometheus metrics on (disabled if empty)")

	return cmd
}

// run validates the fully-resolved configuration, wires up logging,
// metrics, and the database, and blocks serving connections until
// shutdown. Validation failures are accumulated with go-multierror so a
// misconfigured server reports every problem at once instead of just the
// first one found, the way the teacher's own log.Fatalf calls never could.
func run(cfg *config.Config) error {
	if err := validate(cfg); err != nil {
		return err
	}

	log := logging.New(logging.Options{
		Level:     cfg.LogLevel,
		File:      cfg.LogFile,
		MaxSizeMB: cfg.LogMaxSize,
	})
	defer log.Sync()

	fmt.Println(asciiArt)
	log.Info("starting redis-clone on %s", cfg.Addr())

	db := store.NewDatabase()

	met, reg := metrics.New(func() float64 { return float64(db.Size()) })
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler(reg))
		go func() {
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Warn("metrics server stopped: %v", err)
			}
		}()
		log.Info("serving metrics on %s/metrics", cfg.MetricsAddr)
	}

	srv := server.New(cfg, log, met, db)
	return srv.Run(context.Background())
}

func validate(cfg *config.Config) error {
	var result *multierror.Error
	if cfg.Port <= 0 || cfg.Port > 65535 {
		result = multierror.Append(result, fmt.Errorf("port %d out of range", cfg.Port))
	}
	if cfg.RequestChanCap <= 0 {
		result = multierror.Append(result, fmt.Errorf("request channel capacity must be positive"))
	}
	if cfg.Host == "" {
		result = multierror.Append(result, fmt.Errorf("host must not be empty"))
	}
	return result.ErrorOrNil()
}
