/*
author: akashmaji
email: akashmaji@iisc.ac.in
file: go-redis/internal/config/config.go
*/

// Package config loads the server's redis.conf-style configuration file and
// layers command-line overrides on top of it via pflag, the way the
// teacher's conf.go does for its own Config, generalized to this server's
// settings (listen address, client limit, logging, metrics address).
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Config holds every setting the server reads at startup. The values Default
// returns match vanilla Redis defaults where one exists.
type Config struct {
	Host string
	Port int

	RequestChanCap int // capacity of the bounded request channel shared by all connections
	MaxConnections int

	LogFile    string
	LogLevel   string
	LogMaxSize int // megabytes, passed straight to lumberjack

	MetricsAddr string

	filepath string
}

// Default returns the zero-configuration baseline: localhost:6379, a 512-slot
// request channel shared by all connections (per SPEC_FULL.md §8), info-level logging
// to stderr, and metrics disabled.
func Default() *Config {
	return &Config{
		Host:           "127.0.0.1",
		Port:           6379,
		RequestChanCap: 512,
		MaxConnections: 10000,
		LogLevel:       "info",
		LogMaxSize:     100,
	}
}

// Load reads filename as a redis.conf-style file on top of Default(), then
// applies flags from a pflag.FlagSet the caller has already parsed. An empty
// filename skips the file: the server falls back to defaults and flag-only
// configuration. A named file that cannot be opened is an error.
func Load(filename string, flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()

	if filename != "" {
		f, err := os.Open(filename)
		if err != nil {
			return nil, errors.Wrapf(err, "config: open %s", filename)
		}
		defer f.Close()
		cfg.filepath = filename

		s := bufio.NewScanner(f)
		for s.Scan() {
			if err := parseLine(s.Text(), cfg); err != nil {
				return nil, errors.Wrapf(err, "config: %s", filename)
			}
		}
		if err := s.Err(); err != nil {
			return nil, errors.Wrapf(err, "config: scanning %s", filename)
		}
	}

	if flags != nil {
		applyFlagOverrides(cfg, flags)
	}
	return cfg, nil
}

// parseLine parses one redis.conf-style directive line, mutating cfg.
// Unrecognized directives are ignored rather than rejected, matching the
// teacher's tolerant line parser.
func parseLine(line string, cfg *Config) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.Fields(line)
	directive := fields[0]
	args := fields[1:]

	switch directive {
	case "bind":
		if len(args) >= 1 {
			cfg.Host = args[0]
		}
	case "port":
		if len(args) != 1 {
			return fmt.Errorf("port requires exactly one argument")
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", args[0], err)
		}
		cfg.Port = n
	case "logfile":
		if len(args) >= 1 {
			cfg.LogFile = args[0]
		}
	case "loglevel":
		if len(args) == 1 {
			cfg.LogLevel = args[0]
		}
	case "maxclients":
		if len(args) == 1 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid maxclients %q: %w", args[0], err)
			}
			cfg.MaxConnections = n
		}
	}
	return nil
}

func applyFlagOverrides(cfg *Config, flags *pflag.FlagSet) {
	if v, err := flags.GetString("host"); err == nil && flags.Changed("host") {
		cfg.Host = v
	}
	if v, err := flags.GetInt("port"); err == nil && flags.Changed("port") {
		cfg.Port = v
	}
	if v, err := flags.GetString("logfile"); err == nil && flags.Changed("logfile") {
		cfg.LogFile = v
	}
	if v, err := flags.GetString("loglevel"); err == nil && flags.Changed("loglevel") {
		cfg.LogLevel = v
	}
	if v, err := flags.GetString("metrics-addr"); err == nil && flags.Changed("metrics-addr") {
		cfg.MetricsAddr = v
	}
}

// Addr renders the listen address as host:port.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
