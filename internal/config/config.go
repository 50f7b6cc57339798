package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

// ListenAddr is the address the HTTP server binds to. The port is fixed.
const ListenAddr = "0.0.0.0:8888"

// ErrMissing is returned when a required value is absent from both the
// command line and the environment.
var ErrMissing = errors.New("required value missing")

type Config struct {
	CCU         int64
	Env         string
	LogLevel    string
	LogFile     string
	ShowVersion bool
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

type rawFlags struct {
	ccu      string
	env      string
	logLevel string
	logFile  string
	version  bool
}

func getenv(lookup LookupFunc, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

// flagSet declares every flag with its environment variable as the default,
// so a value given on the command line always wins.
func flagSet(lookup LookupFunc) (*pflag.FlagSet, *rawFlags) {
	raw := &rawFlags{}
	fs := pflag.NewFlagSet("infra-ccu-info", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false
	fs.StringVar(&raw.ccu, "ccu", getenv(lookup, "CCU", ""), "CCU number the environment was set up for (env CCU)")
	fs.StringVar(&raw.env, "env", getenv(lookup, "ENV", ""), "Environment name (env ENV)")
	fs.StringVar(&raw.logLevel, "log-level", getenv(lookup, "LOG_LEVEL", "info"), "Log level: debug, info, warn or error (env LOG_LEVEL)")
	fs.StringVar(&raw.logFile, "log-file", getenv(lookup, "LOG_FILE", ""), "Write logs to a rotating file instead of stdout (env LOG_FILE)")
	fs.BoolVar(&raw.version, "version", false, "Print the build version and exit")
	return fs, raw
}

// Parse reads the configuration from args (without the program name) and
// falls back to lookup for anything not given as a flag. A nil lookup uses
// the process environment.
func Parse(args []string, lookup LookupFunc) (*Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	fs, raw := flagSet(lookup)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:         raw.env,
		LogLevel:    raw.logLevel,
		LogFile:     raw.logFile,
		ShowVersion: raw.version,
	}
	if cfg.ShowVersion {
		return cfg, nil
	}

	if raw.ccu == "" {
		return nil, fmt.Errorf("%w: ccu (--ccu or CCU)", ErrMissing)
	}
	n, err := strconv.ParseInt(raw.ccu, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("ccu must be an integer, got %q: %w", raw.ccu, err)
	}
	cfg.CCU = n

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Env == "" {
		return fmt.Errorf("%w: env (--env or ENV)", ErrMissing)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// Usage returns the flag help text.
func Usage() string {
	fs, _ := flagSet(func(string) (string, bool) { return "", false })
	return "Usage of infra-ccu-info:\n" + fs.FlagUsages()
}
