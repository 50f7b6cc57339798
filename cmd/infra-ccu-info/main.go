package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/vaheed/infra-ccu-info/internal/api"
	"github.com/vaheed/infra-ccu-info/internal/config"
	"github.com/vaheed/infra-ccu-info/internal/logging"
	"github.com/vaheed/infra-ccu-info/internal/metrics"
	"github.com/vaheed/infra-ccu-info/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// loadConfig parses args over the environment. A local .env only fills
// variables that are not already set.
func loadConfig(args []string) (*config.Config, error) {
	_ = godotenv.Load()
	return config.Parse(args, os.LookupEnv)
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(args)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprint(stdout, config.Usage())
			return 0
		}
		fmt.Fprintf(stderr, "config: %v\n%s", err, config.Usage())
		return 2
	}
	if cfg.ShowVersion {
		fmt.Fprintln(stdout, version.Full())
		return 0
	}

	lg, closer := logging.New("infra-ccu-info", logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Out: stdout})
	defer closer.Close()

	reg := metrics.NewRegistry()
	ccu, err := metrics.New(reg, cfg.Env)
	if err != nil {
		lg.Error("metrics", slog.String("error", err.Error()))
		return 2
	}

	lg.Info("config",
		slog.Int64("ccu", cfg.CCU),
		slog.String("env", cfg.Env),
		slog.String("addr", config.ListenAddr),
		slog.String("version", version.Full()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := api.New(lg, cfg, ccu, reg)
	if err := s.Start(ctx, config.ListenAddr); err != nil {
		lg.Error("http", slog.String("error", err.Error()))
		return 1
	}
	lg.Info("shutdown complete")
	return 0
}
