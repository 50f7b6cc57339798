package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

// Lifecycle states, in order.
const (
	StateStarting     = "starting"
	StateListening    = "listening"
	StateShuttingDown = "shutting_down"
	StateStopped      = "stopped"
)

// Start binds addr and serves the router until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	s.log.Info("server", slog.String("state", StateStarting))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return Serve(ctx, s.log, ln, s.Router())
}

// Serve accepts connections on ln until ctx is done, then stops accepting
// and waits for in-flight requests to finish. There is no drain deadline.
// It returns nil after a clean shutdown.
func Serve(ctx context.Context, lg *slog.Logger, ln net.Listener, h http.Handler) error {
	srv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		lg.Info("server", slog.String("state", StateListening), slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		lg.Info("server", slog.String("state", StateShuttingDown))
		return srv.Shutdown(context.Background())
	})

	err := g.Wait()
	lg.Info("server", slog.String("state", StateStopped))
	return err
}
