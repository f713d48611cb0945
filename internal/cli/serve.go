package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/abstractlayout/laf/internal/obslog"
	"github.com/abstractlayout/laf/pkg/snapshot"
)

const serverShutdownTimeout = 5 * time.Second

// serveCommand creates the serve command, exposing recorded phase
// snapshots (see 'layout --visualize-phases') over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		dir       string
		redisAddr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve recorded phase snapshots over HTTP",
		Long: `Serve recorded phase snapshots over HTTP.

Exposes GET /runs/{id}/phases/{n}, returning the JSON snapshot recorded for
run id's phase n (see pkg/laf.PhaseID for the numbering). By default reads
from the local file-backed store under the XDG cache directory; pass
--redis to read from a shared Redis instance instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, dir, redisAddr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")
	cmd.Flags().StringVar(&dir, "dir", "", "snapshot directory (default: XDG cache dir)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address to read snapshots from instead of the file store")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, dir, redisAddr string) error {
	logger := obslog.FromContext(ctx)

	store, err := openSnapshotStore(dir, redisAddr)
	if err != nil {
		return err
	}
	defer store.Close()

	srv := snapshot.NewServer(store)
	httpServer := &http.Server{Addr: addr, Handler: srv.Routes()}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving snapshots on %s", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}
}

func openSnapshotStore(dir, redisAddr string) (snapshot.Store, error) {
	if redisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: redisAddr})
		return snapshot.NewRedisStore(client), nil
	}
	if dir == "" {
		var err error
		dir, err = appCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve snapshot directory: %w", err)
		}
	}
	return snapshot.NewFileStore(dir)
}
