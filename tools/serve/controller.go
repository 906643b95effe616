package serve

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"love_fold_go/config"
	"love_fold_go/logger"
	"love_fold_go/predictor"
)

const shutdownTimeout = 10 * time.Second

func Command(cfg *config.Config) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the encode, analyze and fold JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listenAddr := addr
			if listenAddr == "" {
				listenAddr = cfg.Server.Addr
			}
			gin.SetMode(cfg.Server.Mode)

			srv := &http.Server{
				Addr:              listenAddr,
				Handler:           NewRouter(predictor.FromConfig(*cfg), cfg.Defaults.Strategy),
				ReadHeaderTimeout: 10 * time.Second,
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Love Fold API listening on %s\n", listenAddr)
			return listen(cmd.Context(), srv)
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return c
}

// listen serves until ctx is cancelled, then shuts down gracefully.
func listen(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	logger.L().Info("serve.started", "addr", srv.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.L().Info("serve.stopping", "addr", srv.Addr)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
