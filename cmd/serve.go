package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/pmquiz/internal/assetserver"
	"github.com/abhisek/pmquiz/internal/logger"
)

var serveAssetsCmd = &cobra.Command{
	Use:   "serve-assets",
	Short: "Serve the image directory under the configured base path",
	Long: `Serve the quiz images locally so the URLs printed by "show" and the
TUI open in a browser. GET /manifest lists every image the bank references.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("dir")
		addr, _ := cmd.Flags().GetString("addr")

		log, err := logger.New(cfg)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		b, err := openBank()
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr: addr,
			Handler: assetserver.NewRouter(assetserver.Config{
				Dir:     dir,
				BaseURL: cfg.BaseURL,
				Bank:    b,
				Log:     log,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Info("serving assets",
				zap.String("addr", addr),
				zap.String("dir", dir),
				zap.String("base", assetserver.BasePath(cfg.BaseURL)),
			)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("serve assets: %w", err)
		case <-ctx.Done():
			log.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	},
}

func init() {
	serveAssetsCmd.Flags().String("dir", "public", "Directory holding the images/ folder")
	serveAssetsCmd.Flags().String("addr", ":8081", "Listen address")
}
