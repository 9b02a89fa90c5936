package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/turbolytics/salesreport/internal/config"
	"github.com/turbolytics/salesreport/internal/server"
)

func newServeCommand() *cobra.Command {
	var configPath string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the report HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			v, err := config.BindFlags(cmd.Flags())
			if err != nil {
				return err
			}

			c, err := config.NewSalesReportFromFile(configPath)
			if err != nil {
				return err
			}

			logger, err := config.NewLogger(c.Global.Logger)
			if err != nil {
				return err
			}
			defer logger.Sync()
			l := logger.Named("salesreport.server")

			store, closeStore, err := config.InitializeStore(ctx, c.Store, l)
			if err != nil {
				return err
			}
			defer closeStore(context.Background())

			upload, err := config.InitializeUpload(ctx, c, "", nil, l)
			if err != nil {
				return err
			}
			defer upload.Close(context.Background())

			p, err := config.InitializePipeline(c, store, upload.Gateway, l)
			if err != nil {
				return err
			}

			s := server.New(p,
				server.WithLogger(l),
				server.WithMaxRows(c.Report.MaxRows),
			)

			srv := &http.Server{
				Addr:    v.GetString("addr"),
				Handler: s.Routes(),
			}

			errCh := make(chan error, 1)
			go func() {
				l.Info("starting server", zap.String("addr", srv.Addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			l.Info("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file")
	cmd.MarkFlagRequired("config")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Address to listen on")

	return cmd
}
