package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"finaltabs/internal/capture"
	"finaltabs/internal/capture/cdp"
	"finaltabs/internal/config"
	"finaltabs/internal/history"
	"finaltabs/internal/logging"
	"finaltabs/internal/metrics"
	"finaltabs/internal/providers"
	"finaltabs/internal/providers/espn"
	"finaltabs/internal/publish"
	"finaltabs/internal/publish/twitter"
	"finaltabs/internal/runner"
	"finaltabs/internal/site"
)

const (
	appName    = "finaltabs"
	appVersion = "dev"

	shutdownTimeout = 5 * time.Second
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Posts NBA receipt images for finished games",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd(), newServeCmd())
	return root
}

func newLogger() *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: appName,
		Version: appVersion,
	})
}

func newRunCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch finished games, capture receipts, and post unseen ones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			if dryRun {
				cfg.DryRun = true
			}
			logger := newLogger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runAutopost(ctx, cfg, logger)
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "log what would be posted without posting")
	return cmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the receipt site locally without running the pipeline",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			logger := newLogger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			_, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
				Enabled:      cfg.Metrics.Enabled,
				ServiceName:  appName,
				OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
				OtlpInsecure: cfg.Metrics.OtlpInsecure,
			})
			if err != nil {
				return err
			}
			defer func() {
				shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				_ = shutdownMetrics(shutCtx)
			}()

			srv := site.New(site.Config{Port: cfg.Site.Port, Dir: cfg.Site.Dir}, logger, promHandler)
			if err := srv.Start(); err != nil {
				return err
			}
			logging.Info(logger, "serving receipt site", "url", srv.URL())

			<-ctx.Done()

			shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutCtx)
		},
	}
}

func runAutopost(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	if err := cfg.Validate(); err != nil {
		logging.Error(logger, "invalid configuration", err)
		return err
	}

	recorder, promHandler, shutdownMetrics, err := metrics.Setup(ctx, metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		ServiceName:  appName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = shutdownMetrics(shutCtx)
	}()

	store, err := openHistory(cfg.History)
	if err != nil {
		logging.Error(logger, "failed to open history store", err)
		return err
	}
	defer func() { _ = store.Close() }()

	srv := site.New(site.Config{Port: cfg.Site.Port, Dir: cfg.Site.Dir}, logger, promHandler)
	if err := srv.Start(); err != nil {
		return err
	}
	defer func() {
		shutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
	}()

	engine, err := cdp.New(ctx, cdp.Config{})
	if err != nil {
		logging.Error(logger, "failed to launch browser", err)
		return err
	}
	defer engine.Close()

	provider := providers.NewRetryingProvider(
		espn.NewClient(espn.Config{BaseURL: cfg.Provider.BaseURL, Timezone: cfg.Provider.Timezone}),
		logger,
		cfg.Provider.RetryAttempts,
		cfg.Provider.RetryBackoff,
	)

	orchestrator := capture.New(engine, logger, capture.Config{
		URL:            srv.URL(),
		LoadTimeout:    cfg.Capture.LoadTimeout,
		OverlayTimeout: cfg.Capture.OverlayTimeout,
	})

	var poster publish.Poster
	if !cfg.DryRun {
		poster = twitter.NewClient(twitter.Config{
			Credentials: twitter.Credentials{
				AppKey:       cfg.Twitter.AppKey,
				AppSecret:    cfg.Twitter.AppSecret,
				AccessToken:  cfg.Twitter.AccessToken,
				AccessSecret: cfg.Twitter.AccessSecret,
			},
		})
	}
	publisher := publish.New(poster, logger, cfg.DryRun)

	run := runner.New(provider, orchestrator, publisher, store, logger, recorder, runner.Config{
		PostDelay: cfg.PostDelay,
		DryRun:    cfg.DryRun,
	})

	summary, err := run.Run(ctx)
	if err != nil {
		if errors.Is(err, runner.ErrAllPostsFailed) {
			logging.Error(logger, "run failed, no posts succeeded", err, "attempted", summary.Attempted)
		}
		return err
	}
	return nil
}

func openHistory(cfg config.HistoryConfig) (history.Store, error) {
	if cfg.Backend == config.BackendBolt {
		return history.OpenBolt(cfg.Path)
	}
	return history.NewFileStore(cfg.Path), nil
}
