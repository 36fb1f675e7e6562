package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/memelaunch/launcher/config"
	"github.com/memelaunch/launcher/internal/chain"
	"github.com/memelaunch/launcher/internal/imagesource"
	"github.com/memelaunch/launcher/internal/launcher"
	launcherLogger "github.com/memelaunch/launcher/internal/logger"
	"github.com/memelaunch/launcher/internal/platform"
	"github.com/memelaunch/launcher/internal/publisher"
	"github.com/memelaunch/launcher/internal/scheduler"
	"github.com/memelaunch/launcher/internal/summary"
	"github.com/memelaunch/launcher/internal/templates"
	"github.com/memelaunch/launcher/internal/version"
	"github.com/memelaunch/launcher/pkg/tracing"
)

const (
	serviceName       = "launcher"
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

var ErrLaunchesFailed = errors.New("one or more launches failed")

var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the launch pipeline for every template",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		err = cfg.Validate()
		if err != nil {
			return err
		}

		logger, err := launcherLogger.NewLogger(cfg.LogLevel, cfg.LogFormat, launcherLogger.WithWriter(cmd.ErrOrStderr()))
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return runLaunches(ctx, cmd, logger, cfg)
	},
}

func init() {
	RunCmd.Flags().String("mode", "", "Execution mode: sequential or parallel")
	RunCmd.Flags().Int("concurrency", 0, "Maximum number of concurrent launches, 0 for no limit")
	RunCmd.Flags().Bool("plain", false, "Print one line per launch instead of a table")
}

func runLaunches(ctx context.Context, cmd *cobra.Command, logger *slog.Logger, cfg *config.LauncherConfig) error {
	runID := uuid.NewString()
	logger.Info("Starting launcher", slog.String("version", version.Version), slog.String("commit", version.Commit), slog.String("batch_id", runID))

	shutdownFns := make([]func(), 0)
	defer func() {
		for i := len(shutdownFns) - 1; i >= 0; i-- {
			shutdownFns[i]()
		}
	}()

	jobs, err := templates.NewLoader(logger).Load(cfg.Launch.TemplatesPath)
	if err != nil {
		return err
	}

	mode, err := scheduler.ParseMode(cfg.Launch.Mode)
	if err != nil {
		return err
	}

	var stats *launcher.Stats
	if cfg.Prometheus.IsEnabled() {
		stats, err = launcher.NewStats(prometheus.DefaultRegisterer)
		if err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}

		shutdownFns = append(shutdownFns, startPrometheus(logger, cfg.Prometheus))
	}

	pipelineOpts := []func(*launcher.Pipeline){
		launcher.WithStats(stats),
		launcher.WithValidateTimeout(cfg.Platform.ValidateTimeout),
	}

	if cfg.Tracing.IsEnabled() {
		cleanup, err := tracing.Enable(logger, serviceName, cfg.Tracing.DialAddr, cfg.Tracing.Sample)
		if err != nil {
			logger.Error("failed to enable tracing", slog.String("err", err.Error()))
		} else {
			shutdownFns = append(shutdownFns, cleanup)
			pipelineOpts = append(pipelineOpts, launcher.WithTracer(cfg.Tracing.KeyValueAttributes...))
		}
	}

	params, err := cfg.LaunchParams()
	if err != nil {
		return err
	}

	chainOpts := []func(*chain.Client){chain.WithGasPriceCacheTTL(cfg.Chain.GasPriceCacheTTL)}
	if cfg.Chain.ChainID > 0 {
		chainOpts = append(chainOpts, chain.WithChainID(cfg.Chain.ChainID))
	}

	chainClient, closeChain, err := chain.Dial(ctx, logger, cfg.Chain.RpcURL, cfg.Chain.SecondaryRpcURL, chainOpts...)
	if err != nil {
		return err
	}
	shutdownFns = append(shutdownFns, closeChain)

	waiter := chain.NewWaiter(logger, chainClient, chain.WaitOptions{
		Interval: cfg.Polling.Interval,
		Jitter:   cfg.Polling.Jitter,
		Timeout:  cfg.Polling.Timeout,
	})

	platformClient := platform.New(
		platform.WithLogger(logger),
		platform.WithURL(cfg.Platform.BaseURL),
		platform.WithValidateURL(cfg.Platform.ValidateURL),
		platform.WithTimeout(cfg.Platform.Timeout),
		platform.WithNetworkCode(cfg.Platform.NetworkCode),
	)

	images, err := newImageResolver(cfg)
	if err != nil {
		return err
	}

	pipeline := launcher.NewPipeline(logger, params, platformClient, chainClient, waiter, images, pipelineOpts...)

	outcomes, err := launcher.RunBatch(ctx, logger, pipeline, jobs, mode, cfg.Launch.Concurrency)
	pipeline.Wait()
	if err != nil {
		return err
	}

	plain, _ := cmd.Flags().GetBool("plain")
	renderOutcomes(cmd.OutOrStdout(), outcomes, plain)

	if cfg.Publisher != nil && cfg.Publisher.NatsURL != "" {
		publishOutcomes(ctx, logger, cfg, runID, outcomes)
	}

	failed := countFailed(outcomes)
	if failed > 0 {
		return errors.Join(ErrLaunchesFailed, fmt.Errorf("%d of %d launches failed", failed, len(outcomes)))
	}

	return nil
}

// loadConfig loads the config directory given by --config and applies the command line overrides.
func loadConfig(flags *pflag.FlagSet) (*config.LauncherConfig, error) {
	configDir, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load app config: %w", err)
	}

	err = applyFlags(cfg, flags)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func renderOutcomes(w io.Writer, outcomes []launcher.Outcome, plain bool) {
	if !plain {
		summary.Render(w, outcomes)
		return
	}

	for _, line := range summary.Lines(outcomes) {
		_, _ = fmt.Fprintln(w, line)
	}
}

func applyFlags(cfg *config.LauncherConfig, flags *pflag.FlagSet) error {
	if flags.Changed("templates") {
		path, err := flags.GetString("templates")
		if err != nil {
			return err
		}
		cfg.Launch.TemplatesPath = path
	}

	if flags.Lookup("mode") != nil && flags.Changed("mode") {
		mode, err := flags.GetString("mode")
		if err != nil {
			return err
		}
		cfg.Launch.Mode = mode
	}

	if flags.Lookup("concurrency") != nil && flags.Changed("concurrency") {
		concurrency, err := flags.GetInt("concurrency")
		if err != nil {
			return err
		}
		cfg.Launch.Concurrency = concurrency
	}

	return nil
}

func startPrometheus(logger *slog.Logger, cfg *config.PrometheusConfig) func() {
	mux := http.NewServeMux()
	mux.Handle(cfg.Endpoint, promhttp.Handler())

	server := &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: readHeaderTimeout}

	go func() {
		logger.Info("Starting prometheus", slog.String("endpoint", cfg.Endpoint), slog.String("addr", cfg.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start prometheus server", slog.String("err", err.Error()))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		err := server.Shutdown(ctx)
		if err != nil {
			logger.Error("failed to shutdown prometheus server", slog.String("err", err.Error()))
		}
	}
}

func newImageResolver(cfg *config.LauncherConfig) (*imagesource.Resolver, error) {
	opts := []func(*imagesource.Resolver){imagesource.WithRoot(cfg.Launch.ImageRoot)}

	if cfg.ObjectStore != nil && cfg.ObjectStore.Enabled() {
		store, err := imagesource.NewMinioStore(*cfg.ObjectStore)
		if err != nil {
			return nil, fmt.Errorf("failed to create object store client: %w", err)
		}
		opts = append(opts, imagesource.WithObjectStore(store))
	}

	return imagesource.New(opts...), nil
}

func publishOutcomes(ctx context.Context, logger *slog.Logger, cfg *config.LauncherConfig, runID string, outcomes []launcher.Outcome) {
	nc, err := publisher.Connect(cfg.Publisher.NatsURL, logger,
		publisher.WithMaxReconnects(cfg.Publisher.MaxReconnects),
		publisher.WithReconnectWait(cfg.Publisher.ReconnectWait),
	)
	if err != nil {
		logger.Error("outcomes not published", slog.String("err", err.Error()))
		return
	}

	opts := []func(*publisher.Publisher){publisher.WithSubject(cfg.Publisher.Subject)}
	if cfg.Tracing.IsEnabled() {
		opts = append(opts, publisher.WithTracer(cfg.Tracing.KeyValueAttributes...))
	}

	pub := publisher.New(nc, logger, opts...)
	defer pub.Shutdown()

	published := pub.PublishAll(ctx, runID, outcomes)
	logger.Info("Published outcomes", slog.Int("published", published), slog.Int("total", len(outcomes)))
}

func countFailed(outcomes []launcher.Outcome) int {
	failed := 0
	for _, o := range outcomes {
		if !o.Succeeded() {
			failed++
		}
	}

	return failed
}
