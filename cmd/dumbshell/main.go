package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/bnema/dumbshell/internal/application/port"
	"github.com/bnema/dumbshell/internal/application/usecase"
	"github.com/bnema/dumbshell/internal/cli/cmd"
	"github.com/bnema/dumbshell/internal/domain/build"
	"github.com/bnema/dumbshell/internal/infrastructure/config"
	"github.com/bnema/dumbshell/internal/infrastructure/metrics"
	"github.com/bnema/dumbshell/internal/infrastructure/webkit"
	"github.com/bnema/dumbshell/internal/logging"
	"github.com/bnema/dumbshell/internal/ui"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

// initialURL holds the URL to open on startup (from browse command).
var initialURL string

func main() {
	enableCrashForensics()

	// Bare invocation and the browse command open the window
	if gui, url := guiRequested(os.Args); gui {
		initialURL = url
		os.Args = os.Args[:1]
		os.Exit(runGUI())
		return
	}

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Anything else is a CLI subcommand
	cmd.Execute()
}

// guiRequested reports whether args ask for the window, and the URL to open.
func guiRequested(args []string) (bool, string) {
	if len(args) <= 1 {
		return true, ""
	}
	if args[1] != "browse" {
		return false, ""
	}
	if len(args) > 2 {
		return true, args[2]
	}
	return true, ""
}

func runGUI() int {
	runtime.LockOSThread()

	manager, cfg := initConfig()

	ctx, closeLog := initStartupContext(cfg)
	defer closeLog()
	log := logging.FromContext(ctx)
	logCoreDumpLimits(ctx)

	logging.InstallGLibLogHandler(ctx, *log, cfg.Logging.Level == "debug" || cfg.Logging.Level == "trace")

	wkCtx, err := initWebKitContext(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize webkit context")
		return 1
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	recorder := metrics.NewRecorder(registry)

	app, err := ui.New(&ui.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: manager,
		InitialURL:    initialURL,
		WebContext:    wkCtx,
		Settings:      webkit.NewSettingsManager(ctx, cfg),
		NavigateUC:    usecase.NewNavigateUseCase(recorder),
		Metrics:       recorder,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}

	if stop := startMetricsServer(ctx, cfg, registry, app); stop != nil {
		defer stop()
	}

	setupSignalHandler(ctx, app)

	return app.Run(ctx, os.Args)
}

func initConfig() (*config.Manager, *config.Config) {
	manager, err := config.NewManager()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize configuration: %v\n", err)
		os.Exit(1)
	}
	if err := manager.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return manager, manager.Get()
}

func initStartupContext(cfg *config.Config) (context.Context, func()) {
	logCfg := logging.ConfigFromValues(cfg.Logging.Level, cfg.Logging.Format)

	var rotator io.Closer
	var rotatorErr error
	if cfg.Logging.EnableFileLog {
		r, err := logging.NewLogRotator(cfg.Logging.LogDir, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
		if err != nil {
			rotatorErr = err
		} else {
			logCfg.FileWriter = r
			rotator = r
		}
	}

	logger := logging.New(logCfg)
	logger.Info().
		Str("version", version).
		Str("commit", commit).
		Str("build_date", buildDate).
		Msg("starting " + build.Name)
	if rotatorErr != nil {
		logger.Warn().Err(rotatorErr).Str("dir", cfg.Logging.LogDir).Msg("file logging disabled")
	}

	cleanup := func() {
		if rotator != nil {
			_ = rotator.Close()
		}
	}
	return logging.WithContext(context.Background(), logger), cleanup
}

func initWebKitContext(ctx context.Context, cfg *config.Config) (*webkit.WebKitContext, error) {
	dataDir, err := config.GetDataDir()
	if err != nil {
		return nil, err
	}
	cacheDir, err := config.GetCacheDir()
	if err != nil {
		return nil, err
	}
	return webkit.NewWebKitContext(ctx, port.WebKitContextOptions{
		DataDir:      dataDir,
		CacheDir:     cacheDir,
		CookiePolicy: port.WebKitCookiePolicy(cfg.Privacy.CookiePolicy),
	})
}

// startMetricsServer serves the debug endpoint when debug.metrics_addr is set.
func startMetricsServer(
	ctx context.Context,
	cfg *config.Config,
	registry *prometheus.Registry,
	app *ui.App,
) func() {
	if cfg.Debug.MetricsAddr == "" {
		return nil
	}
	log := logging.FromContext(ctx)

	srv, err := metrics.Start(ctx, cfg.Debug.MetricsAddr, metrics.NewHandler(registry, app.DialogStatus))
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Debug.MetricsAddr).Msg("metrics server disabled")
		return nil
	}
	log.Info().Str("addr", srv.Addr()).Msg("metrics server listening")
	return func() {
		if err := srv.Shutdown(); err != nil {
			log.Debug().Err(err).Msg("metrics server shutdown")
		}
	}
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
