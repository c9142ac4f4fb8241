package wildrydes

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wildrydes/wildrydes/core"
)

type RuntimeConfig struct {
	Env        string
	Host       string
	Port       int
	ConfigPath string
}

const shutdownTimeout = 5 * time.Second

var logOutput io.Writer = os.Stderr

// Start serves until SIGINT or SIGTERM. It is a variable so commands can be
// tested without binding a socket.
var Start = func(cfg RuntimeConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return Run(ctx, cfg)
}

// ResolveConfig layers the config file and the runtime overrides on top of
// the defaults.
func ResolveConfig(cfg RuntimeConfig) core.Config {
	path := cfg.ConfigPath
	if path == "" {
		path = core.DefaultConfigPath
	}

	config := core.LoadConfig(path)
	if cfg.Host != "" {
		config.Host = cfg.Host
	}
	if cfg.Port != 0 {
		config.Port = cfg.Port
	}
	if cfg.Env == "dev" {
		config.DebugHeaders = true
		config.DebugLogs = true
	}
	return config
}

func Run(ctx context.Context, cfg RuntimeConfig) error {
	config := ResolveConfig(cfg)
	logger := core.NewLogger(logOutput, config.DebugLogs)

	var reloader core.LiveReloaderInterface
	if cfg.Env == "dev" {
		reloader = core.NewLiveReloader()
		defer reloader.Close()
	}

	router := core.NewRouter(config, core.RuntimeContext{
		Env:      cfg.Env,
		Reloader: reloader,
	})

	if cfg.Env == "dev" {
		path := cfg.ConfigPath
		if path == "" {
			path = core.DefaultConfigPath
		}
		addr := config.Addr()
		err := core.WatchConfig(ctx, path, logger, func(next core.Config) {
			next.DebugHeaders = true
			next.DebugLogs = true
			if next.Addr() != addr {
				logger.Warn("config.addr_changed", "addr", next.Addr(), "note", "restart required")
			}
			router.SetConfig(next)
			reloader.BroadcastReload()
		})
		if err != nil {
			logger.Warn("config.watch_disabled", "error", err)
		}
	}

	ln, err := core.Listen(config.Addr())
	if err != nil {
		return err
	}

	fmt.Println("Starting Wild Rydes App in", envName(cfg.Env), "mode...")
	fmt.Printf("✅ Wild Rydes App running at http://%s\n", ln.Addr())

	return Serve(ctx, ln, core.WithRequestLogging(logger, router), logger)
}

// NewHandler builds the full handler chain used by Run.
func NewHandler(config core.Config, env string, logger *slog.Logger, reloader core.LiveReloaderInterface) http.Handler {
	if logger == nil {
		logger = core.DiscardLogger()
	}
	router := core.NewRouter(config, core.RuntimeContext{Env: env, Reloader: reloader})
	return core.WithRequestLogging(logger, router)
}

// Serve owns ln and closes it on return.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, logger *slog.Logger) error {
	if logger == nil {
		logger = core.DiscardLogger()
	}

	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	logger.Info("server.listening", "addr", ln.Addr().String())

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	logger.Info("server.shutting_down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func envName(env string) string {
	if env == "" {
		return "prod"
	}
	return env
}
