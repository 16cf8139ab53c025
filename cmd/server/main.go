package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/slvrtrn/envfall/internal/application"
	"github.com/slvrtrn/envfall/internal/config"
	"github.com/slvrtrn/envfall/internal/logging"
)

const shutdownGracePeriod = 10 * time.Second

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("envfall", "Environment-first configuration service with a dotenv fallback")

	runCmd := kingpinApp.Command("run", "Resolve the configuration and start the HTTP server").Default()

	checkCmd := kingpinApp.Command("check", "Resolve the configuration and print it without starting the server")
	checkFormat := checkCmd.Flag("format", "Output format: text, json or yaml").Default("text").Enum("text", "json", "yaml")

	switch kingpin.MustParse(kingpinApp.Parse(os.Args[1:])) {
	case checkCmd.FullCommand():
		if err := runCheck(os.Stdout, *checkFormat); err != nil {
			kingpinApp.Fatalf("configuration check failed: %v", err)
		}
	case runCmd.FullCommand():
		runServer()
	}
}

func runServer() {
	cfg, err := config.Init()
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.AppEnv)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("configuration loaded",
		zap.String("app_env", string(cfg.AppEnv)),
		zap.String("listen_addr", cfg.ListenAddr),
		zap.Uint64("magic_number", cfg.MagicNumber),
	)

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app, shutdownGracePeriod, logger)
}

// runCheck resolves the configuration exactly like the server would and
// writes the result to w, so operators can verify an environment before
// deploying into it.
func runCheck(w io.Writer, format string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	default:
		fmt.Fprintf(w, "APP_ENV=%s\n", cfg.AppEnv)
		fmt.Fprintf(w, "MAGIC_STRING=%s\n", cfg.MagicString)
		fmt.Fprintf(w, "MAGIC_NUMBER=%d\n", cfg.MagicNumber)
		fmt.Fprintf(w, "LISTEN_ADDR=%s\n", cfg.ListenAddr)
		return nil
	}
}

func shutdown(app *application.App, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := app.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := app.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}
