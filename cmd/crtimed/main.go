// crtimed serves the creation-time API for embedding callers such as file
// manager integrations.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hypernetix/crtime/libs/api"
	"github.com/hypernetix/crtime/libs/config"
	"github.com/hypernetix/crtime/libs/core"
	"github.com/hypernetix/crtime/libs/logging"
	"github.com/hypernetix/crtime/modules/crtime"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "crtimed",
		Usage: "Creation time API server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
			&cli.BoolFlag{
				Name:  "dump-config",
				Usage: "Print the effective configuration as YAML and exit",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logging.Fatal("%v", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		logging.ForceLogLevel(logging.DebugLevel)
	}

	// Modules register themselves before the config is loaded so their
	// defaults and loggers participate in Load
	crtime.InitModule()

	var cfg *config.Config
	var err error
	if configPath := c.String("config"); configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg = config.GetDefault()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if c.Bool("dump-config") {
		yamlStr, err := cfg.ToYaml()
		if err != nil {
			return err
		}
		fmt.Print(yamlStr)
		return nil
	}

	if err := core.Init(cfg); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	router := chi.NewRouter()
	api.SetupAPI(router)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info("Crtime server listening on http://%s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		logging.Info("Received signal %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logging.Info("Server stopped")
	return nil
}
