package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hmandava/career-compass/pkg/config"
	"github.com/hmandava/career-compass/pkg/llm"
	"github.com/hmandava/career-compass/pkg/logger"
	"github.com/hmandava/career-compass/pkg/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var servePort int

//nolint:gochecknoglobals // Cobra boilerplate
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the development listener",
	Long: `Start the career-compass HTTP server.

Endpoints:
  POST /generate      generate a learning plan from user inputs
  POST /download_pdf  render a plan JSON body as a PDF download
  GET  /healthcheck   liveness probe

The Anthropic credential is read from the config file or the
ANTHROPIC_API_KEY environment variable. Without it the server still starts;
plan generation responds with a server error.`,
	RunE: runServe,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (default from config, else 5000)")
}

func runServe(cmd *cobra.Command, args []string) (err error) {
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		return err
	}

	var log *logger.Logger
	log, err = logger.New(cfg.LogMode)
	if err != nil {
		err = errors.Wrap(err, "failed to init logger")
		return err
	}
	defer log.Sync()

	if cfg.AnthropicAPIKey == "" {
		log.Warn("no Anthropic API key configured, plan generation will fail")
	}

	client := llm.NewClient(cfg.AnthropicAPIKey, cfg.GetModel())
	router := server.NewRouter(server.RouterConfig{
		PlanHandler: server.NewPlanHandler(client, log),
		Logger:      log,
	})

	port := servePort
	if port == 0 {
		port = cfg.GetPort()
	}

	addr := fmt.Sprintf(":%d", port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("career-compass server starting", "addr", addr, "model", cfg.GetModel())
		if serveErr := srv.ListenAndServe(); serveErr != nil && serveErr != http.ErrServerClosed {
			errCh <- serveErr
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err = <-errCh:
		err = errors.Wrap(err, "server error")
		return err
	case sig := <-sigCh:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = srv.Shutdown(ctx)
	if err != nil {
		err = errors.Wrap(err, "server shutdown failed")
		return err
	}

	log.Info("server stopped")
	return err
}
