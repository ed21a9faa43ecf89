package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gaurabsaha12345/master-prompter/internal/audit"
	"github.com/gaurabsaha12345/master-prompter/internal/config"
	"github.com/gaurabsaha12345/master-prompter/internal/enhance"
	"github.com/gaurabsaha12345/master-prompter/internal/logger"
	"github.com/gaurabsaha12345/master-prompter/internal/persist"
	"github.com/gaurabsaha12345/master-prompter/internal/webui"
	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var (
	serveAddr       string
	serveConfigPath string
	serveDBPath     string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the prompter HTTP API and builder web page",
	Run:   runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address, e.g. :8080 (default: from config)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to YAML config file")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "Path to the sqlite database (default: from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) {
	cfg, err := loadServeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flag wins over config file; the root PersistentPreRunE already
	// applied the flag, so only an unchanged flag falls back here.
	if !rootCmd.PersistentFlags().Changed("log") && cfg.Logging.Level != "" {
		level, err := logger.ParseLevel(cfg.Logging.Level)
		if err != nil {
			logger.Warn("invalid logging.level in config: %v", err)
		} else {
			logger.SetLevel(level)
		}
	}

	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveDBPath != "" {
		cfg.Database.Path = serveDBPath
	}

	store, err := persist.NewStore(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	enhancer, err := enhance.New(cfg.Enhance)
	if err != nil {
		logger.Warn("enhance provider disabled: %v", err)
		enhancer = nil
	} else if !enhancer.Configured() {
		logger.Info("enhance provider %s has no API key; /enhance will return 503", enhancer.Label())
	}

	auditor := audit.New(cfg.Audit)

	server := webui.NewServer(webui.Options{
		Store:    store,
		Enhancer: enhancer,
		Auditor:  auditor,
		CORS:     cfg.Server.CORS,
	})

	sched := cron.New()
	if _, err := sched.AddFunc("@daily", func() {
		if auditor.Enabled() {
			if err := auditor.CleanupOldFiles(); err != nil {
				logger.Warn("audit cleanup failed: %v", err)
			}
		}
		if n, err := store.CountSubscribers(); err == nil {
			logger.Info("newsletter subscribers: %d", n)
		}
	}); err != nil {
		logger.Warn("schedule daily maintenance: %v", err)
	}
	sched.Start()

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("prompter API listening on %s", cfg.Server.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	<-sched.Stop().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
}

func loadServeConfig() (*config.Config, error) {
	if serveConfigPath != "" {
		return config.LoadFromPath(serveConfigPath)
	}
	return config.Load()
}
