package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ruminaider/job-browser/internal/config"
	"github.com/ruminaider/job-browser/internal/logging"
	"github.com/ruminaider/job-browser/internal/metrics"
	"github.com/ruminaider/job-browser/internal/paths"
	"github.com/ruminaider/job-browser/internal/source"
)

// Global flags.
var (
	flagSource      string
	flagConfig      string
	flagLogFile     string
	flagMetricsAddr string
)

// app is what every command needs after config is resolved.
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	metrics *metrics.Recorder
	source  source.Source
	stop    func()
}

func configPath() string {
	if flagConfig != "" {
		return flagConfig
	}
	return paths.ConfigFile()
}

// loadApp resolves config, flags and environment, then builds the logger,
// the metrics recorder and the listing source. Callers must call stop.
func loadApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load(configPath(), paths.EnvFile(), ".env")
	if err != nil {
		return nil, err
	}
	if flagSource != "" {
		cfg.Source = flagSource
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagMetricsAddr != "" {
		cfg.MetricsAddr = flagMetricsAddr
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	logFile := cfg.Log.File
	if logFile == "" {
		logFile = paths.LogFile()
	}
	logger, closeLog, err := logging.New(logging.Options{Level: cfg.Log.Level, Path: logFile})
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("command", cmd.Name()))

	rec := metrics.New()
	ctx, cancel := context.WithCancel(cmd.Context())
	if cfg.MetricsAddr != "" {
		go func() {
			if err := rec.Serve(ctx, cfg.MetricsAddr); err != nil {
				logger.Error("metrics server stopped", zap.String("addr", cfg.MetricsAddr), zap.Error(err))
			}
		}()
		logger.Info("serving metrics", zap.String("addr", cfg.MetricsAddr))
	}

	a := &app{
		cfg:     cfg,
		logger:  logger,
		metrics: rec,
		source:  source.Open(cfg.Source, cfg.Timeout, logger),
	}
	a.stop = func() {
		cancel()
		_ = closeLog()
	}
	logger.Debug("configuration resolved", zap.String("source", a.source.String()))
	return a, nil
}
