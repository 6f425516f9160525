package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/cculianu/BlockChainGrok/internal/blockchain"
	"github.com/cculianu/BlockChainGrok/internal/export"
	"github.com/cculianu/BlockChainGrok/internal/metrics"
	"github.com/cculianu/BlockChainGrok/internal/service"
	"github.com/cculianu/BlockChainGrok/internal/store"
)

type config struct {
	APIURL      string        `long:"api-url" env:"BLOCKTIMES_API_URL" description:"base URL of the blocks API" default:"https://blockchain.info"`
	OutputDir   string        `long:"output-dir" env:"BLOCKTIMES_OUTPUT_DIR" description:"directory for CSV exports" default:"."`
	HTTPTimeout time.Duration `long:"http-timeout" env:"BLOCKTIMES_HTTP_TIMEOUT" description:"HTTP timeout for API requests" default:"30s"`
	RPS         int           `long:"rps" env:"BLOCKTIMES_RPS" description:"max API requests per second" default:"1"`
	MetricsAddr string        `long:"metrics-addr" env:"BLOCKTIMES_METRICS_ADDR" description:"address for metrics server, empty disables it"`

	Args struct {
		Days int `positional-arg-name:"days" description:"number of days' worth of blocks to download"`
	} `positional-args:"yes" required:"yes"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("pass the number of days' worth of blocks to download as the first argument", zap.Error(err))
	}

	if cfg.Args.Days <= 0 {
		logger.Fatal("day count must be a positive integer", zap.Int("days", cfg.Args.Days))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("blocktimes run failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	m := metrics.NewBlockSync()

	client, err := blockchain.NewClient(cfg.APIURL, cfg.HTTPTimeout, cfg.RPS, m)
	if err != nil {
		return fmt.Errorf("init blocks api client: %w", err)
	}

	st := store.New()

	ingester, err := service.NewIngester(st, m, logger)
	if err != nil {
		return err
	}

	exporter, err := export.NewCSVExporter(cfg.OutputDir, logger)
	if err != nil {
		return err
	}

	svc, err := service.NewSyncService(client, ingester, st, exporter, cfg.Args.Days, logger)
	if err != nil {
		return err
	}
	return svc.Run(ctx)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown failed", zap.Error(err))
		}
	}()
}
