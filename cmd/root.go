package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CristiGvl/picoTherm/api"
	"github.com/CristiGvl/picoTherm/internal/config"
	"github.com/CristiGvl/picoTherm/internal/filter"
	"github.com/CristiGvl/picoTherm/internal/logger"
	"github.com/CristiGvl/picoTherm/internal/metrics"
	"github.com/CristiGvl/picoTherm/internal/platform"
	"github.com/CristiGvl/picoTherm/internal/sensors"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "picotherm",
	Short: "Hardware temperature and fan harvesting agent",
	Long: "picoTherm harvests hardware temperature and fan readings through the\n" +
		"acquisition strategy compiled into the binary and serves them over a\n" +
		"small HTTP API and a prometheus endpoint.",
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringP("unit", "u", "celsius", "temperature unit token (celsius/c, kelvin/k, fahrenheit/f)")
	rootCmd.PersistentFlags().StringSlice("filter", nil, "sensor name patterns")
	rootCmd.PersistentFlags().Bool("filter-ignores", false, "treat the filter list as a denylist")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug/info/warn/error)")
	rootCmd.PersistentFlags().String("log-path", "", "directory for rotating JSON logs")

	rootCmd.Flags().String("bind", "0.0.0.0", "IP address to bind the server to")
	rootCmd.Flags().String("port", "8080", "port to run the server on")
	rootCmd.Flags().Bool("metrics", true, "serve the prometheus endpoint")
	rootCmd.Flags().String("metrics-addr", "0.0.0.0:9090", "prometheus listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	printBanner()

	f, err := newFilter(cfg.Sensors)
	if err != nil {
		return err
	}

	harvester := sensors.NewHarvester()
	info := platform.Describe()
	log.Info("starting picoTherm",
		zap.String("os", info.OS),
		zap.String("arch", info.Arch),
		zap.String("strategy", info.Strategy),
		zap.String("unit", cfg.Sensors.Unit),
		zap.String("addr", cfg.Server.Address()),
	)

	server, err := api.NewServer(cfg, harvester, f, log)
	if err != nil {
		return err
	}

	var metricsServer *metrics.Server
	if cfg.Metrics.Enabled {
		exporter := metrics.NewExporter(harvester, f, cfg.Sensors.Timeout)
		metricsServer = metrics.NewServer(cfg.Metrics.Addr, exporter, log)
		go func() {
			if err := metricsServer.Start(); err != nil {
				log.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.Start(cfg.Server.Address()) }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	if metricsServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(ctx); err != nil {
			log.Error("metrics shutdown failed", zap.Error(err))
		}
	}
	return server.Shutdown()
}

// newFilter compiles the configured sensor-name filter. No patterns means no
// filter at all, which keeps every sensor.
func newFilter(cfg config.SensorsConfig) (*filter.Filter, error) {
	if len(cfg.Filter) == 0 {
		return nil, nil
	}
	return filter.New(cfg.FilterIgnores, cfg.Filter)
}
