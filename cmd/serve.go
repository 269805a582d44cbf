package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cbp-tools/bpviz/dashboard"
	"github.com/cbp-tools/bpviz/internal/config"
	"github.com/cbp-tools/bpviz/results"
)

var (
	dataPath   string // Results JSON file, directory, or s3://bucket/prefix
	configPath string // Predictor configuration YAML
	port       string // Listen address
	cacheSize  int    // Chart options kept in the LRU cache
)

// serveCmd loads the results once and serves the dashboard until interrupted
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard",
	Run: func(cmd *cobra.Command, args []string) {
		resolveServeFlags(cmd)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		ds, err := loadDataset(ctx, dataPath)
		if err != nil {
			logrus.Fatalf("unable to load results; %v", err)
		}
		if ds.Len() == 0 {
			logrus.Warnf("No traces loaded from %s; every panel will show a placeholder", dataPath)
		}
		cfg, err := results.LoadConfig(configPath)
		if err != nil {
			logrus.Fatalf("unable to load predictor config; %v", err)
		}

		d, err := dashboard.New(dashboard.Options{Dataset: ds, Config: cfg, CacheSize: cacheSize})
		if err != nil {
			logrus.Fatalf("unable to build dashboard; %v", err)
		}
		logrus.Infof("Serving %d traces of %s", ds.Len(), cfg.Predictor.Name)

		if err := dashboard.NewServer(port, d.Handler()).Run(ctx); err != nil {
			logrus.Fatalf("server error: %v", err)
		}
		logrus.Info("Dashboard stopped.")
	},
}

// resolveServeFlags fills every flag not given on the command line from the environment.
func resolveServeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if !flags.Changed("data") {
		dataPath = env.DataPath
	}
	if !flags.Changed("config") {
		configPath = env.ConfigPath
	}
	if !flags.Changed("port") {
		port = env.Port
	}
	port = config.NormalizePort(port)
	if !flags.Changed("cache-size") {
		cacheSize = env.CacheSize
	}
}

func init() {
	serveCmd.Flags().StringVar(&dataPath, "data", config.DefaultDataPath, "Results JSON file, directory of JSON files, or s3://bucket/prefix")
	serveCmd.Flags().StringVar(&configPath, "config", config.DefaultConfigPath, "Predictor configuration YAML")
	serveCmd.Flags().StringVar(&port, "port", config.DefaultPort, "Listen address or port")
	serveCmd.Flags().IntVar(&cacheSize, "cache-size", config.DefaultCacheSize, "Number of chart options to cache")

	rootCmd.AddCommand(serveCmd)
}
