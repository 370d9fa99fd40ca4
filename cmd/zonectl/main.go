// Command zonectl configures a motion-capture zone: an interactive panel,
// single-frame renders and camera-transition sequences.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mocap-zone-configurator/internal/config"
	"mocap-zone-configurator/internal/host"
	"mocap-zone-configurator/internal/logging"
	"mocap-zone-configurator/internal/metrics"
	"mocap-zone-configurator/internal/store"
	"mocap-zone-configurator/internal/texture"
)

const defaultConfigFile = "zonectl.yaml"

var (
	// Global flags
	configFile string
	verbose    bool
	outputDir  string
	workers    int
	format     string

	// Set up by the root pre-run.
	cfg      config.Config
	logger   *zap.Logger
	recorder metrics.Recorder = metrics.NoopRecorder{}
	server   *http.Server
)

var rootCmd = &cobra.Command{
	Use:   "zonectl",
	Short: "Configure and preview a motion-capture zone",
	Long: `zonectl keeps a capture zone (width, length, height and distance from the
device) within the limits the device can track, and previews it.

Every value goes through the same constraint rules whether it comes from the
config file, a flag or the interactive panel.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", defaultConfigFile, "Config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output", "o", "", "Output directory or file (default: renders)")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "Number of render workers (default: NumCPU)")
	rootCmd.PersistentFlags().StringVar(&format, "format", "", "Image format: webp or tga (default: webp)")

	rootCmd.AddCommand(tuiCmd, renderCmd, sequenceCmd, constraintsCmd)
}

func setup(cmd *cobra.Command) error {
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadOptional(configFile)
	}
	if err != nil {
		return err
	}

	// -o names a file for render; it only becomes the output dir elsewhere.
	flags := config.Flags{Workers: workers, Format: format, Verbose: verbose}
	if cmd.Name() != "render" {
		flags.OutputDir = outputDir
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logFile := cfg.Log.File
	if cmd.Name() == "tui" && logFile == "" {
		// The panel owns the terminal.
		logFile = "zonectl.log"
	}
	logger, err = logging.New(cfg.Log.Level, logFile, verbose)
	if err != nil {
		return err
	}

	if cfg.Metrics.Addr != "" {
		reg := prometheus.NewRegistry()
		recorder = metrics.NewPrometheusRecorder(reg)
		server = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           metrics.Handler(reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Warn("metrics server stopped", zap.Error(err))
			}
		}()
		logger.Info("serving metrics", zap.String("addr", cfg.Metrics.Addr))
	}
	return nil
}

func teardown() {
	if server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	}
	if logger != nil {
		_ = logger.Sync()
	}
}

// newStore builds the store with the config's initial block applied.
func newStore() *store.Store {
	st := store.New(store.Default, store.WithLogger(logger), store.WithRecorder(recorder))
	cfg.Initial.Apply(st)
	return st
}

func newHost(st *store.Store) *host.Host {
	return host.New(st, host.WithLogger(logger), host.WithRecorder(recorder))
}

// floorTexture resolves render.floor_texture, by name in render.texture_dir
// or as a path. A missing texture falls back to the checker floor.
func floorTexture() *texture.Cache {
	idx, err := texture.BuildIndex(cfg.Render.TextureDir)
	if err != nil {
		logger.Warn("texture index failed", zap.Error(err))
	}
	if idx.Len() > 0 {
		fmt.Printf("Textures: %d indexed\n", idx.Len())
	}
	return texture.NewCache(idx, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
