package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"hamview/internal/app"
	"hamview/internal/config"
	"hamview/internal/logger"
	"hamview/internal/shutdown"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hamview",
	Short: "Tile map display for ham-radio station tracking",
	Long: `hamview shows a tile map centered on a geographic position, with
PNG export of the visible map and a distance scale. Tiles are read
from a local zoom/x/y.png directory tree.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		level, err := zerolog.ParseLevel(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("parse log level %q: %w", cfg.Log.Level, err)
		}
		if verbose {
			level = zerolog.DebugLevel
		}
		log := logger.NewRotatingLogger(level, cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups)

		application := app.New(cfg, log)

		manager := shutdown.NewManager(log)
		manager.Register(shutdown.Func(func() {
			// Signals arrive off the UI goroutine; the window must
			// close on it.
			fyne.Do(application.Shutdown)
		}))
		manager.Listen()

		application.Run()
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
