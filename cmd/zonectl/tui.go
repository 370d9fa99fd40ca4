package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mocap-zone-configurator/internal/tui"
)

var watchConfig bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive control panel",
	Long: `Opens the control panel: edit the zone dimensions, pick the mount, capture
mode and light, and watch the plan update. Click the zone floor to keep every
dimension label on screen.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		h := newHost(newStore())
		defer h.Close()

		opts := tui.Options{Logger: logger}
		if watchConfig {
			if _, err := os.Stat(configFile); err == nil {
				opts.ConfigPath = configFile
			}
		}
		return tui.Run(ctx, h, opts)
	},
}

func init() {
	tuiCmd.Flags().BoolVar(&watchConfig, "watch", true, "Re-apply the config file's initial block when it changes")
}
