package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"mocap-zone-configurator/internal/config"
	"mocap-zone-configurator/internal/host"
	"mocap-zone-configurator/internal/logging"
)

// Options configures Run.
type Options struct {
	Logger *zap.Logger
	// ConfigPath, when set, is watched and its initial block re-applied on
	// every change.
	ConfigPath string
}

// Run shows the panel until the user quits or ctx is done.
func Run(ctx context.Context, h *host.Host, opts Options) error {
	logger := logging.OrNop(opts.Logger)
	p := tea.NewProgram(New(h, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)
	if opts.ConfigPath != "" {
		g.Go(func() error {
			return config.Watch(gctx, opts.ConfigPath, logger, func(c config.Config, err error) {
				p.Send(ConfigMsg{Config: c, Err: err})
			})
		})
	}

	_, runErr := p.Run()
	cancel()
	if err := g.Wait(); err != nil {
		logger.Warn("config watch stopped", zap.Error(err))
	}
	if runErr != nil {
		return fmt.Errorf("tui: %w", runErr)
	}
	return nil
}
