// Package logging builds the zap logger shared by the commands and holds the
// canonical field names used across packages.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Canonical log field keys.
const (
	KeyOp        = "op"
	KeyMode      = "mocap_mode"
	KeyLight     = "light_condition"
	KeyMount     = "installation_height"
	KeyDimension = "dimension"
	KeyFrame     = "frame"
	KeyPath      = "path"
)

func Op(name string) zap.Field           { return zap.String(KeyOp, name) }
func Mode(m fmt.Stringer) zap.Field      { return zap.Stringer(KeyMode, m) }
func Light(c fmt.Stringer) zap.Field     { return zap.Stringer(KeyLight, c) }
func Mount(h fmt.Stringer) zap.Field     { return zap.Stringer(KeyMount, h) }
func Dimension(d fmt.Stringer) zap.Field { return zap.Stringer(KeyDimension, d) }
func Frame(i int) zap.Field              { return zap.Int(KeyFrame, i) }
func Path(p string) zap.Field            { return zap.String(KeyPath, p) }

// New builds a logger at the given level. An empty file writes to stderr.
func New(level, file string, development bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, fmt.Errorf("logging: parse level %q: %w", level, err)
	}

	cfg := zap.NewProductionConfig()
	if development {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("logging: build: %w", err)
	}
	return logger, nil
}

// OrNop returns l, or a no-op logger when l is nil.
func OrNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}
