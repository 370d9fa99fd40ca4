package config

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// ValidationError reports one invalid field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Limits for render settings.
const (
	MinSize        = 16
	MaxSize        = 4096
	MaxSupersample = 4
	MaxFPS         = 240
)

// Validate checks a resolved config and returns every problem joined.
func (c Config) Validate() error {
	var errs []error
	add := func(field, format string, args ...any) {
		errs = append(errs, &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)})
	}

	if c.Render.Size < MinSize || c.Render.Size > MaxSize {
		add("render.size", "must be between %d and %d, got %d", MinSize, MaxSize, c.Render.Size)
	}
	if c.Render.Supersample < 1 || c.Render.Supersample > MaxSupersample {
		add("render.supersample", "must be between 1 and %d, got %d", MaxSupersample, c.Render.Supersample)
	}
	if c.Render.FPS < 1 || c.Render.FPS > MaxFPS {
		add("render.fps", "must be between 1 and %d, got %d", MaxFPS, c.Render.FPS)
	}
	switch strings.ToLower(c.Render.Format) {
	case "webp", "tga":
	default:
		add("render.format", "must be webp or tga, got %q", c.Render.Format)
	}
	if c.Workers < 1 {
		add("workers", "must be positive, got %d", c.Workers)
	}
	if _, err := zapcore.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		add("log.level", "unknown level %q", c.Log.Level)
	}
	return errors.Join(errs...)
}
