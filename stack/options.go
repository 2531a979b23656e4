package stack

import (
	"errors"

	"github.com/google/uuid"
)

// Logger interface for debug records about rejected operations and capacity changes.
//
// *slog.Logger satisfies it. The package only logs at Debug; the full slog-style
// surface is kept so any structured logger can be passed in unchanged.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Option defines a functional option for configuring a Stack or a FixedStack.
type Option func(*config) error

type config struct {
	id     uuid.UUID
	logger Logger
}

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithID sets the ID instead of a generated one.
func WithID(id uuid.UUID) Option {
	return func(c *config) error {
		if id == uuid.Nil {
			return ErrNilID
		}

		c.id = id

		return nil
	}
}

func buildConfig(options []Option) (config, error) {
	var c config

	for _, option := range options {
		if err := option(&c); err != nil {
			return config{}, err
		}
	}

	if c.id == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return config{}, errors.Join(ErrGeneratingIDFailed, err)
		}

		c.id = id
	}

	return c, nil
}
