package prompt

import (
	"context"
	"errors"

	"github.com/hytalemodding/modinit/internal/scaffold"
)

// ErrCancelled is returned when the user aborts input. Callers treat it as a
// silent no-op rather than a failure.
var ErrCancelled = errors.New("input cancelled")

// InputSource produces a complete scaffold configuration.
type InputSource interface {
	Collect(ctx context.Context) (*scaffold.Config, error)
}

// Static is an InputSource backed by pre-filled values. Blank package, main
// class and description are derived from the other fields.
type Static struct {
	Config scaffold.Config
}

// Collect returns a copy of the configured values with defaults applied.
func (s Static) Collect(ctx context.Context) (*scaffold.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}
	cfg := s.Config
	cfg.ApplyDefaults()
	return &cfg, nil
}
