package cache

import (
	"context"
	"errors"
)

type Invalidator interface {
	Invalidate(ctx context.Context, path string) error
}

// Fanout forwards every signal to all sinks, even when one of them fails.
type Fanout []Invalidator

func (f Fanout) Invalidate(ctx context.Context, path string) error {
	var errs []error
	for _, sink := range f {
		if sink == nil {
			continue
		}
		if err := sink.Invalidate(ctx, path); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Nop is used when redis is not configured: nothing is cached, so there is
// nothing to invalidate.
type Nop struct{}

func (Nop) Get(context.Context, string, any) (bool, error) { return false, nil }
func (Nop) Set(context.Context, string, any) error         { return nil }
func (Nop) Invalidate(context.Context, string) error       { return nil }

func (Nop) Version(context.Context, string) (int64, error) { return 0, nil }

func (Nop) SetIfVersion(context.Context, string, any, int64) (bool, error) { return false, nil }
