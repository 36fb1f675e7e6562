package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

type Mode string

const (
	ModeSequential Mode = "sequential"
	ModeParallel   Mode = "parallel"
)

var (
	ErrNoWorkFunc     = errors.New("no work function given")
	ErrUnknownMode    = errors.New("unknown execution mode")
	ErrWorkerPanicked = errors.New("worker panicked")
)

// ParseMode accepts "sequential" or "parallel" in any case. Empty means parallel.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSequential:
		return ModeSequential, nil
	case ModeParallel, "":
		return ModeParallel, nil
	default:
		return "", errors.Join(ErrUnknownMode, fmt.Errorf("mode: %q", s))
	}
}

// Result is the outcome of one item. Index is the position of the item in the input.
type Result[R any] struct {
	Index int
	Value R
	Err   error
}

// WorkFunc processes the item at index i.
type WorkFunc[T any, R any] func(ctx context.Context, i int, item T) (R, error)

// Run dispatches by mode. Sequential mode, and a limit of 1, run items strictly one after another.
// Parallel mode runs min(limit, len(items)) workers, or one worker per item when limit is 0.
func Run[T any, R any](ctx context.Context, items []T, mode Mode, limit int, fn WorkFunc[T, R]) ([]Result[R], error) {
	switch mode {
	case ModeSequential:
		return RunBounded(ctx, items, 1, fn)
	case ModeParallel:
		if limit > 0 {
			return RunBounded(ctx, items, limit, fn)
		}
		return RunAll(ctx, items, fn)
	default:
		return nil, errors.Join(ErrUnknownMode, fmt.Errorf("mode: %q", mode))
	}
}

// RunBounded processes items with at most limit in flight. Workers claim the next unprocessed
// index from a shared counter. The result slice is aligned with items; an item's error never
// stops the others.
func RunBounded[T any, R any](ctx context.Context, items []T, limit int, fn WorkFunc[T, R]) ([]Result[R], error) {
	if fn == nil {
		return nil, ErrNoWorkFunc
	}

	results := make([]Result[R], len(items))

	if limit <= 1 {
		for i, item := range items {
			results[i] = call(ctx, i, item, fn)
		}
		return results, nil
	}

	var next atomic.Int64
	workers := min(limit, len(items))

	// workers never return an error, so the group does not cancel siblings
	g := errgroup.Group{}
	for range workers {
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= len(items) {
					return nil
				}
				results[i] = call(ctx, i, items[i], fn)
			}
		})
	}
	_ = g.Wait()

	return results, nil
}

// RunAll processes every item concurrently without a cap.
func RunAll[T any, R any](ctx context.Context, items []T, fn WorkFunc[T, R]) ([]Result[R], error) {
	if fn == nil {
		return nil, ErrNoWorkFunc
	}

	results := make([]Result[R], len(items))

	g := errgroup.Group{}
	for i, item := range items {
		g.Go(func() error {
			results[i] = call(ctx, i, item, fn)
			return nil
		})
	}
	_ = g.Wait()

	return results, nil
}

func call[T any, R any](ctx context.Context, i int, item T, fn WorkFunc[T, R]) (res Result[R]) {
	res.Index = i

	defer func() {
		if r := recover(); r != nil {
			var zero R
			res.Value = zero
			res.Err = errors.Join(ErrWorkerPanicked, fmt.Errorf("item %d: %v", i, r))
		}
	}()

	res.Value, res.Err = fn(ctx, i, item)

	return res
}
