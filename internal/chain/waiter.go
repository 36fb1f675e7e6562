package chain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrReceiptTimeout = errors.New("timed out waiting for receipt")
	errReceiptPending = errors.New("receipt not available yet")
)

const (
	PollIntervalDefault = 3 * time.Second
	PollJitterDefault   = 400 * time.Millisecond
	PollTimeoutDefault  = 180 * time.Second
)

type ReceiptFetcher interface {
	Receipt(ctx context.Context, txHash common.Hash) (*Receipt, error)
}

type WaitOptions struct {
	Interval time.Duration
	Jitter   time.Duration
	Timeout  time.Duration
}

func DefaultWaitOptions() WaitOptions {
	return WaitOptions{
		Interval: PollIntervalDefault,
		Jitter:   PollJitterDefault,
		Timeout:  PollTimeoutDefault,
	}
}

// jitterBackOff waits a fixed interval plus a uniformly random share of the jitter bound,
// so that many concurrent pollers do not hit the node in lockstep.
type jitterBackOff struct {
	interval time.Duration
	jitter   time.Duration
}

func (b *jitterBackOff) NextBackOff() time.Duration {
	if b.jitter <= 0 {
		return b.interval
	}

	return b.interval + rand.N(b.jitter)
}

func (b *jitterBackOff) Reset() {}

// WaitForReceipt polls the fetcher until a receipt is available. A missing receipt is retried,
// a fetcher error is returned at once. The timeout is measured from the first poll and checked
// after each empty poll.
func WaitForReceipt(ctx context.Context, fetcher ReceiptFetcher, txHash common.Hash, opts WaitOptions, notify backoff.Notify) (*Receipt, error) {
	start := time.Now()

	// a hanging query must not hold the wait past the timeout plus one poll interval
	pollCtx, cancel := context.WithDeadline(ctx, start.Add(opts.Timeout+opts.Interval))
	defer cancel()

	timedOut := func() error {
		return errors.Join(ErrReceiptTimeout, fmt.Errorf("tx %s, waited %s", txHash.Hex(), time.Since(start).Round(time.Millisecond)))
	}

	operation := func() (*Receipt, error) {
		receipt, err := fetcher.Receipt(pollCtx, txHash)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		if receipt != nil {
			return receipt, nil
		}

		if time.Since(start) > opts.Timeout {
			return nil, backoff.Permanent(timedOut())
		}

		return nil, errReceiptPending
	}

	policy := backoff.WithContext(&jitterBackOff{interval: opts.Interval, jitter: opts.Jitter}, pollCtx)

	receipt, err := backoff.RetryNotifyWithData(operation, policy, notify)
	if err != nil && errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		return nil, errors.Join(timedOut(), err)
	}

	return receipt, err
}

// Waiter binds a receipt fetcher to fixed polling options.
type Waiter struct {
	logger  *slog.Logger
	fetcher ReceiptFetcher
	opts    WaitOptions
}

func NewWaiter(logger *slog.Logger, fetcher ReceiptFetcher, opts WaitOptions) *Waiter {
	return &Waiter{
		logger:  logger.With(slog.String("module", "receipt-waiter")),
		fetcher: fetcher,
		opts:    opts,
	}
}

func (w *Waiter) Wait(ctx context.Context, txHash common.Hash) (*Receipt, error) {
	notify := func(_ error, next time.Duration) {
		w.logger.Debug("receipt pending", slog.String("hash", txHash.Hex()), slog.String("next try", next.String()))
	}

	return WaitForReceipt(ctx, w.fetcher, txHash, w.opts, notify)
}
