package publisher

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nats-io/nats.go"
)

var ErrNatsConnectionFailed = errors.New("failed to connect to NATS server")

type natsConfig struct {
	maxReconnects int
	reconnectWait time.Duration
	timeout       time.Duration
}

func WithMaxReconnects(maxReconnects int) func(*natsConfig) {
	return func(c *natsConfig) {
		c.maxReconnects = maxReconnects
	}
}

func WithReconnectWait(reconnectWait time.Duration) func(*natsConfig) {
	return func(c *natsConfig) {
		c.reconnectWait = reconnectWait
	}
}

// Connect dials the NATS server. Connection problems after the dial are only logged.
func Connect(natsURL string, logger *slog.Logger, opts ...func(*natsConfig)) (*nats.Conn, error) {
	logger = logger.With(slog.String("module", "nats"))

	cfg := &natsConfig{
		maxReconnects: 5,
		reconnectWait: 2 * time.Second,
		timeout:       5 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "launcher"
	}

	nc, err := nats.Connect(natsURL,
		nats.Name(hostname),
		nats.Timeout(cfg.timeout),
		nats.MaxReconnects(cfg.maxReconnects),
		nats.ReconnectWait(cfg.reconnectWait),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			if err != nil {
				logger.Error("connection error", slog.String("err", err.Error()))
			}
		}),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("client disconnected", slog.String("err", err.Error()))
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("client reconnected")
		}),
	)
	if err != nil {
		return nil, errors.Join(ErrNatsConnectionFailed, fmt.Errorf("url: %s", natsURL), err)
	}

	return nc, nil
}
