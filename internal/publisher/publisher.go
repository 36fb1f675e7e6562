package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/memelaunch/launcher/internal/launcher"
	"github.com/memelaunch/launcher/pkg/tracing"
)

const SubjectDefault = "launcher.outcomes"

var (
	ErrFailedToPublish = errors.New("failed to publish")
	ErrFailedToEncode  = errors.New("failed to encode outcome")
)

type NatsConnection interface {
	Publish(subj string, data []byte) error
	Drain() error
}

// OutcomeMessage is the JSON document published for every launch outcome.
type OutcomeMessage struct {
	RunID        string    `json:"runId"`
	Index        int       `json:"index"`
	Account      string    `json:"account"`
	Symbol       string    `json:"symbol"`
	Status       string    `json:"status"`
	Stage        string    `json:"stage,omitempty"`
	Error        string    `json:"error,omitempty"`
	Token        string    `json:"token,omitempty"`
	URL          string    `json:"url,omitempty"`
	TxHash       string    `json:"txHash,omitempty"`
	BlockNumber  uint64    `json:"blockNumber,omitempty"`
	ApproveTx    string    `json:"approveTx,omitempty"`
	ApproveBlock uint64    `json:"approveBlock,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}

type Publisher struct {
	nc      NatsConnection
	logger  *slog.Logger
	subject string
	now     func() time.Time

	tracingEnabled    bool
	tracingAttributes []attribute.KeyValue
}

func WithSubject(subject string) func(*Publisher) {
	return func(p *Publisher) {
		if subject != "" {
			p.subject = subject
		}
	}
}

func WithNow(now func() time.Time) func(*Publisher) {
	return func(p *Publisher) {
		p.now = now
	}
}

func WithTracer(attr ...attribute.KeyValue) func(*Publisher) {
	return func(p *Publisher) {
		p.tracingEnabled = true
		if len(attr) > 0 {
			p.tracingAttributes = append(p.tracingAttributes, attr...)
		}
	}
}

func New(nc NatsConnection, logger *slog.Logger, opts ...func(*Publisher)) *Publisher {
	p := &Publisher{
		nc:      nc,
		logger:  logger.With(slog.String("module", "publisher")),
		subject: SubjectDefault,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

func NewOutcomeMessage(runID string, o launcher.Outcome, now time.Time) OutcomeMessage {
	msg := OutcomeMessage{
		RunID:     runID,
		Index:     o.Index,
		Account:   o.Account,
		Symbol:    o.Symbol,
		Timestamp: now.UTC(),
	}

	if !o.Succeeded() {
		msg.Status = "failed"
		msg.Stage = string(launcher.StageOf(o.Err))
		if o.Err != nil {
			msg.Error = o.Err.Error()
		}
		return msg
	}

	msg.Status = "succeeded"
	msg.Token = o.Result.Token.Hex()
	msg.URL = o.Result.URL
	msg.TxHash = o.Result.TxHash.Hex()
	msg.BlockNumber = o.Result.BlockNumber
	if o.Result.ApproveBlock > 0 {
		msg.ApproveTx = o.Result.ApproveTx.Hex()
		msg.ApproveBlock = o.Result.ApproveBlock
	}

	return msg
}

func (p *Publisher) Publish(ctx context.Context, runID string, o launcher.Outcome) (err error) {
	_, span := tracing.StartTracing(ctx, "Publisher.Publish", p.tracingEnabled, p.tracingAttributes...)
	defer func() {
		tracing.EndTracing(span, err)
	}()

	data, err := json.Marshal(NewOutcomeMessage(runID, o, p.now()))
	if err != nil {
		return errors.Join(ErrFailedToEncode, err)
	}

	err = p.nc.Publish(p.subject, data)
	if err != nil {
		return errors.Join(ErrFailedToPublish, fmt.Errorf("subject: %s", p.subject), err)
	}

	return nil
}

// PublishAll publishes every outcome and returns the number published. Failures are logged.
func (p *Publisher) PublishAll(ctx context.Context, runID string, outcomes []launcher.Outcome) int {
	published := 0
	for _, o := range outcomes {
		err := p.Publish(ctx, runID, o)
		if err != nil {
			p.logger.Error("failed to publish outcome", slog.Int("index", o.Index), slog.String("err", err.Error()))
			continue
		}
		published++
	}

	return published
}

func (p *Publisher) Shutdown() {
	if p.nc == nil {
		return
	}

	err := p.nc.Drain()
	if err != nil {
		p.logger.Error("failed to drain nats connection", slog.String("err", err.Error()))
	}
}
