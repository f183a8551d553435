// Package notify delivers new-quote notifications off the request path.
package notify

import (
	"context"
	"errors"
	"sync"
	"time"

	"murray-moving/internal/data/entity"
	"murray-moving/pkg/metrics"

	"go.uber.org/zap"
)

var ErrClosed = errors.New("notification dispatcher closed")

type Config struct {
	From      string
	To        string
	QueueSize int
	Timeout   time.Duration
}

// Dispatcher queues quotes and delivers them from a single worker. Delivery
// failures are logged and counted, never returned to the submitter.
type Dispatcher struct {
	sender  Sender
	cfg     Config
	log     *zap.Logger
	metrics *metrics.Metrics

	mu     sync.RWMutex
	closed bool
	queue  chan *entity.QuoteRequest
	done   chan struct{}
}

func NewDispatcher(sender Sender, cfg Config, log *zap.Logger, m *metrics.Metrics) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	d := &Dispatcher{
		sender:  sender,
		cfg:     cfg,
		log:     log.With(zap.String("component", "notifier")),
		metrics: m,
		queue:   make(chan *entity.QuoteRequest, cfg.QueueSize),
		done:    make(chan struct{}),
	}

	go d.run()

	return d
}

// NotifyQuote queues quote for delivery without waiting. A full queue or a
// closed dispatcher drops the notification with a warning.
func (d *Dispatcher) NotifyQuote(quote *entity.QuoteRequest) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(quote, ErrClosed)
		return
	}

	select {
	case d.queue <- quote.Clone():
	default:
		d.drop(quote, errors.New("notification queue full"))
	}
}

// Close stops accepting notifications and waits for queued ones to finish,
// or for ctx to expire.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		d.log.Warn("Notification queue not drained before shutdown",
			zap.Int("pending", len(d.queue)))
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	for quote := range d.queue {
		d.deliver(quote)
	}
}

func (d *Dispatcher) deliver(quote *entity.QuoteRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Timeout)
	defer cancel()

	msg, err := RenderQuote(d.cfg.From, d.cfg.To, quote)
	if err == nil {
		err = d.sender.Send(ctx, msg)
	}

	if err != nil {
		d.metrics.Notification("failed")
		d.log.Error("Failed to send quote notification",
			zap.Error(err),
			zap.Int64("quote_id", quote.ID),
		)
		return
	}

	d.metrics.Notification("sent")
	d.log.Info("Quote notification sent",
		zap.Int64("quote_id", quote.ID),
		zap.String("to", msg.To),
	)
}

func (d *Dispatcher) drop(quote *entity.QuoteRequest, reason error) {
	d.metrics.Notification("dropped")
	d.log.Warn("Quote notification dropped",
		zap.Error(reason),
		zap.Int64("quote_id", quote.ID),
	)
}
