// Package kafka publishes notification and audit events as JSON messages.
package kafka

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

const (
	// DefaultQueueSize bounds how many events may wait for the broker.
	DefaultQueueSize = 1024

	// sendTimeout caps one broker write so a stuck broker cannot stall the queue forever.
	sendTimeout = 10 * time.Second
)

var (
	ErrQueueFull = errors.New("kafka publish queue is full")
	ErrClosed    = errors.New("kafka producer is closed")
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// Producer hands messages to a single background sender through a bounded
// queue. Publish never waits for the broker: when the queue is full the
// message is rejected with ErrQueueFull, and broker failures are logged by
// the sender.
type Producer struct {
	w       messageWriter
	queue   chan kafka.Message
	timeout time.Duration
	logger  *slog.Logger
	done    chan struct{}

	mu     sync.RWMutex
	closed bool
}

// NewProducer starts a producer writing to brokers. A queueSize below one
// falls back to DefaultQueueSize.
//
// Example:
//
//	p := kafka.NewProducer([]string{"localhost:9092"}, kafka.DefaultQueueSize, logger)
//	defer p.Close()
func NewProducer(brokers []string, queueSize int, logger *slog.Logger) *Producer {
	return newProducerWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
	}, queueSize, sendTimeout, logger)
}

func newProducerWithWriter(w messageWriter, queueSize int, timeout time.Duration, logger *slog.Logger) *Producer {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	p := &Producer{
		w:       w,
		queue:   make(chan kafka.Message, queueSize),
		timeout: timeout,
		logger:  logger.With("component", "kafka-producer"),
		done:    make(chan struct{}),
	}
	go p.run()
	return p
}

// Publish enqueues one message. A nil error means accepted, not delivered.
func (p *Producer) Publish(_ context.Context, topic string, key, value []byte) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return errors.Wrap(ErrClosed, "kafka publish")
	}

	select {
	case p.queue <- kafka.Message{Topic: topic, Key: key, Value: value}:
		return nil
	default:
		return errors.Wrap(ErrQueueFull, "kafka publish")
	}
}

func (p *Producer) run() {
	defer close(p.done)
	for msg := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		err := p.w.WriteMessages(ctx, msg)
		cancel()
		if err != nil {
			p.logger.Warn("kafka publish failed",
				"topic", msg.Topic,
				"key", string(msg.Key),
				"error", err)
		}
	}
}

// Close stops accepting messages, waits for the queued ones to be sent and
// then closes the writer when it supports it.
func (p *Producer) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	if c, ok := p.w.(interface{ Close() error }); ok {
		return errors.Wrap(c.Close(), "kafka close")
	}
	return nil
}
