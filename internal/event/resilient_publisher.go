package event

import (
	"context"
	"sync"
	"time"

	"github.com/aldenjg/cornharvest/internal/logger"
)

// ResilientPublisher wraps a Bus so that a failed publish is retried in the
// background with exponential backoff and finally dead-lettered.
type ResilientPublisher struct {
	inner      Bus
	maxRetries int
	baseDelay  time.Duration
	deadLetter *DeadLetterWriter

	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewResilientPublisher creates a publisher writing exhausted events to deadLetterPath
func NewResilientPublisher(inner Bus, maxRetries int, baseDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, err
	}
	return &ResilientPublisher{
		inner:      inner,
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		deadLetter: dlw,
		shutdown:   make(chan struct{}),
	}, nil
}

// Publish delivers the event. A failure is logged and retried in the
// background, so callers are never blocked by a broken subscriber.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"max_retries", p.maxRetries)

	p.wg.Add(1)
	go p.retryLoop(event, err)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()
	ctx := context.Background()

	for attempt := 1; attempt <= p.maxRetries; attempt++ {
		select {
		case <-time.After(CalculateRetryDelay(p.baseDelay, attempt)):
		case <-p.shutdown:
			p.writeDeadLetter(event, attempt-1, lastErr)
			return
		}

		if lastErr = p.inner.Publish(ctx, event); lastErr == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}
		logger.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	p.writeDeadLetter(event, p.maxRetries, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	logger.Warn(LogMsgEventDeadLettered, "event_type", event.Type, "attempts", attempts)
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterFailed, "error", err)
	}
}

// Shutdown stops pending retries, dead-letters what is left and closes the file
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
	return p.deadLetter.Close()
}
