package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

type captureSink struct {
	mu     sync.Mutex
	alerts []domain.RestockAlert
	seen   chan struct{}
	err    error
}

func newCaptureSink(capacity int) *captureSink {
	return &captureSink{seen: make(chan struct{}, capacity)}
}

func (s *captureSink) Notify(_ context.Context, alert domain.RestockAlert) error {
	s.mu.Lock()
	s.alerts = append(s.alerts, alert)
	s.mu.Unlock()
	s.seen <- struct{}{}
	return s.err
}

func (s *captureSink) wait(t *testing.T, n int) []domain.RestockAlert {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-s.seen:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for alert %d of %d", i+1, n)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.RestockAlert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

func TestDispatcher_DeliversAlerts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCaptureSink(4)
	d := NewDispatcher(2, sink, zerolog.Nop())
	d.Start(ctx)

	d.LowStock(domain.RestockAlert{ProductID: 1, Remaining: 2})
	d.LowStock(domain.RestockAlert{ProductID: 2, Remaining: 0})

	alerts := sink.wait(t, 2)
	if len(alerts) != 2 {
		t.Fatalf("alerts = %d, want 2", len(alerts))
	}
}

func TestDispatcher_PerProductOrdering(t *testing.T) {
	// Alerts for one product always land on the same worker, so their
	// decreasing remaining counts must arrive in submission order.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCaptureSink(8)
	d := NewDispatcher(4, sink, zerolog.Nop())
	d.Start(ctx)

	for remaining := int64(4); remaining >= 0; remaining-- {
		d.LowStock(domain.RestockAlert{ProductID: 7, Remaining: remaining})
	}

	alerts := sink.wait(t, 5)
	for i, alert := range alerts {
		if want := int64(4 - i); alert.Remaining != want {
			t.Fatalf("alert %d remaining = %d, want %d", i, alert.Remaining, want)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newCaptureSink(1), zerolog.Nop())

	for _, id := range []int64{1, 99, 12345} {
		first := d.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shardIndex(%d) unstable: %d then %d", id, first, got)
			}
		}
	}
}

func TestDispatcher_SinkErrorDoesNotStopWorker(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := newCaptureSink(4)
	sink.err = errors.New("webhook 503")
	d := NewDispatcher(1, sink, zerolog.Nop())
	d.Start(ctx)

	d.LowStock(domain.RestockAlert{ProductID: 1, Remaining: 1})
	d.LowStock(domain.RestockAlert{ProductID: 1, Remaining: 0})

	alerts := sink.wait(t, 2)
	if len(alerts) != 2 {
		t.Fatalf("worker stopped after sink error: got %d alerts", len(alerts))
	}
}
