package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/backoffice-labs/sales-api/internal/api/metrics"
	"github.com/backoffice-labs/sales-api/internal/core/domain"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// AlertSink consumes restock alerts. The log sink below is the default;
// a webhook or mail sink can be swapped in without touching the dispatcher.
type AlertSink interface {
	Notify(ctx context.Context, alert domain.RestockAlert) error
}

// Dispatcher routes restock alerts to a fixed set of workers using consistent
// hashing on the product id, guaranteeing per-product alert ordering.
type Dispatcher struct {
	workers []chan domain.RestockAlert
	sink    AlertSink
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sink AlertSink, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.RestockAlert, numWorkers),
		sink:    sink,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.RestockAlert, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// LowStock enqueues an alert for the worker responsible for its product.
// The call is non-blocking up to channelBuffer capacity. It satisfies the
// sale service's RestockNotifier interface.
func (d *Dispatcher) LowStock(alert domain.RestockAlert) {
	idx := d.shardIndex(alert.ProductID)
	d.workers[idx] <- alert
	metrics.RestockQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a product id deterministically to a worker index.
func (d *Dispatcher) shardIndex(productID int64) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(strconv.FormatInt(productID, 10)))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.RestockAlert) {
	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-ch:
			if !ok {
				return
			}
			metrics.RestockQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
			if err := d.sink.Notify(ctx, alert); err != nil {
				d.log.Error().Err(err).
					Int64("product_id", alert.ProductID).
					Int("worker_id", id).
					Msg("restock alert delivery failed")
			}
		}
	}
}

// LogSink emits restock alerts to the structured log.
type LogSink struct {
	log zerolog.Logger
}

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Notify(_ context.Context, alert domain.RestockAlert) error {
	s.log.Warn().
		Int64("product_id", alert.ProductID).
		Int64("remaining", alert.Remaining).
		Msg("product stock below restock threshold")
	metrics.RestockAlertsTotal.Inc()
	return nil
}
