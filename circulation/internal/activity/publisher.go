package activity

import (
	"context"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/circuit_breaker"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

const queueSize = 1024

// Publisher sends activity records to Kafka from a background worker. Record only enqueues,
// so a slow broker never holds up the caller. Broker failures trip the breaker and are only
// logged; records that find the queue full are dropped with a warning.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	log      *zap.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan model.Activity
	done   chan struct{}
}

func NewPublisher(producer sarama.SyncProducer, topic string, log *zap.Logger) *Publisher {
	p := &Publisher{
		producer: producer,
		topic:    topic,
		cb:       circuit_breaker.New(20, 10*time.Second, 0.5, 3),
		log:      log.Named("activity-publisher"),
		queue:    make(chan model.Activity, queueSize),
		done:     make(chan struct{}),
	}
	go p.run()
	return p
}

func (p *Publisher) Record(_ context.Context, a model.Activity) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		p.dropped(a, "publisher closed")
		return
	}
	select {
	case p.queue <- a:
	default:
		p.dropped(a, "queue full")
	}
}

func (p *Publisher) run() {
	defer close(p.done)
	for a := range p.queue {
		p.publish(a)
	}
}

func (p *Publisher) publish(a model.Activity) {
	err := p.cb.Call(func() error {
		return kafka.Send(p.producer, p.topic, a.EntityID, a)
	})
	if err != nil {
		p.log.Warn("activity not published",
			zap.String("action", a.Action),
			zap.String("entity_id", a.EntityID),
			zap.Stringer("breaker", p.cb.State()),
			zap.Error(err))
	}
}

func (p *Publisher) dropped(a model.Activity, reason string) {
	p.log.Warn("activity dropped",
		zap.String("reason", reason),
		zap.String("action", a.Action),
		zap.String("entity_id", a.EntityID))
}

// Close drains the queue, then closes the producer.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return p.producer.Close()
}

type store interface {
	CreateActivity(ctx context.Context, a model.Activity) error
}

// StoreRecorder writes activity records straight to the database.
type StoreRecorder struct {
	store store
	log   *zap.Logger
}

func NewStoreRecorder(s store, log *zap.Logger) *StoreRecorder {
	return &StoreRecorder{store: s, log: log.Named("activity-store")}
}

func (r *StoreRecorder) Record(ctx context.Context, a model.Activity) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := r.store.CreateActivity(ctx, a); err != nil {
		r.log.Warn("activity not stored",
			zap.String("action", a.Action),
			zap.String("entity_id", a.EntityID),
			zap.Error(err))
	}
}
