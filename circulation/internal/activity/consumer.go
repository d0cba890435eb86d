package activity

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
)

// Consumer persists activity records read from the activity topic.
type Consumer struct {
	store      store
	log        *zap.Logger
	retryDelay time.Duration
}

func NewConsumer(s store, log *zap.Logger) *Consumer {
	return &Consumer{
		store:      s,
		log:        log.Named("activity-consumer"),
		retryDelay: time.Second,
	}
}

func (c *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (c *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim marks undecodable messages so they are not redelivered. A failed insert ends
// the session before anything past it is marked, so the record is read again on rejoin.
func (c *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := c.handle(session.Context(), message); err != nil {
				c.log.Error("store activity", zap.Error(err), zap.Int64("offset", message.Offset))
				select {
				case <-time.After(c.retryDelay):
				case <-session.Context().Done():
				}
				return errors.Wrapf(err, "store activity at offset %d", message.Offset)
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}

func (c *Consumer) handle(ctx context.Context, message *sarama.ConsumerMessage) error {
	var a model.Activity
	if err := kafka.Decode(message, &a); err != nil {
		c.log.Error("decode activity", zap.Error(err), zap.ByteString("value", message.Value))
		return nil
	}
	if err := c.store.CreateActivity(ctx, a); err != nil {
		return err
	}
	c.log.Debug("activity stored",
		zap.String("action", a.Action),
		zap.String("topic", message.Topic),
		zap.Time("timestamp", message.Timestamp))
	return nil
}
