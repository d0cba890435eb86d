package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Config struct {
	Addrs         []string `yaml:"addrs" envconfig:"KAFKA_ADDRS"`
	ActivityTopic string   `yaml:"activityTopic" envconfig:"KAFKA_ACTIVITY_TOPIC" default:"library.activity"`
	ConsumerGroup string   `yaml:"consumerGroup" envconfig:"KAFKA_CONSUMER_GROUP" default:"library-activity"`
}

func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 2 * time.Second
	defaultCfg.Producer.Retry.Max = 1
	defaultCfg.Net.DialTimeout = 2 * time.Second

	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewConsumer(cfg Config) (sarama.ConsumerGroup, error) {
	defaultCfg := sarama.NewConfig()
	defaultCfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	defaultCfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}

	return sarama.NewConsumerGroup(cfg.Addrs, cfg.ConsumerGroup, defaultCfg)
}

const rejoinBackoff = time.Second

// Consume serves handler until ctx is cancelled. A session that ends with an error is
// rejoined after a short pause.
func Consume(ctx context.Context, group sarama.ConsumerGroup, handler sarama.ConsumerGroupHandler, log *zap.Logger, topics ...string) {
	for {
		if err := group.Consume(ctx, topics, handler); err != nil {
			if errors.Is(err, sarama.ErrClosedConsumerGroup) {
				return
			}
			log.Error("kafka consume", zap.Error(err))
			select {
			case <-time.After(rejoinBackoff):
			case <-ctx.Done():
			}
		}
		if ctx.Err() != nil {
			return
		}
	}
}

// Send publishes v as a JSON message keyed by key.
func Send(producer sarama.SyncProducer, topic, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "marshal message")
	}
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(data),
	}
	if _, _, err = producer.SendMessage(msg); err != nil {
		return errors.Wrap(err, "send message")
	}
	return nil
}

func Decode(msg *sarama.ConsumerMessage, v any) error {
	return json.Unmarshal(msg.Value, v)
}
