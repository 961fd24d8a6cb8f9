package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Shopify/sarama"
	"github.com/lysu/kazoo-go"
)

// Storage only produces; downstream accounting owns the consumer side.
type Storage struct {
	sarama.SyncProducer
	*kazoo.Kazoo
}

func NewConnection(ctx context.Context, zkAddrs, brokers string) (storage Storage, err error) {

	conf := kazoo.NewConfig()
	conf.Timeout = time.Minute

	kz, err := kazoo.NewKazoo(strings.Split(zkAddrs, ","), conf)

	if err != nil {
		panic(err)
	}

	producer, err := sarama.NewSyncProducer(strings.Split(brokers, ","), nil)

	if err != nil {
		panic(err)
	}

	return Storage{
		Kazoo:        kz,
		SyncProducer: producer,
	}, err

}

// EnsureTopic creates the topic when it does not exist yet.
func (s Storage) EnsureTopic(topic string, partitions, replicas int) error {
	exists, err := s.Kazoo.Topic(topic).Exists()
	if err != nil || exists {
		return err
	}
	return s.Kazoo.CreateTopic(topic, partitions, replicas, map[string]interface{}{})
}

// PublishEvent sends one JSON event keyed by merchant id.
func (s Storage) PublishEvent(topic, merchantId string, event interface{}) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	_, _, err = s.SyncProducer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(merchantId),
		Value: sarama.ByteEncoder(payload),
	})

	return err
}
