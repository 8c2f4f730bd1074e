// Package notifier delivers order notifications to the notification service.
//
// QueueNotifier accepts notifications without blocking the caller and publishes
// them to a Kafka topic from one background goroutine. LogNotifier only logs and
// is used when no broker is configured.
package notifier

import (
	"strings"

	"github.com/segmentio/kafka-go"
)

// ParseBrokers splits a comma-separated broker list, dropping empty entries.
func ParseBrokers(csv string) []string {
	brokers := make([]string, 0)
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// NewKafkaWriter returns a writer that keeps the messages of one recipient on one partition.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}
