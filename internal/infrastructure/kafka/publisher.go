package kafka

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Publisher emits domain events for downstream consumers (notifications,
// analytics). Publishing is best-effort: a broker outage must never fail a
// settlement transaction, so callers log and continue.
type Publisher struct {
	writer          *kafka.Writer
	settlementTopic string
	disputeTopic    string
}

func NewPublisher(brokers []string, settlementTopic, disputeTopic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		settlementTopic: settlementTopic,
		disputeTopic:    disputeTopic,
	}
}

func (p *Publisher) PublishSettlement(event SettlementEvent) {
	p.publish(p.settlementTopic, event.OrderID, event)
}

func (p *Publisher) PublishDispute(event DisputeEvent) {
	p.publish(p.disputeTopic, event.OrderID, event)
}

func (p *Publisher) publish(topic, key string, event any) {
	value, err := json.Marshal(event)
	if err != nil {
		log.Printf("failed to marshal %s event: %v", topic, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: value,
		Time:  time.Now(),
	}); err != nil {
		log.Printf("failed to publish %s event for order %s: %v", topic, key, err)
	}
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
