package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/bountylab/bountyhub/internal/domain"
)

// KafkaWriter is the subset of kafka.Writer the publisher needs.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type TransactionEvent struct {
	TransactionID string `json:"transaction_id"`
	UserID        int    `json:"user_id"`
	Type          string `json:"type"`
	Status        string `json:"status"`
	Amount        string `json:"amount"`
	FeeAmount     string `json:"fee_amount"`
	NetAmount     string `json:"net_amount"`
	Timestamp     int64  `json:"timestamp"`
}

// Publisher emits ledger transaction events. The writer may be nil (no broker
// configured); publishing never fails the calling workflow.
type Publisher struct {
	writer KafkaWriter
}

func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

func NewKafkaWriter(address, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:     kafka.TCP(address),
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	}
}

func (p *Publisher) PublishTransaction(ctx context.Context, txn *domain.Transaction) {
	if p.writer == nil {
		return
	}

	event := TransactionEvent{
		TransactionID: txn.ID.String(),
		UserID:        txn.UserID,
		Type:          string(txn.Type),
		Status:        string(txn.Status),
		Amount:        txn.Amount.String(),
		FeeAmount:     txn.FeeAmount.String(),
		NetAmount:     txn.NetAmount.String(),
		Timestamp:     time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		zap.L().Error("can't marshal transaction event", zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		zap.L().Error("can't publish transaction event", zap.String("transaction_id", event.TransactionID), zap.Error(err))
	}
}

func (p *Publisher) Close() {
	if p.writer == nil {
		return
	}
	if err := p.writer.Close(); err != nil {
		zap.L().Error("can't close kafka writer", zap.Error(err))
	}
}
