package worker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"nsbridge/internal/config"
	"nsbridge/internal/integration"
	"nsbridge/internal/logger"
	"nsbridge/internal/models"
	"nsbridge/internal/netsuite"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Worker periodically pulls NetSuite-originated item fulfillments and
// publishes one shipment:confirm message per fulfillment. The watermark
// advances only after a successful publish, so a failed poll is retried from
// the same point on the next tick.
type Worker struct {
	config    *config.Config
	logger    *logger.Logger
	shipments *integration.ShipmentFlow
	writer    *kafka.Writer
	since     time.Time
	quit      chan struct{}
	done      chan struct{}
}

func New(cfg *config.Config, logger *logger.Logger, shipments *integration.ShipmentFlow) *Worker {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:    cfg.ShipmentTopic,
		Balancer: &kafka.LeastBytes{},
	}

	since := time.Time{}
	if cfg.LastUpdatedAfter != "" {
		if parsed, err := time.Parse(netsuite.DateLayout, cfg.LastUpdatedAfter); err == nil {
			since = parsed
		}
	}

	return &Worker{
		config:    cfg,
		logger:    logger,
		shipments: shipments,
		writer:    writer,
		since:     since,
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

func (w *Worker) Start() {
	w.logger.Info("Worker started, polling NetSuite fulfillments...")

	ticker := time.NewTicker(time.Duration(w.config.PollInterval) * time.Second)
	defer ticker.Stop()

	w.poll()
	for {
		select {
		case <-w.quit:
			close(w.done)
			return
		case <-ticker.C:
			w.poll()
		}
	}
}

func (w *Worker) poll() {
	messages, next, err := w.shipments.Pull(w.since)
	if err != nil {
		w.logger.Error("Failed to pull fulfillments: %v", err)
		return
	}
	if len(messages) == 0 {
		w.logger.Debug("No fulfillments modified since %s", w.since)
		return
	}

	kafkaMessages := make([]kafka.Message, 0, len(messages))
	for _, message := range messages {
		value, err := json.Marshal(models.Message{Topic: "shipment:confirm", Payload: message})
		if err != nil {
			w.logger.Error("Failed to marshal shipment %s: %v", message.ID, err)
			return
		}
		kafkaMessages = append(kafkaMessages, kafka.Message{
			Key:   []byte(uuid.NewString()),
			Value: value,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := w.writer.WriteMessages(ctx, kafkaMessages...); err != nil {
		w.logger.Error("Failed to publish shipment messages: %v", err)
		return
	}

	w.since = next
	w.logger.Info("Published %d shipment messages, watermark now %s", len(kafkaMessages), w.since)
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	close(w.quit)
	<-w.done
	w.writer.Close()
}
