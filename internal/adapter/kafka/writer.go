// Package kafka publishes drawn heatmap cells to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/temperature-heatmap/internal/config"
	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
)

// Writer produces cell messages to the configured topic.
// It implements heatmap.CellSink.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the cell topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.KafkaBrokers...),
		Topic:                  cfg.KafkaCellTopic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Writer{writer: w, logger: logger}
}

// Publish writes one message per cell in a single WriteMessages call. Every
// message of a batch carries the same render_id header.
func (w *Writer) Publish(ctx context.Context, cells []render.Cell) error {
	if len(cells) == 0 {
		return nil
	}
	batch := newBatchHeaders(uuid.NewString(), domain.Now())
	msgs := make([]kafkago.Message, len(cells))
	for i := range cells {
		msg, err := serializeToMessage(cells[i], batch)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("publish %d cells: %w", len(cells), err)
	}
	w.logger.Debug("cells published", "topic", w.writer.Topic, "count", len(cells), "render_id", string(batch[0].Value))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

func newBatchHeaders(renderID string, renderedAt time.Time) []kafkago.Header {
	return []kafkago.Header{
		{Key: "render_id", Value: []byte(renderID)},
		{Key: "rendered_at", Value: []byte(renderedAt.Format(time.RFC3339))},
	}
}

// messageKey groups a cell's messages by year and month.
func messageKey(c render.Cell) []byte {
	return []byte(strconv.Itoa(c.Year) + "-" + strconv.Itoa(c.Month))
}

func serializeToMessage(c render.Cell, headers []kafkago.Header) (kafkago.Message, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize cell %d-%d: %w", c.Year, c.Month, err)
	}
	return kafkago.Message{
		Key:     messageKey(c),
		Value:   data,
		Headers: headers,
	}, nil
}
