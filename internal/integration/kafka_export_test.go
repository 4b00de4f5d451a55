//go:build integration

package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/couchcryptid/temperature-heatmap/internal/adapter/kafka"
	"github.com/couchcryptid/temperature-heatmap/internal/config"
	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/heatmap"
	"github.com/couchcryptid/temperature-heatmap/internal/layout"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"github.com/couchcryptid/temperature-heatmap/internal/render"
)

const testCellTopic = "test-heatmap-cells"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()
	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0",
		tckafka.WithClusterID("heatmap-test"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()
	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	controller, err := conn.Controller()
	require.NoError(t, err)
	ctrl, err := kafkago.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	require.NoError(t, err)
	defer ctrl.Close()

	require.NoError(t, ctrl.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

type staticFetcher struct{ ds domain.Dataset }

func (f staticFetcher) Fetch(context.Context) (domain.Dataset, error) { return f.ds, nil }

// TestMountPublishesCells mounts a view wired to a real Kafka writer and reads
// every drawn cell back from the topic.
func TestMountPublishesCells(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testCellTopic)

	cfg := &config.Config{KafkaBrokers: []string{broker}, KafkaCellTopic: testCellTopic}
	writer := kafka.NewWriter(cfg, discardLogger())
	t.Cleanup(func() { _ = writer.Close() })

	ds := domain.Dataset{
		BaseTemperature: 8.66,
		MonthlyVariance: []domain.Record{
			{Year: 1753, Month: 1, Variance: -6.2},
			{Year: 1753, Month: 2, Variance: -4.1},
			{Year: 2015, Month: 12, Variance: 1.2},
		},
	}
	metrics := observability.NewMetricsForTesting()
	view := heatmap.New(staticFetcher{ds: ds}, writer, layout.Default(), discardLogger(), metrics)
	view.Mount(ctx)
	require.Equal(t, heatmap.Loaded, view.State())

	consumer := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     []string{broker},
		Topic:       testCellTopic,
		GroupID:     fmt.Sprintf("test-cells-%d", time.Now().UnixNano()),
		StartOffset: kafkago.FirstOffset,
	})
	t.Cleanup(func() { _ = consumer.Close() })

	renderIDs := map[string]struct{}{}
	got := map[string]render.Cell{}
	for len(got) < len(ds.MonthlyVariance) {
		readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
		msg, err := consumer.ReadMessage(readCtx)
		readCancel()
		require.NoError(t, err, "read from cell topic")

		headers := map[string]string{}
		for _, h := range msg.Headers {
			headers[h.Key] = string(h.Value)
		}
		require.NotEmpty(t, headers["render_id"])
		renderIDs[headers["render_id"]] = struct{}{}
		_, err = time.Parse(time.RFC3339, headers["rendered_at"])
		assert.NoError(t, err, "rendered_at should be valid RFC3339")

		var cell render.Cell
		require.NoError(t, json.Unmarshal(msg.Value, &cell))
		got[string(msg.Key)] = cell
	}

	assert.Len(t, renderIDs, 1, "one render id per draw pass")
	assert.InDelta(t, 2.46, got["1753-1"].Temperature, 1e-9)
	assert.Equal(t, "February", got["1753-2"].MonthName)
	assert.InDelta(t, 9.86, got["2015-12"].Temperature, 1e-9)
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.PublishErrors))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.CellsPublished))
}
