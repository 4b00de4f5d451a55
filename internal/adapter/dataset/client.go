package dataset

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
)

// DefaultURL is the published global land-surface temperature dataset.
const DefaultURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json"

// Client fetches the dataset over HTTP. It issues exactly one GET per Fetch
// and never retries.
type Client struct {
	url        string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a dataset client. A zero timeout waits for the server
// indefinitely.
func NewClient(url string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch downloads and decodes the dataset.
func (c *Client) Fetch(ctx context.Context) (domain.Dataset, error) {
	start := time.Now()
	ds, err := c.fetch(ctx)
	c.metrics.DatasetFetchDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.DatasetFetches.WithLabelValues("error").Inc()
		return domain.Dataset{}, err
	}
	c.metrics.DatasetFetches.WithLabelValues("success").Inc()
	c.logger.Debug("dataset fetched", "url", c.url, "records", len(ds.MonthlyVariance))
	return ds, nil
}

func (c *Client) fetch(ctx context.Context) (domain.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("dataset request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Dataset{}, fmt.Errorf("dataset source error: status %d: %s", resp.StatusCode, body)
	}

	return domain.Decode(resp.Body)
}

// FileSource reads the dataset from a local JSON file.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Fetch reads and decodes the file.
func (s *FileSource) Fetch(_ context.Context) (domain.Dataset, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()
	return domain.Decode(f)
}
