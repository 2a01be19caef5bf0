package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client fires the external job-ingestion pipeline. The run is asynchronous:
// the only thing returned is a human-readable acknowledgment, results arrive
// later as database inserts.
type Client interface {
	TriggerSearch(ctx context.Context) (message string, err error)
}

type httpClient struct {
	baseURL string
	token   string
	client  *http.Client
	logger  *log.Logger
}

type dispatchResponse struct {
	Message string `json:"message"`
}

// NewClient returns nil for an empty base URL, which the caller treats as
// "trigger not configured".
func NewClient(baseURL, token string, logger *log.Logger) Client {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   strings.TrimSpace(token),
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

func (c *httpClient) TriggerSearch(ctx context.Context) (string, error) {
	if c == nil {
		return "", errors.New("nil ingest client")
	}
	endpoint := c.baseURL + "/dispatch"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader([]byte("{}")))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		err := fmt.Errorf("ingest trigger failed: status=%d body=%s", resp.StatusCode, bodyStr)
		if c.logger != nil {
			c.logger.Printf("[Ingest] TriggerSearch error endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return "", err
	}

	var out dispatchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		// A 2xx with an unreadable body is still a successful dispatch.
		return "", nil
	}
	return strings.TrimSpace(out.Message), nil
}

var _ Client = (*httpClient)(nil)
