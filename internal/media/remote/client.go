// Package remote is the HTTP client for the media store API. It implements
// repository.MediaRepository so the gateway and the gallery service can run
// against a store in another process.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/romariotrain/project-media/internal/media/models"
	"github.com/romariotrain/project-media/internal/media/query"
)

// StatusError is a non-2xx answer from the store.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("store responded %d: %s", e.StatusCode, e.Message)
}

// Unwrap maps well-known statuses onto the domain errors.
func (e *StatusError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusNotFound:
		return models.ErrNotFound
	case http.StatusConflict:
		return models.ErrConflict
	case http.StatusBadRequest:
		return models.ErrInvalidArgument
	default:
		return nil
	}
}

type Client struct {
	baseURL string
	client  *http.Client
	logger  zerolog.Logger
}

func NewClient(baseURL string, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger.With().Str("component", "media_store_client").Logger(),
	}
}

func (c *Client) CreateMedia(ctx context.Context, m *models.MediaRecord) (*models.MediaRecord, error) {
	if m == nil || m.ProjectID == "" {
		return nil, models.ErrInvalidArgument
	}

	var out models.MediaRecord
	err := c.do(ctx, http.MethodPost, projectPath(m.ProjectID, ""), models.RequestFromRecord(m), &out)
	if err != nil {
		return nil, fmt.Errorf("create media: %w", err)
	}
	return &out, nil
}

func (c *Client) DeleteMedia(ctx context.Context, projectID string, ids []string) ([]string, error) {
	var out models.BulkDeleteResponse
	err := c.do(ctx, http.MethodPost, projectPath(projectID, "/bulk-delete"), models.BulkDeleteRequest{IDs: ids}, &out)
	if err != nil {
		return nil, fmt.Errorf("bulk delete: %w", err)
	}
	return out.IDs, nil
}

func (c *Client) ListMedia(ctx context.Context, projectID string) ([]models.MediaRecord, error) {
	var out query.Result
	if err := c.do(ctx, http.MethodGet, projectPath(projectID, ""), nil, &out); err != nil {
		return nil, fmt.Errorf("list media: %w", err)
	}
	return out.Items, nil
}

func (c *Client) GetMedia(ctx context.Context, id string) (*models.MediaRecord, error) {
	var out models.MediaRecord
	if err := c.do(ctx, http.MethodGet, "/media/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, fmt.Errorf("get media: %w", err)
	}
	return &out, nil
}

func projectPath(projectID, suffix string) string {
	return "/projects/" + url.PathEscape(projectID) + "/media" + suffix
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("store request")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func readStatusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))

	var body struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if err := json.Unmarshal(raw, &body); err == nil && body.Error != "" {
		msg = body.Error
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return &StatusError{StatusCode: resp.StatusCode, Message: msg}
}

