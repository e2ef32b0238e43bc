package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"leethub-sync/internal/domain/model"
	"leethub-sync/internal/domain/ports"
	apperrors "leethub-sync/internal/errors"
)

const (
	DefaultBaseURL = "https://api.notion.com/v1"
	DefaultVersion = "2022-06-28"

	serviceName = "notion"
)

// Database property names.
const (
	propProblem    = "Problem"
	propSolved     = "Solved"
	propSlug       = "Slug"
	propLink       = "Link"
	propDifficulty = "Difficulty"
	propType       = "Type"
)

// Options configures a Client.
type Options struct {
	Token      string
	DatabaseID string
	BaseURL    string
	Version    string
	Timeout    time.Duration
}

// Client implements ports.RecordStore against a Notion database.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	version    string
	databaseID string
	logger     ports.Logger
}

var _ ports.RecordStore = (*Client)(nil)

// New creates a new Notion client.
func New(opts Options, logger ports.Logger) *Client {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}

	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    baseURL,
		token:      opts.Token,
		version:    version,
		databaseID: opts.DatabaseID,
		logger:     logger,
	}
}

type page struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// QueryBySlug returns the pages whose Slug property equals slug. Only the
// first result page is read.
func (c *Client) QueryBySlug(ctx context.Context, slug string) ([]model.Record, error) {
	payload := map[string]any{
		"filter": map[string]any{
			"property":  propSlug,
			"rich_text": map[string]string{"equals": slug},
		},
	}

	var resp struct {
		Results []page `json:"results"`
		HasMore bool   `json:"has_more"`
	}
	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, c.databaseID)
	if err := c.do(ctx, http.MethodPost, url, payload, &resp); err != nil {
		return nil, err
	}
	if resp.HasMore && c.logger != nil {
		c.logger.Warn(ctx, "slug query returned more than one page of results", "slug", slug)
	}

	records := make([]model.Record, 0, len(resp.Results))
	for _, p := range resp.Results {
		records = append(records, model.Record{ID: p.ID, URL: p.URL})
	}
	return records, nil
}

// UpdateRecord marks the page solved and replaces its difficulty and tags.
func (c *Client) UpdateRecord(ctx context.Context, id string, update model.RecordUpdate) error {
	payload := map[string]any{
		"properties": map[string]any{
			propSolved:     map[string]bool{"checkbox": true},
			propDifficulty: selectValue(update.Difficulty),
			propType:       multiSelectValue(update.Tags),
		},
	}

	url := fmt.Sprintf("%s/pages/%s", c.baseURL, id)
	return c.do(ctx, http.MethodPatch, url, payload, nil)
}

// CreateRecord adds a solved page to the database.
func (c *Client) CreateRecord(ctx context.Context, record model.NewRecord) (*model.Record, error) {
	payload := map[string]any{
		"parent": map[string]string{"database_id": c.databaseID},
		"properties": map[string]any{
			propProblem:    map[string]any{"title": richText(record.Title)},
			propSolved:     map[string]bool{"checkbox": true},
			propSlug:       map[string]any{"rich_text": richText(record.Slug)},
			propLink:       map[string]string{"url": record.Link},
			propDifficulty: selectValue(record.Difficulty),
			propType:       multiSelectValue(record.Tags),
		},
	}
	if record.Summary != "" {
		payload["children"] = []map[string]any{
			{
				"object": "block",
				"type":   "paragraph",
				"paragraph": map[string]any{
					"rich_text": richText(truncate(record.Summary, maxTextLength)),
				},
			},
		}
	}

	var created page
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/pages", payload, &created); err != nil {
		return nil, err
	}
	return &model.Record{ID: created.ID, URL: created.URL}, nil
}

func (c *Client) do(ctx context.Context, method, url string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return apperrors.TransportFailed(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return apperrors.Upstream(serviceName, resp.StatusCode, errorDetails(data))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.TransportFailed(serviceName, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

// errorDetails renders a Notion error object as "code: message", falling
// back to the raw body.
func errorDetails(body []byte) string {
	var apiErr struct {
		Object  string `json:"object"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Object == "error" {
		return fmt.Sprintf("%s: %s", apiErr.Code, apiErr.Message)
	}
	return strings.TrimSpace(string(body))
}
