package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/html"

	"leethub-sync/internal/domain/model"
	"leethub-sync/internal/domain/ports"
	apperrors "leethub-sync/internal/errors"
)

// DefaultGraphQLEndpoint is LeetCode's public GraphQL API.
const DefaultGraphQLEndpoint = "https://leetcode.com/graphql"

const questionQuery = `query questionData($titleSlug: String!) { question(titleSlug: $titleSlug) { questionFrontendId title titleSlug difficulty isPaidOnly content topicTags { name } } }`

// Client implements ProblemProvider using LeetCode public endpoints.
type Client struct {
	httpClient *http.Client
	endpoint   string
	logger     ports.Logger
}

var _ ports.ProblemProvider = (*Client)(nil)

// New creates a new LeetCode client. An empty endpoint uses DefaultGraphQLEndpoint.
func New(endpoint string, timeout time.Duration, logger ports.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultGraphQLEndpoint
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		logger:     logger,
	}
}

// GetProblem retrieves a problem's metadata by its title slug.
func (c *Client) GetProblem(ctx context.Context, slug string) (*model.Problem, error) {
	payload := map[string]any{
		"operationName": "questionData",
		"query":         questionQuery,
		"variables":     map[string]string{"titleSlug": slug},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal graphql payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.TransportFailed("leetcode", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, apperrors.Upstream("leetcode", resp.StatusCode, string(data))
	}

	var gqlResp struct {
		Data struct {
			Question *struct {
				QuestionFrontendID string `json:"questionFrontendId"`
				Title              string `json:"title"`
				TitleSlug          string `json:"titleSlug"`
				Difficulty         string `json:"difficulty"`
				IsPaidOnly         bool   `json:"isPaidOnly"`
				Content            string `json:"content"`
				TopicTags          []struct {
					Name string `json:"name"`
				} `json:"topicTags"`
			} `json:"question"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&gqlResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	q := gqlResp.Data.Question
	if q == nil || q.TitleSlug == "" {
		return nil, fmt.Errorf("problem %q not found", slug)
	}

	topics := make([]string, 0, len(q.TopicTags))
	for _, tag := range q.TopicTags {
		topics = append(topics, tag.Name)
	}

	return &model.Problem{
		ID:         parseInt(q.QuestionFrontendID),
		Title:      q.Title,
		Slug:       q.TitleSlug,
		Difficulty: q.Difficulty,
		Link:       ProblemLink(q.TitleSlug),
		Content:    strings.TrimSpace(htmlToText(q.Content)),
		Topics:     topics,
		PaidOnly:   q.IsPaidOnly,
	}, nil
}

// ProblemLink returns the canonical problem URL for slug.
func ProblemLink(slug string) string {
	return fmt.Sprintf("https://leetcode.com/problems/%s/", slug)
}

func parseInt(val string) int {
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return n
}

func htmlToText(input string) string {
	if input == "" {
		return ""
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return input
	}

	var builder strings.Builder
	extractText(node, &builder)
	return builder.String()
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune('\n')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}

	if node.Type == html.ElementNode && (node.Data == "p" || node.Data == "li") {
		builder.WriteRune('\n')
	}
}
