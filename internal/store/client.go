package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nharmon/threadview/internal/types"
)

// ErrVoteConflict is returned when the server rejects a helpful vote
// because the visitor already voted. Callers treat it as an idempotent
// success, not a failure.
var ErrVoteConflict = errors.New("already voted")

// APIError represents a non-2xx response from the question store API.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" && e.Message != "" {
		return fmt.Sprintf("store error: %s (%d): %s", e.Code, e.Status, e.Message)
	}
	if e.Code != "" {
		return fmt.Sprintf("store error: %s (%d)", e.Code, e.Status)
	}
	if e.Message != "" {
		return fmt.Sprintf("store error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("store error (%d)", e.Status)
}

type apiErrorPayload struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Client talks to the remote question/answer store.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient constructs a question store client.
func NewClient(baseURL, token string) (*Client, error) {
	normalized, err := NormalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: normalized,
		token:   token,
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}, nil
}

// NormalizeBaseURL normalizes a store base URL and ensures it has a scheme.
func NormalizeBaseURL(raw string) (string, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", fmt.Errorf("store url cannot be empty")
	}
	parsed, err := url.Parse(value)
	if err != nil {
		return "", fmt.Errorf("invalid store url: %w", err)
	}
	if parsed.Scheme == "" {
		return "", fmt.Errorf("store url must include scheme (https://)")
	}
	value = strings.TrimRight(value, "/")
	return value, nil
}

// GetQuestion fetches a question by id.
func (c *Client) GetQuestion(ctx context.Context, id int64) (*types.Question, error) {
	var question types.Question
	path := fmt.Sprintf("/api/2/question/%d", id)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// GetAnswers fetches the full answer list for a question, oldest first.
func (c *Client) GetAnswers(ctx context.Context, questionID int64) ([]types.Answer, error) {
	var resp struct {
		Results []types.Answer `json:"results"`
	}
	path := fmt.Sprintf("/api/2/question/%d/answers", questionID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// PostQuestion creates a new question from composed text. The supplied
// metadata pairs describe the client (platform, version, device).
func (c *Client) PostQuestion(ctx context.Context, content string, meta []types.Meta) (*types.Question, error) {
	req := struct {
		Title    string       `json:"title"`
		Metadata []types.Meta `json:"metadata,omitempty"`
	}{Title: content, Metadata: meta}
	var question types.Question
	if err := c.doJSON(ctx, http.MethodPost, "/api/2/question", nil, req, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// PostAnswer posts composed text as an answer to an existing question.
func (c *Client) PostAnswer(ctx context.Context, questionID int64, content string) (*types.Answer, error) {
	req := struct {
		Question int64  `json:"question"`
		Content  string `json:"content"`
	}{Question: questionID, Content: content}
	var answer types.Answer
	if err := c.doJSON(ctx, http.MethodPost, "/api/2/answer", nil, req, &answer); err != nil {
		return nil, err
	}
	return &answer, nil
}

// SubmitVote submits a helpful vote for an answer. A duplicate vote
// surfaces as ErrVoteConflict.
func (c *Client) SubmitVote(ctx context.Context, answerID int64) (*types.VoteResult, error) {
	var result types.VoteResult
	path := fmt.Sprintf("/api/2/answer/%d/helpful", answerID)
	if err := c.doJSON(ctx, http.MethodPost, path, nil, nil, &result); err != nil {
		if apiErr, ok := err.(*APIError); ok {
			if apiErr.Status == http.StatusConflict || strings.EqualFold(apiErr.Message, "CONFLICT") {
				return nil, ErrVoteConflict
			}
		}
		return nil, err
	}
	return &result, nil
}

// SolveQuestion marks an answer as the question's solution.
func (c *Client) SolveQuestion(ctx context.Context, questionID, answerID int64) error {
	req := struct {
		Answer int64 `json:"answer"`
	}{Answer: answerID}
	path := fmt.Sprintf("/api/2/question/%d/solve", questionID)
	return c.doJSON(ctx, http.MethodPost, path, nil, req, nil)
}

// TakeQuestion places an advisory claim on a question. Best effort; the
// caller ignores the result.
func (c *Client) TakeQuestion(ctx context.Context, questionID int64) error {
	path := fmt.Sprintf("/api/2/question/%d/take", questionID)
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, nil)
}

// GetSuggestions queries knowledge-base documents and existing questions
// matching the composed text.
func (c *Client) GetSuggestions(ctx context.Context, query string) (*types.SuggestionResult, error) {
	params := url.Values{}
	params.Set("q", query)
	var result types.SuggestionResult
	if err := c.doJSON(ctx, http.MethodGet, "/api/2/search/suggest", params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, reqBody any, respBody any) error {
	endpoint, err := c.buildURL(path, query)
	if err != nil {
		return err
	}

	var body io.Reader
	if reqBody != nil {
		data, err := json.Marshal(reqBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		var payload apiErrorPayload
		if err := json.Unmarshal(respData, &payload); err == nil {
			apiErr.Code = payload.Error
			apiErr.Message = payload.Message
		} else {
			apiErr.Message = strings.TrimSpace(string(respData))
		}
		return apiErr
	}

	if respBody == nil {
		return nil
	}
	if len(respData) == 0 {
		return nil
	}
	return json.Unmarshal(respData, respBody)
}

func (c *Client) buildURL(path string, query url.Values) (string, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", err
	}
	endpoint := base.ResolveReference(ref)
	if query != nil && len(query) > 0 {
		endpoint.RawQuery = query.Encode()
	}
	return endpoint.String(), nil
}
