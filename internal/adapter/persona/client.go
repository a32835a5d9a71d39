// Package persona is the HTTP client of the persona chat service.
// A session is prepared by uploading one reader's reviews and selecting
// that reader as the author, after which messages can be exchanged.
package persona

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/heartmarshall/bookclub-backend/internal/domain"
)

const uploadFileName = "author_data.json"

// Client talks to the persona service over HTTP.
type Client struct {
	httpClient *resty.Client
	searchK    int
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string, timeout time.Duration, searchK int) *Client {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &Client{httpClient: client, searchK: searchK}
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.httpClient.Close()
}

// UploadData sends the records as a JSON file bound to sessionID.
func (c *Client) UploadData(ctx context.Context, sessionID string, records []domain.PersonaRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}

	response, err := c.httpClient.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{"session_id": sessionID}).
		SetFileReader("file", uploadFileName, bytes.NewReader(payload)).
		Post("/api/upload-data")
	if err != nil {
		return fmt.Errorf("upload data: %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("upload data: response error %d: %s", response.StatusCode(), response.String())
	}
	return nil
}

type selectAuthorRequest struct {
	SessionID  string `json:"session_id"`
	AuthorName string `json:"author_name"`
}

// SelectAuthor makes author the persona of the session.
func (c *Client) SelectAuthor(ctx context.Context, sessionID, author string) error {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(selectAuthorRequest{SessionID: sessionID, AuthorName: author}).
		Post("/api/select-author")
	if err != nil {
		return fmt.Errorf("select author: %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("select author: response error %d: %s", response.StatusCode(), response.String())
	}
	return nil
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	UseSearch bool   `json:"use_search"`
	SearchK   int    `json:"search_k"`
}

type chatResponse struct {
	Success  bool   `json:"success"`
	Response string `json:"response"`
	Error    string `json:"error"`
	Metadata struct {
		TokensUsed  int    `json:"tokens_used"`
		SearchCount int    `json:"search_count"`
		PromptType  string `json:"prompt_type"`
	} `json:"metadata"`
}

// Chat sends one message and returns the persona's reply.
// A reply with success=false is an error carrying the service's message.
func (c *Client) Chat(ctx context.Context, sessionID, message string) (domain.ChatReply, error) {
	response, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(chatRequest{
			Message:   message,
			SessionID: sessionID,
			UseSearch: true,
			SearchK:   c.searchK,
		}).
		SetResult(&chatResponse{}).
		Post("/api/chat")
	if err != nil {
		return domain.ChatReply{}, fmt.Errorf("chat: %w", err)
	}
	if response.IsError() {
		return domain.ChatReply{}, fmt.Errorf("chat: response error %d: %s", response.StatusCode(), response.String())
	}

	body, ok := response.Result().(*chatResponse)
	if !ok || body == nil {
		return domain.ChatReply{}, fmt.Errorf("chat: empty response body: %s", response.String())
	}
	if !body.Success {
		reason := body.Error
		if reason == "" {
			reason = "reply not generated"
		}
		return domain.ChatReply{}, fmt.Errorf("chat: %s", reason)
	}

	return domain.ChatReply{
		Response:    body.Response,
		TokensUsed:  body.Metadata.TokensUsed,
		SearchCount: body.Metadata.SearchCount,
		PromptType:  body.Metadata.PromptType,
	}, nil
}
