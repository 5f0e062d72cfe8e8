// Package client is a small REST client for the brief service.
package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/brieffast/brieffast-server/internal/model"
)

// Client talks to a running brief service.
type Client struct {
	http *resty.Client
}

// New creates a client for the service at baseURL. The apiKey is sent on
// every request; pass "" for anonymous share-page reads.
func New(baseURL, apiKey string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		c.SetHeader("x-api-key", apiKey)
	}
	return &Client{http: c}
}

type apiError struct {
	Error   string `json:"error"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func wireError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusNotFound {
		return model.ErrNotFound
	}
	if e, ok := resp.Error().(*apiError); ok && e != nil && e.Error != "" {
		if e.Message != "" {
			return fmt.Errorf("http %d: %s", resp.StatusCode(), e.Message)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), e.Error)
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
}

// CreateBriefing saves a new briefing and returns it with its assigned ID.
func (c *Client) CreateBriefing(ctx context.Context, category string, data model.BriefingData) (*model.Briefing, error) {
	var b model.Briefing
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"category": category, "data": data}).
		SetResult(&b).
		SetError(&apiError{}).
		Post("/api/briefings")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, wireError(resp)
	}
	return &b, nil
}

// GetBriefing fetches a briefing by ID.
func (c *Client) GetBriefing(ctx context.Context, id string) (*model.Briefing, error) {
	var b model.Briefing
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("uuid", id).
		SetResult(&b).
		SetError(&apiError{}).
		Get("/api/briefings")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, wireError(resp)
	}
	return &b, nil
}

// UpdateBriefing replaces the stored payload of an existing briefing.
func (c *Client) UpdateBriefing(ctx context.Context, id string, data model.BriefingData) (*model.Briefing, error) {
	var b model.Briefing
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("uuid", id).
		SetBody(map[string]interface{}{"data": data}).
		SetResult(&b).
		SetError(&apiError{}).
		Put("/api/briefings")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, wireError(resp)
	}
	return &b, nil
}

type generateResponse struct {
	TemplateID string `json:"templateId"`
	Markdown   string `json:"markdown"`
}

// Generate renders questionnaire answers into Markdown server-side.
func (c *Client) Generate(ctx context.Context, templateID string, answers model.AnswerSet) (string, error) {
	var out generateResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{"templateId": templateID, "answers": answers}).
		SetResult(&out).
		SetError(&apiError{}).
		Post("/api/generate")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", wireError(resp)
	}
	return out.Markdown, nil
}
