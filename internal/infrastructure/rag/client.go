// Package rag talks to the document retrieval service that generates maintenance reminders.
package rag

import (
	"context"
	"fmt"
	"motor/internal/domain/generation"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client implements generation.Source over HTTP.
type Client struct {
	http *resty.Client
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

type generateRequest struct {
	Mileage      int    `json:"mileage"`
	DocumentName string `json:"document_name"`
}

// NewClient creates a RAG service client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout)
	return &Client{http: c}
}

// DocumentExists reports whether the manual is indexed.
func (c *Client) DocumentExists(ctx context.Context, documentName string) (bool, error) {
	var out existsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("name", documentName).
		SetResult(&out).
		Get("/documents/exists")
	if err != nil {
		return false, fmt.Errorf("rag document lookup: %w", err)
	}
	if resp.IsError() {
		return false, fmt.Errorf("rag document lookup status %d: %s", resp.StatusCode(), resp.String())
	}
	return out.Exists, nil
}

// GenerateMaintenanceReminders asks the service for reminders for the given mileage.
func (c *Client) GenerateMaintenanceReminders(ctx context.Context, mileage int, documentName string) (*generation.Result, error) {
	var out generation.Result
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(&generateRequest{Mileage: mileage, DocumentName: documentName}).
		SetResult(&out).
		Post("/maintenance-reminders")
	if err != nil {
		return nil, fmt.Errorf("rag generate: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("rag generate status %d: %s", resp.StatusCode(), resp.String())
	}
	return &out, nil
}
