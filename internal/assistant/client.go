// Package assistant talks to the external generative-text service backing the
// study-helper feature. The service is an external collaborator; this client
// only relays a prompt and returns the reply text.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var ErrUnavailable = errors.New("assistant unavailable")

type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: httpClient,
	}
}

// Configured reports whether an endpoint was provided.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

type askRequest struct {
	Prompt string `json:"prompt"`
}

type askResponse struct {
	Reply string `json:"reply"`
}

func (c *Client) Ask(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt is required")
	}
	if !c.Configured() {
		return "", ErrUnavailable
	}

	encoded, err := json.Marshal(askRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}

	var payload askResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}

	return payload.Reply, nil
}
