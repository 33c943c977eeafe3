package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"realtime-translator/internal/config"
	internalhttp "realtime-translator/internal/http"
	"realtime-translator/internal/translation"
)

// EndpointClient talks to a single LibreTranslate-compatible endpoint.
type EndpointClient struct {
	client *http.Client
}

// NewEndpointClient creates a client. A nil http.Client uses the shared pooled client.
func NewEndpointClient(client *http.Client) *EndpointClient {
	if client == nil {
		client = internalhttp.TranslateClient
	}
	return &EndpointClient{client: client}
}

// Translate POSTs payload to endpoint and returns the translated text.
// Every failure wraps translation.ErrEndpointFailure.
func (c *EndpointClient) Translate(ctx context.Context, endpoint string, payload translation.Payload) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", translation.ErrEndpointFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", translation.ErrEndpointFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", translation.ErrEndpointFailure, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, config.MaxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %s: read response: %v", translation.ErrEndpointFailure, endpoint, err)
	}

	var result translation.Response
	decodeErr := json.Unmarshal(data, &result)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(result.Error)
		if decodeErr != nil || msg == "" {
			msg = truncateBody(data)
		}
		return "", fmt.Errorf("%w: %s: status %d: %s", translation.ErrEndpointFailure, endpoint, resp.StatusCode, msg)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("%w: %s: malformed response: %v", translation.ErrEndpointFailure, endpoint, decodeErr)
	}
	return result.TranslatedText, nil
}

func truncateBody(data []byte) string {
	const max = 200
	s := strings.TrimSpace(string(data))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
