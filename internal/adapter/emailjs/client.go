// Package emailjs sends the sign-up notification email through the EmailJS REST API.
package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"altoque/internal/config"
)

// ErrNotConfigured is returned when the service, template or user id is missing.
var ErrNotConfigured = errors.New("emailjs: service, template and user ids are required")

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// Client implements domain.EmailSender.
type Client struct {
	httpClient  *http.Client
	endpoint    string
	serviceID   string
	templateID  string
	userID      string
	accessToken string
}

func NewClient(cfg config.EmailJSConfig) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		endpoint:    cfg.Endpoint,
		serviceID:   cfg.ServiceID,
		templateID:  cfg.TemplateID,
		userID:      cfg.UserID,
		accessToken: cfg.AccessToken,
	}
}

// Send renders the configured template with params. EmailJS answers 200 "OK"
// on success and a plain-text reason otherwise.
func (c *Client) Send(ctx context.Context, params map[string]string) error {
	if c.serviceID == "" || c.templateID == "" || c.userID == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(sendRequest{
		ServiceID:      c.serviceID,
		TemplateID:     c.templateID,
		UserID:         c.userID,
		AccessToken:    c.accessToken,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("failed to encode emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		reason, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("emailjs responded %d: %s", resp.StatusCode, bytes.TrimSpace(reason))
	}
	return nil
}
