package otp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultMSG91BaseURL = "https://control.msg91.com"

type msg91Response struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// MSG91Client delegates code generation and verification to MSG91's OTP API.
type MSG91Client struct {
	baseURL    string
	authKey    string
	templateID string
	httpClient *http.Client
}

func NewMSG91Client(baseURL, authKey, templateID string, timeout time.Duration) *MSG91Client {
	if baseURL == "" {
		baseURL = DefaultMSG91BaseURL
	}
	return &MSG91Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		authKey:    authKey,
		templateID: templateID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Send implements Sender.
func (c *MSG91Client) Send(ctx context.Context, mobile string) error {
	q := url.Values{}
	q.Set("template_id", c.templateID)
	q.Set("mobile", mobile)

	res, err := c.call(ctx, http.MethodPost, "/api/v5/otp", q)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	if res.Type != "success" {
		slog.Error("MSG91 rejected OTP request", "message", res.Message)
		return fmt.Errorf("%w: %s", ErrDelivery, res.Message)
	}
	return nil
}

// Verify implements Sender. Any non-success answer counts as a wrong code.
func (c *MSG91Client) Verify(ctx context.Context, mobile string, code string) error {
	q := url.Values{}
	q.Set("otp", code)
	q.Set("mobile", mobile)

	res, err := c.call(ctx, http.MethodGet, "/api/v5/otp/verify", q)
	if err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}
	if res.Type != "success" {
		slog.Info("MSG91 OTP verification failed", "message", res.Message)
		return ErrInvalidCode
	}
	return nil
}

func (c *MSG91Client) call(ctx context.Context, method, path string, query url.Values) (msg91Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return msg91Response{}, err
	}
	req.Header.Set("authkey", c.authKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return msg91Response{}, err
	}
	defer resp.Body.Close()

	var out msg91Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return msg91Response{}, fmt.Errorf("decode msg91 response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return out, fmt.Errorf("msg91 returned status %d: %s", resp.StatusCode, out.Message)
	}
	return out, nil
}
