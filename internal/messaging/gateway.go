package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"
)

// GatewayDispatcher talks to an external WhatsApp gateway over HTTP.
// The gateway owns the browser session and QR pairing; this client only
// drives its REST surface. Connection status is cached locally and
// refreshed on every call that hits the gateway.
type GatewayDispatcher struct {
	baseURL    string
	httpClient *http.Client

	mu     sync.RWMutex
	status Status
}

// Ensure GatewayDispatcher implements Dispatcher
var _ Dispatcher = (*GatewayDispatcher)(nil)

// NewGatewayDispatcher creates a dispatcher for the given gateway URL.
// An empty URL yields a dispatcher that reports disconnected and fails
// every send.
func NewGatewayDispatcher(baseURL string, timeout time.Duration) *GatewayDispatcher {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &GatewayDispatcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		status:     StatusDisconnected,
	}
}

type gatewaySessionResponse struct {
	Status string `json:"status"`
	QRCode string `json:"qr_code,omitempty"`
}

// Connect starts (or resumes) the gateway session. When the gateway
// needs pairing it returns a QR code data URL to display.
func (d *GatewayDispatcher) Connect(ctx context.Context) (*ConnectResult, error) {
	if d.baseURL == "" {
		return nil, ErrGatewayUnavailable
	}

	d.setStatus(StatusConnecting)

	var resp gatewaySessionResponse
	if err := d.postJSON(ctx, "/session/start", nil, &resp); err != nil {
		d.setStatus(StatusDisconnected)
		return nil, fmt.Errorf("failed to start gateway session: %w", err)
	}

	status := Status(resp.Status)
	switch status {
	case StatusConnected, StatusConnecting:
		d.setStatus(status)
	default:
		d.setStatus(StatusDisconnected)
	}

	return &ConnectResult{Status: d.Status(), QRCode: resp.QRCode}, nil
}

// Status returns the last observed connection state
func (d *GatewayDispatcher) Status() Status {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.status
}

// Disconnect tears the gateway session down
func (d *GatewayDispatcher) Disconnect(ctx context.Context) error {
	if d.baseURL == "" {
		return ErrGatewayUnavailable
	}
	err := d.postJSON(ctx, "/session/stop", nil, nil)
	d.setStatus(StatusDisconnected)
	if err != nil {
		return fmt.Errorf("failed to stop gateway session: %w", err)
	}
	return nil
}

// SendText sends a plain text message to the given wire-format phone
func (d *GatewayDispatcher) SendText(ctx context.Context, phone, text string) error {
	if d.baseURL == "" {
		return ErrGatewayUnavailable
	}
	payload := map[string]string{"phone": phone, "text": text}
	if err := d.postJSON(ctx, "/message/text", payload, nil); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	return nil
}

// SendFile sends a document attachment to the given wire-format phone
func (d *GatewayDispatcher) SendFile(ctx context.Context, phone, fileName string, data []byte) error {
	if d.baseURL == "" {
		return ErrGatewayUnavailable
	}

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	if err := w.WriteField("phone", phone); err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	part, err := w.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/message/file", &body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return nil
}

func (d *GatewayDispatcher) setStatus(s Status) {
	d.mu.Lock()
	d.status = s
	d.mu.Unlock()
}

func (d *GatewayDispatcher) postJSON(ctx context.Context, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("gateway returned %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
