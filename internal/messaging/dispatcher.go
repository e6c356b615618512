// Package messaging abstracts the WhatsApp-style messaging channel
// behind a Dispatcher with an explicit lifecycle. The distribution
// pipeline never imports this package; only the forwarding endpoints
// depend on it.
package messaging

import (
	"context"
	"errors"
	"strings"

	apperrors "agent-distribution-backend/internal/errors"
)

//go:generate mockgen -source=dispatcher.go -destination=../mocks/messaging_mocks.go -package=mocks

// Status is the dispatcher connection state
type Status string

const (
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusConnected    Status = "connected"
)

// ConnectResult reports the outcome of a connect attempt. QRCode is a
// data URL to display when the channel requires pairing; empty when the
// session resumed without one.
type ConnectResult struct {
	Status Status `json:"status"`
	QRCode string `json:"qr_code,omitempty"`
}

// Dispatcher is the messaging channel contract. Send operations report
// success or failure per call; the channel itself is best-effort.
type Dispatcher interface {
	Connect(ctx context.Context) (*ConnectResult, error)
	Status() Status
	Disconnect(ctx context.Context) error
	SendText(ctx context.Context, phone, text string) error
	SendFile(ctx context.Context, phone, fileName string, data []byte) error
}

// FormatPhone converts a stored mobile number to the wire format the
// channel expects: digits only, no leading plus. Numbers shorter than
// 10 digits are rejected.
func FormatPhone(mobile string) (string, error) {
	var b strings.Builder
	for _, r := range mobile {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) < 10 {
		return "", apperrors.ErrInvalidPhoneNumber
	}
	return digits, nil
}

// ErrGatewayUnavailable indicates the gateway endpoint is not configured
// or not reachable.
var ErrGatewayUnavailable = errors.New("messaging gateway is not available")
