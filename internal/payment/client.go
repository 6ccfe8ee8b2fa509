// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

// Package payment holds the client for the external payment gateway and the
// signature check for its webhook callbacks. Charging itself happens on the
// gateway side; this side only verifies and acknowledges events.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tecnoscan/tecnoscan-api/internal/config"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
)

// SignatureHeader carries the hex-encoded HMAC-SHA256 of the raw webhook body.
const SignatureHeader = "X-Payment-Signature"

// Event is the payload the gateway posts to the webhook endpoint.
type Event struct {
	PaymentID string  `json:"payment_id"`
	OrderID   string  `json:"order_id"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
}

// Client talks to the payment gateway on behalf of the configured merchant.
type Client struct {
	http           *resty.Client
	merchantID     string
	merchantSecret string
	logger         *logger.Logger
}

// NewClient constructs a gateway client from the payment configuration.
func NewClient(cfg config.Payment, logger *logger.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.GatewayURL).
		SetTimeout(10 * time.Second).
		SetHeader("X-Merchant-ID", cfg.MerchantID)

	return &Client{
		http:           httpClient,
		merchantID:     cfg.MerchantID,
		merchantSecret: cfg.MerchantSecret,
		logger:         logger,
	}
}

// VerifySignature reports whether signature is the hex-encoded HMAC-SHA256 of
// body under the merchant secret. Comparison is constant-time.
func (c *Client) VerifySignature(body []byte, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.merchantSecret))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}

// Acknowledge confirms receipt of a webhook event back to the gateway.
// Gateways retry undelivered events, so a failed acknowledgement is logged
// and returned but leaves the already-verified event processed.
func (c *Client) Acknowledge(ctx context.Context, event Event) error {
	log := logger.FromContext(ctx)

	response, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"merchant_id": c.merchantID,
			"payment_id":  event.PaymentID,
		}).
		Post("/v1/payments/ack")
	if err != nil {
		log.Err(err).Str("paymentID", event.PaymentID).Msg("payment acknowledgement failed")
		return fmt.Errorf("payment acknowledgement failed: %w", err)
	}

	if response.StatusCode() != http.StatusOK {
		log.Error().
			Int("status", response.StatusCode()).
			Str("paymentID", event.PaymentID).
			Msg("payment gateway rejected acknowledgement")
		return fmt.Errorf("payment gateway answered %d", response.StatusCode())
	}

	return nil
}
