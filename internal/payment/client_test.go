// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecnoscan/tecnoscan-api/internal/config"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	client := NewClient(config.Payment{MerchantSecret: "merchant-secret"}, logger.Nop())

	body := []byte(`{"payment_id":"p-1","status":"succeeded"}`)

	assert.True(t, client.VerifySignature(body, sign("merchant-secret", body)))
	assert.False(t, client.VerifySignature(body, sign("other-secret", body)))
	assert.False(t, client.VerifySignature(body, "not-hex-at-all"))
	assert.False(t, client.VerifySignature(append(body, '!'), sign("merchant-secret", body)))
}

func TestAcknowledge_Success(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/payments/ack", r.URL.Path)
		assert.Equal(t, "merchant-42", r.Header.Get("X-Merchant-ID"))
		w.WriteHeader(http.StatusOK)
	}))
	defer gateway.Close()

	client := NewClient(config.Payment{
		MerchantID:     "merchant-42",
		MerchantSecret: "merchant-secret",
		GatewayURL:     gateway.URL,
	}, logger.Nop())

	err := client.Acknowledge(context.Background(), Event{PaymentID: "p-1"})
	require.NoError(t, err)
}

func TestAcknowledge_GatewayRejects(t *testing.T) {
	gateway := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer gateway.Close()

	client := NewClient(config.Payment{GatewayURL: gateway.URL}, logger.Nop())

	err := client.Acknowledge(context.Background(), Event{PaymentID: "p-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
