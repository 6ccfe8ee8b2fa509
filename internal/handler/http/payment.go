package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/payment"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// paymentWebhook receives events from the payment gateway. The raw body is
// read before decoding because the HMAC signature covers the exact bytes on
// the wire.
func (h *Handler) paymentWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	signature := r.Header.Get(payment.SignatureHeader)
	if signature == "" {
		log.Error().Msg("missing payment signature header")
		writeError(w, http.StatusBadRequest, "missing payment signature header")
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Msg("reading webhook body failed")
		writeError(w, http.StatusBadRequest, "reading webhook body failed")
		return
	}

	if !h.payments.VerifySignature(body, signature) {
		log.Error().Msg("payment signature mismatch")
		writeError(w, http.StatusUnauthorized, "payment signature mismatch")
		return
	}

	var event payment.Event
	if err := json.Unmarshal(body, &event); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	log.Info().
		Str("paymentID", event.PaymentID).
		Str("orderID", event.OrderID).
		Str("status", event.Status).
		Float64("amount", event.Amount).
		Msg("payment event received")

	// Acknowledgement is best-effort: the gateway retries unconfirmed events.
	if err := h.payments.Acknowledge(ctx, event); err != nil {
		log.Err(err).Str("paymentID", event.PaymentID).Msg("payment acknowledgement failed")
	}

	utils.WriteJSON(w, models.Response{
		Code:    http.StatusOK,
		Message: "payment event accepted",
	}, http.StatusOK)
}
