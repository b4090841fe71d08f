package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"rantbox/app/apperrors"
)

// Submission-status messages, surfaced verbatim to API consumers.
const (
	msgProcessing = "Your Rant is being processed. Please wait a moment while we load it. Thank you for your patience."
	msgCreated    = "Created successfully without a hitch"
)

func sendJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// statusFor maps the error taxonomy onto HTTP status codes.
func statusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindInsufficientFunds:
		return http.StatusPaymentRequired
	case apperrors.KindLedgerUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// sendError writes the error envelope. The client sees only the message,
// never a stack.
func sendError(w http.ResponseWriter, err error) {
	message := "Something went wrong"
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	sendJSON(w, statusFor(err), map[string]string{"error": message})
}

// receiptMessage picks the consumer-facing message for a submitted
// transaction.
func receiptMessage(pending bool) string {
	if pending {
		return msgProcessing
	}
	return msgCreated
}
