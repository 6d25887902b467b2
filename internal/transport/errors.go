package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/bitcoin"
	"github.com/goodnatureofminers/blockinsight7000-txbuilder/internal/utxo/service/txbuilder"
)

var errMalformedBody = errors.New("malformed request body")

// WebError is the body of every failed REST response.
type WebError struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

var badRequestCodes = []struct {
	err  error
	code string
}{
	{errMalformedBody, "malformed_body"},
	{bitcoin.ErrMalformedHex, "malformed_hex"},
	{bitcoin.ErrMalformedJSON, "malformed_json"},
	{bitcoin.ErrInvalidOutpointID, "invalid_outpoint"},
	{bitcoin.ErrInvalidKey, "invalid_key"},
	{bitcoin.ErrInvalidPublicKey, "invalid_public_key"},
	{bitcoin.ErrMissingSigningParameter, "missing_parameter"},
	{bitcoin.ErrUnsupportedSigningScheme, "unsupported_scheme"},
	{bitcoin.ErrTruncatedTransaction, "truncated_transaction"},
	{bitcoin.ErrInvalidTransaction, "invalid_transaction"},
	{bitcoin.ErrInputIndexOutOfRange, "index_out_of_range"},
	{bitcoin.ErrScriptMismatch, "script_mismatch"},
	{bitcoin.ErrInvalidDigest, "invalid_digest"},
	{bitcoin.ErrUnsupportedDigest, "unsupported_digest"},
	{bitcoin.ErrInvalidAddress, "invalid_address"},
	{bitcoin.ErrScriptTooLarge, "script_too_large"},
	{txbuilder.ErrEmptyBatch, "empty_batch"},
}

// classifyError maps a service error to an HTTP status and a stable error code.
// Unknown errors are reported as internal without leaking their text.
func classifyError(err error) (int, WebError) {
	for _, c := range badRequestCodes {
		if errors.Is(err, c.err) {
			return http.StatusBadRequest, WebError{Error: c.code, Reason: err.Error()}
		}
	}
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, WebError{Error: "timeout", Reason: err.Error()}
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable, WebError{Error: "canceled", Reason: err.Error()}
	}
	return http.StatusInternalServerError, WebError{Error: "internal", Reason: "internal error"}
}

func sendJSON(w http.ResponseWriter, statusCode int, payload any) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		bytes, _ = json.Marshal(WebError{Error: "json", Reason: "encoding JSON: " + err.Error()})
		statusCode = http.StatusInternalServerError
	}
	w.Header().Set("Cache-Control", "private; max-age=0")
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Length", strconv.Itoa(len(bytes)))
	w.WriteHeader(statusCode)
	_, _ = w.Write(bytes)
}


