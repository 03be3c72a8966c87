package response

import (
	"encoding/json"
	"errors"
	"net/http"

	zlog "github.com/rs/zerolog/log"

	"github.com/invite-labs/event-service/internal/domain"
	appctx "github.com/invite-labs/event-service/internal/pkg/context"
)

// Envelope is the success envelope: {"data": ...}
type Envelope struct {
	Data any `json:"data,omitempty"`
}

// ErrorBody is the error envelope:
// {"error":{"code":"...","message":"...","meta":{...},"request_id":"..."}}
type ErrorBody struct {
	Error ErrorPayload `json:"error"`
}

type ErrorPayload struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Meta      map[string]string `json:"meta,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// JSON writes raw JSON with Content-Type.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Data wraps payload with {"data": ...}
func Data(w http.ResponseWriter, status int, payload any) {
	JSON(w, status, Envelope{Data: payload})
}

// Fail writes the error envelope.
func Fail(w http.ResponseWriter, status int, code, message string, meta map[string]string, requestID string) {
	JSON(w, status, ErrorBody{
		Error: ErrorPayload{
			Code:      code,
			Message:   message,
			Meta:      meta,
			RequestID: requestID,
		},
	})
}

// Err maps a service error to the wire. Domain errors keep their code and
// message; anything else is logged and flattened to internal_error so
// storage detail never leaks to the caller.
func Err(w http.ResponseWriter, r *http.Request, err error) {
	requestID := appctx.RequestID(r.Context())

	if err == nil {
		Fail(w, http.StatusInternalServerError, "internal_error", "unknown error", nil, requestID)
		return
	}

	var ae *domain.AppError
	if errors.As(err, &ae) {
		Fail(w, statusFromCode(ae.Code), string(ae.Code), ae.Message, ae.Meta, requestID)
		return
	}

	zlog.Error().Err(err).Str("request_id", requestID).Msg("unhandled error")
	Fail(w, http.StatusInternalServerError, "internal_error", "internal error", nil, requestID)
}

func statusFromCode(code domain.ErrCode) int {
	switch code {
	case domain.CodeValidation:
		return http.StatusBadRequest
	case domain.CodeNotFound:
		return http.StatusNotFound
	case domain.CodeAlreadyRegistered:
		return http.StatusConflict
	case domain.CodeInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
