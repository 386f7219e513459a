package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"taza-be/internal/apperror"
	"taza-be/internal/logger"

	"go.uber.org/zap"
)

// Envelope is the body of every API response.
type Envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorBody `json:"error,omitempty"`
}

type ErrorBody struct {
	Message string `json:"message"`
}

func Success(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Failure(message string) Envelope {
	return Envelope{Success: false, Error: &ErrorBody{Message: message}}
}

// ErrorResponse maps err to a status code and failure envelope. Dependency
// errors are logged and replaced with a generic message.
func ErrorResponse(ctx context.Context, err error) (int, Envelope) {
	status := apperror.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.FromCtx(ctx).Error("request failed",
			zap.String("layer", "transport"),
			zap.Error(err),
		)
	}
	return status, Failure(apperror.PublicMessage(err))
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status, body := ErrorResponse(ctx, err)
	WriteJSON(w, status, body)
}
