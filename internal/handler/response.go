package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cafe-employee-api/internal/dto"
	"github.com/cafe-employee-api/internal/validation"
)

const fallbackErrorMessage = "An error occurred"

// responder - общие методы ответа для всех хендлеров
type responder struct {
	logger *slog.Logger
}

// handleServiceError переводит ошибку сервиса в ответ 400: карта ошибок
// по полям для валидации, текст ошибки для всего остального
func (h *responder) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var fieldErrs validation.FieldErrors
	if errors.As(err, &fieldErrs) {
		h.respondError(w, http.StatusBadRequest, map[string][]string(fieldErrs))
		return
	}

	h.logger.Warn("request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)

	msg := err.Error()
	if msg == "" {
		msg = fallbackErrorMessage
	}
	h.respondError(w, http.StatusBadRequest, msg)
}

func (h *responder) respondData(w http.ResponseWriter, status int, data any) {
	h.respondJSON(w, status, dto.DataResponse{Data: data})
}

func (h *responder) respondError(w http.ResponseWriter, status int, errBody any) {
	h.respondJSON(w, status, dto.ErrorResponse{Error: errBody})
}

func (h *responder) respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}
