// Package httpx concentra lo que antes estaba duplicado en cada handler:
// escribir JSON, decodificar bodies, leer ids de la URL y traducir errores de
// dominio a respuestas {message, detailedMessage, dateTime}.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-registry/internal/apperr"
	"pet-registry/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	MsgValidation  = "Request validation failed"
	MsgNotFound    = "Entity not found"
	MsgServerError = "Server error"
)

// Now se reemplaza en tests.
var Now = time.Now

// ErrorResponse es el cuerpo de todas las respuestas de error.
type ErrorResponse struct {
	Message         string    `json:"message"`
	DetailedMessage string    `json:"detailedMessage"`
	DateTime        time.Time `json:"dateTime"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Translate mapea un error de dominio a status y mensaje público.
func Translate(err error) (int, string) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest, MsgValidation
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	default:
		return http.StatusInternalServerError, MsgServerError
	}
}

// WriteError traduce err, lo loguea con el logger del request y escribe el body.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, msg := Translate(err)

	l := logger.FromContext(r.Context(), log)
	fields := logger.Fields{"status": status, "error": err}
	if status >= http.StatusInternalServerError {
		l.Error(msg, fields)
	} else {
		l.Warn(msg, fields)
	}

	WriteErrorBody(w, status, msg, err.Error())
}

func WriteErrorBody(w http.ResponseWriter, status int, message, detail string) {
	WriteJSON(w, status, ErrorResponse{
		Message:         message,
		DetailedMessage: detail,
		DateTime:        Now().UTC(),
	})
}

// DecodeJSON decodifica el body; un JSON mal formado es un fallo de validación.
func DecodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.Invalid(apperr.Violation{
			Field:  "body",
			Reason: fmt.Sprintf("malformed JSON (%s)", strings.TrimPrefix(err.Error(), "json: ")),
		})
	}
	return nil
}

// PathID lee un id entero de la URL.
func PathID(r *http.Request, param string) (int64, error) {
	raw := strings.TrimSpace(chi.URLParam(r, param))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperr.Invalid(apperr.Violation{Field: param, Reason: "must be an integer"})
	}
	return id, nil
}
