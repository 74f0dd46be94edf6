package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/heartmarshall/daily-pos-backend/internal/domain"
	"github.com/heartmarshall/daily-pos-backend/internal/transport/envelope"
)

const maxBodyBytes = 1 << 20

// MsgIDMismatch is returned when a body id disagrees with the path id.
const MsgIDMismatch = "Id in URL must match id in request body"

var errEmptyBody = errors.New("empty body")

// writeError is the single translation point from service errors to the
// response envelope. Unrecognised errors are logged and hidden.
func writeError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		validation *domain.ValidationError
		notFound   *domain.NotFoundError
		rule       *domain.BusinessRuleError
	)

	switch {
	case errors.As(err, &validation):
		envelope.Fail(w, http.StatusBadRequest, envelope.MsgValidation, toFieldErrors(validation.Errors)...)
	case errors.Is(err, domain.ErrValidation):
		envelope.Fail(w, http.StatusBadRequest, envelope.MsgValidation)
	case errors.As(err, &notFound):
		envelope.Fail(w, http.StatusNotFound, notFound.Error())
	case errors.Is(err, domain.ErrNotFound):
		envelope.Fail(w, http.StatusNotFound, "Resource not found")
	case errors.As(err, &rule):
		envelope.Fail(w, http.StatusBadRequest, rule.Message)
	case errors.Is(err, domain.ErrUnauthorized):
		envelope.Fail(w, http.StatusUnauthorized, envelope.MsgUnauthorized)
	default:
		log.ErrorContext(r.Context(), "unhandled error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		envelope.Fail(w, http.StatusInternalServerError, envelope.MsgInternal)
	}
}

func toFieldErrors(errs []domain.FieldError) []envelope.FieldError {
	out := make([]envelope.FieldError, len(errs))
	for i, e := range errs {
		out[i] = envelope.FieldError{Field: e.Field, Message: e.Message, Code: e.Code}
	}
	return out
}

// decodeJSON reads a JSON body into dst. An empty body yields errEmptyBody.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

// readBody decodes a required request body, answering 400 itself on failure.
func readBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		msg := "Invalid request body"
		if errors.Is(err, errEmptyBody) {
			msg = "Request body is required"
		}
		envelope.Fail(w, http.StatusBadRequest, msg)
		return false
	}
	return true
}

// readOptionalBody is readBody for endpoints where the body may be omitted.
func readOptionalBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := decodeJSON(w, r, dst)
	if err == nil || errors.Is(err, errEmptyBody) {
		return true
	}
	envelope.Fail(w, http.StatusBadRequest, "Invalid request body")
	return false
}

// pathID parses the {id} path value, answering 400 itself when it is malformed.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		envelope.Fail(w, http.StatusBadRequest, envelope.MsgValidation,
			envelope.FieldError{Field: "id", Message: "must be a valid UUID", Code: "invalid_format"})
		return uuid.Nil, false
	}
	return id, true
}

// bodyID parses an id carried in a request body.
func bodyID(w http.ResponseWriter, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		field := envelope.FieldError{Field: "id", Message: "must be a valid UUID", Code: "invalid_format"}
		if strings.TrimSpace(raw) == "" {
			field = envelope.FieldError{Field: "id", Message: "required"}
		}
		envelope.Fail(w, http.StatusBadRequest, envelope.MsgValidation, field)
		return uuid.Nil, false
	}
	return id, true
}

// matchesPathID reports whether an optional body id agrees with the path id.
// A missing body id is accepted.
func matchesPathID(w http.ResponseWriter, pathID uuid.UUID, raw *string) bool {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return true
	}
	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil || id != pathID {
		envelope.Fail(w, http.StatusBadRequest, MsgIDMismatch)
		return false
	}
	return true
}
