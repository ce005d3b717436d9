package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/rs/zerolog"
)

// Error is an application error tagged with the kind that decides its status.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.String()
	}
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// E wraps err with a kind and the operation that failed.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func NotFound(op string, err error) error   { return E(KindNotFound, op, err) }
func Validation(op string, err error) error { return E(KindValidation, op, err) }
func Storage(op string, err error) error    { return E(KindStorage, op, err) }
func Internal(op string, err error) error   { return E(KindInternal, op, err) }

// KindOf reports the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// ErrorResponse represents the uniform error body.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// RespondError writes the uniform error body with the given status.
func RespondError(w http.ResponseWriter, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: MessageFor(status),
	})
}

// RespondFromError maps err onto a status through its kind.
func RespondFromError(w http.ResponseWriter, err error) {
	RespondError(w, KindOf(err).Status())
}

// RespondLogged logs err, at error level when it maps to a 5xx, then responds like RespondFromError.
func RespondLogged(w http.ResponseWriter, logger zerolog.Logger, err error) {
	kind := KindOf(err)
	status := kind.Status()
	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Err(err).Str("kind", kind.String()).Int("status", status).Msg("request failed")
	RespondError(w, status)
}

// RespondNotFound writes a 404 error body.
func RespondNotFound(w http.ResponseWriter) {
	RespondError(w, http.StatusNotFound)
}

// RespondUnprocessable writes a 422 error body.
func RespondUnprocessable(w http.ResponseWriter) {
	RespondError(w, http.StatusUnprocessableEntity)
}

// RespondInternalError writes a 500 error body.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError)
}

// RespondMethodNotAllowed writes a 405 error body.
func RespondMethodNotAllowed(w http.ResponseWriter) {
	RespondError(w, http.StatusMethodNotAllowed)
}
