// Package bind decodes and validates JSON request bodies.
package bind

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// maxBodyBytes bounds request bodies; trivia payloads are tiny.
const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// JSON decodes the request body into dst and validates its `validate` tags.
func JSON(w http.ResponseWriter, r *http.Request, dst any) error {
	if err := Decode(w, r, dst); err != nil {
		return err
	}
	return Struct(dst)
}

// Decode decodes the request body into dst without validating it.
func Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return httperrors.Validation("decode request body", err)
	}
	return nil
}

// Struct validates v against its `validate` tags.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return httperrors.Validation("validate request", err)
	}
	return nil
}
