package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/eventhub/internal/models"
)

// StringTrim trims spaces and surrounding quotes, which show up when clients
// pass ids as JSON strings or templates.
func StringTrim(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'")
}

// DecodeStrict binds the request body into dst and rejects unknown fields.
// Malformed bodies come back as *models.ValidationError.
func DecodeStrict(c *gin.Context, dst any) error {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return models.NewValidationError("body", "request body is required")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return decodeError(err)
	}
	if dec.More() {
		return models.NewValidationError("body", "must contain a single JSON object")
	}
	return nil
}

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return models.NewValidationError(field, "must be of type "+typeErr.Type.String())
	case errors.As(err, &syntaxErr):
		return models.NewValidationError("body", "malformed JSON")
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		name := strings.Trim(strings.TrimPrefix(err.Error(), "json: unknown field "), "\"")
		return models.NewValidationError(name, "is not a recognised field")
	default:
		return models.NewValidationError("body", err.Error())
	}
}

// QueryInt reads a non-negative integer query parameter. Missing means def.
func QueryInt(c *gin.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, models.NewValidationError(name, "must be a non-negative integer")
	}
	return n, nil
}

// QueryFloat reads a non-negative float query parameter. Missing means def.
func QueryFloat(c *gin.Context, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0, models.NewValidationError(name, "must be a non-negative number")
	}
	return f, nil
}
