package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	apperrors "finwallet/internal/errors"
	"finwallet/internal/middleware"
)

// bindJSON decodes the request body into obj. An empty body decodes as an
// empty object so that missing fields surface as validation errors.
func bindJSON(c *gin.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "Request body must be a valid JSON object")
	}
	return nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}

// scalar keeps the literal text of any JSON scalar so that numbers and
// numeric strings are accepted alike. Decoding never fails; format checks
// are left to validation.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*s = scalar(data)
			return nil
		}
		*s = scalar(str)
	default:
		*s = scalar(data)
	}
	return nil
}

// text decodes a JSON string. Any other non-null value leaves the field
// marked as mistyped instead of failing the whole body, so the type error is
// reported next to every other invalid field.
type text struct {
	value    string
	set      bool
	mistyped bool
}

func (t *text) UnmarshalJSON(data []byte) error {
	*t = text{}
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		t.mistyped = true
		return nil
	}
	t.value, t.set = str, true
	return nil
}

// read returns the decoded string and records name in mistyped when the
// JSON value had the wrong type.
func (t text) read(name string, mistyped *[]string) string {
	if t.mistyped {
		*mistyped = append(*mistyped, name)
	}
	return t.value
}

// readPtr is like read but keeps an absent or null value as nil.
func (t text) readPtr(name string, mistyped *[]string) *string {
	v := t.read(name, mistyped)
	if !t.set {
		return nil
	}
	return &v
}
