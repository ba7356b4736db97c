package action

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	domainerrors "foodbank/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// nestedDataKey holds the payload when clients wrap it as {action, data}.
const nestedDataKey = "data"

// Params are the flattened request parameters of one call. JSON scalars
// arrive as their text, so 2 and "2" read the same.
type Params map[string]string

// Get returns the first non-empty value among keys. Several keys cover
// the snake_case and camelCase spellings clients send.
func (p Params) Get(keys ...string) string {
	for _, key := range keys {
		if value := strings.TrimSpace(p[key]); value != "" {
			return value
		}
	}

	return ""
}

// Int returns the integer under keys, or fallback when absent or malformed.
func (p Params) Int(fallback int, keys ...string) int {
	value := p.Get(keys...)
	if value == "" {
		return fallback
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return n
}

// Action returns the requested action name.
func (p Params) Action() Name {
	return Name(p.Get("action"))
}

// ParseParams merges the query string with a JSON or URL-encoded body.
// Body values win over query values, and a nested "data" object wins over
// both.
func ParseParams(c echo.Context) (Params, error) {
	params := make(Params)
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	req := c.Request()
	if req.Method != http.MethodPost || req.Body == nil {
		return params, nil
	}

	mediaType, _, _ := mime.ParseMediaType(req.Header.Get(echo.HeaderContentType))
	switch mediaType {
	case echo.MIMEApplicationForm, echo.MIMEMultipartForm:
		form, err := c.FormParams()
		if err != nil {
			return nil, domainerrors.ErrInvalidInput.WithDetails("form body")
		}
		for key, values := range form {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}

	default:
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, errors.Wrap(err, "read request body")
		}
		if len(bytes.TrimSpace(body)) == 0 {
			return params, nil
		}
		if err := mergeJSON(params, body); err != nil {
			return nil, err
		}
	}

	return params, nil
}

func mergeJSON(params Params, body []byte) error {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(body, &object); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("JSON body must be an object")
	}

	nested := object[nestedDataKey]
	delete(object, nestedDataKey)
	flatten(params, object)

	if len(nested) > 0 {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(nested, &inner); err == nil {
			flatten(params, inner)
		} else {
			params[nestedDataKey] = scalarText(nested)
		}
	}

	return nil
}

func flatten(params Params, object map[string]json.RawMessage) {
	for key, raw := range object {
		if text := scalarText(raw); text != "" {
			params[key] = text
		}
	}
}

// scalarText renders a JSON value as text: strings unquoted, null empty,
// everything else verbatim.
func scalarText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return ""
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}

	return string(trimmed)
}
