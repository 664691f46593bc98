package pagination

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// ErrInvalidToken is returned for tokens that do not decode to a Cursor.
var ErrInvalidToken = errors.New("invalid pagination token")

// Cursor is the opaque pagination state we encode/decode.
// DeciderID + UpdatedUnix (in millis) establish a stable cursor.
type Cursor struct {
	DeciderID   string `json:"decider_id"`
	UpdatedUnix int64  `json:"updated_unix,omitempty"`
}

// IsZero reports whether c is the first-page cursor.
func (c Cursor) IsZero() bool {
	return c.DeciderID == "" || c.UpdatedUnix <= 0
}

// Encode converts a Cursor into a Base64 string.
func Encode(c Cursor) (string, error) {
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(b), nil
}

// Decode parses a Base64 string into a Cursor.
// Empty token → empty cursor (first page).
func Decode(token string) (Cursor, error) {
	if token == "" {
		return Cursor{}, nil
	}

	b, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, ErrInvalidToken
	}

	var c Cursor
	if err := json.Unmarshal(b, &c); err != nil {
		return Cursor{}, ErrInvalidToken
	}
	return c, nil
}
