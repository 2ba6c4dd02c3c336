// Package persistence contains helpers shared by repository implementations.
package persistence

import (
	"encoding/base64"
	"fmt"
	"strings"

	"example.com/insight/internal/domain"
)

// EncodeCursor serialises the cursor to a string token.
func EncodeCursor(c *domain.Cursor) string {
	if c == nil {
		return ""
	}
	raw := fmt.Sprintf("%s|%s", c.Date, c.ID)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses the encoded cursor token.
func DecodeCursor(token string) (*domain.Cursor, error) {
	if strings.TrimSpace(token) == "" {
		return nil, nil
	}
	decoded, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	parts := strings.SplitN(string(decoded), "|", 2)
	if len(parts) != 2 || parts[0] == "" {
		return nil, fmt.Errorf("invalid cursor format")
	}
	return &domain.Cursor{Date: parts[0], ID: parts[1]}, nil
}
