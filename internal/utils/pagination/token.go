package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/Shunea/be-easyreserv-sub002/internal/apperrors"
)

const timeFormat = time.RFC3339Nano

// Cursor marks the last row of a page ordered by (time, id).
type Cursor struct {
	At time.Time
	ID string
}

// EncodeCursor creates an opaque token for keyset pagination.
func EncodeCursor(at time.Time, id string) string {
	tokenStr := fmt.Sprintf("%s|%s", at.UTC().Format(timeFormat), id)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeCursor parses a token created by EncodeCursor. Malformed tokens are validation errors.
func DecodeCursor(token string) (Cursor, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, apperrors.NewValidationFailedError("invalid pagination token (base64 decode)")
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 || parts[1] == "" {
		return Cursor{}, apperrors.NewValidationFailedError("invalid pagination token (split)")
	}

	at, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return Cursor{}, apperrors.NewValidationFailedError("invalid pagination token (time parse)")
	}
	return Cursor{At: at, ID: parts[1]}, nil
}

// NextToken returns the token for the page after rows, or nil when rows did not fill the page.
func NextToken[T any](rows []T, limit int, key func(T) (time.Time, string)) *string {
	if limit <= 0 || len(rows) < limit {
		return nil
	}
	at, id := key(rows[len(rows)-1])
	token := EncodeCursor(at, id)
	return &token
}
