package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7. Version 7 identifiers lead with a millisecond
// Unix timestamp, so primary keys created later sort after earlier ones.
// Falls back to a random v4 identifier if the v7 generator fails.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates a UUID and returns it in canonical lowercase form.
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid reports whether s is a UUID in the canonical 36-character form.
// The braced, urn: and undashed forms accepted by Parse are rejected since
// they never match a stored key.
func IsValid(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := googleuuid.Parse(s)
	return err == nil
}
