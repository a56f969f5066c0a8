package model

import "time"

const (
	TableName  = "preferences"
	EntityName = "preference"

	FieldKey       = "key"
	FieldValue     = "value"
	FieldExpiresAt = "expires_at"
)

// Preference is one stored key. Value holds the JSON encoding of what was saved.
type Preference struct {
	Key       string     `db:"key"`
	Value     string     `db:"value"`
	ExpiresAt *time.Time `db:"expires_at"`
}
