package repository

import "time"

// Submission is one completed form: every field was valid when the user
// submitted.
type Submission struct {
	ID        string
	CreatedAt time.Time
	Values    []FieldValue
}

// FieldValue is a single field's text at submission time.
type FieldValue struct {
	Key   string
	Value string
}
