package domain

// ValidationError reports a required payload field that is missing or empty.
// It is an expected, recoverable condition: adapters map it to a client error
// carrying the message.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required key: " + e.Field
}

// MissingKeyError reports that a repository was asked to act on a document
// missing one of its declared identity fields. Unlike ValidationError this is
// an integration defect, not a user-facing condition.
type MissingKeyError struct {
	Key string
}

func (e *MissingKeyError) Error() string {
	return "document missing key field: " + e.Key
}
