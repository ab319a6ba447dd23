package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType classifies a record for filtering (e.g. "catalog_save_failed").
	FieldEventType = "event_type"
	// FieldErrorHint tells the reader what to do next.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldPath is the file a record refers to.
	FieldPath = "path"
	// FieldTitle is a movie title.
	FieldTitle = "title"
	// FieldGenre is a movie genre or genre query.
	FieldGenre = "genre"
	// FieldCount is a number of catalog entries.
	FieldCount = "count"
)
