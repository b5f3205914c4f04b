package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldPolicy is the standardized structured logging key for tokenizer policies.
	FieldPolicy = "policy"
	// FieldEventType classifies a log line for filtering (e.g. "history_pruned").
	FieldEventType = "event_type"
	// FieldErrorHint carries a short next step for the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the standardized key for user-facing consequence of a warning.
	FieldImpact = "impact"
)
