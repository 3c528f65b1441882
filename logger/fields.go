package logger

// Standard field names for consistent structured logging across pattrix.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID     = "run_id"
	FieldComponent = "component"
	FieldOperation = "operation"

	// Domain
	FieldPeriod  = "period"
	FieldPattern = "pattern"
	FieldSubject = "subject"
	FieldLength  = "length"

	// Counts and sizes
	FieldCount      = "count"
	FieldTotalCount = "total_count"
	FieldSubjects   = "subjects"
	FieldAttributes = "attributes"
	FieldNodes      = "nodes"
	FieldEdges      = "edges"
	FieldAllPairs   = "all_pairs"
	FieldClosePairs = "close_pairs"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Files and paths
	FieldFile = "file"
	FieldPath = "path"
)
