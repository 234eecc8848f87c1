package log

// Common field names for structured logging
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldQuery       = "query"
	FieldStatusCode  = "status_code"
	FieldDuration    = "duration_ms"
	FieldSuccess     = "success"
	FieldError       = "error"
	FieldOperation   = "operation"
	FieldEntryID     = "entry_id"
	FieldGoalID      = "goal_id"
	FieldKind        = "kind"
	FieldAmountCents = "amount_cents"
	FieldBackend     = "backend"
	FieldKey         = "key"
	FieldCount       = "count"
)

// Components defines standard component names
const (
	ComponentApp    = "app"
	ComponentWorker = "worker"
)

// Operations defines the mutation names logged by the ledger and worker
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpUndo   = "undo"
	OpToggle = "toggle"
	OpMirror = "mirror"
)
