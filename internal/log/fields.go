package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldRequestID     = "request_id"
	FieldMethod        = "method"
	FieldPath          = "path"
	FieldStatusCode    = "status_code"
	FieldDuration      = "duration_ms"
	FieldError         = "error"
	FieldOperation     = "operation"
	FieldTransactionID = "transaction_id"
	FieldDescription   = "description"
	FieldAmountKobo    = "amount_kobo"
	FieldTxType        = "type"
	FieldTxDate        = "date"
	FieldFilter        = "filter"
	FieldCount         = "count"
	FieldStorageKey    = "storage_key"
	FieldBackend       = "backend"
	FieldFilename      = "filename"
)

// ComponentApp tags records from the process-wide default logger.
const ComponentApp = "app"

// Operations defines standard operation names
const (
	OpLoad     = "load"
	OpSave     = "save"
	OpAdd      = "add"
	OpRemove   = "remove"
	OpExport   = "export"
	OpPublish  = "publish"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
