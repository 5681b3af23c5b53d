package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldYear       = "year"
	FieldMonth      = "month"
	FieldDate       = "date"
	FieldRecords    = "records"
	FieldBackend    = "backend"
	FieldPathOnDisk = "data_path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentStore   = "store"
	ComponentTracker = "tracker"
	ComponentCache   = "cache"
)
