package logging

const (
	FieldComponent  = "component"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldBytes      = "bytes"
	FieldDuration   = "duration_ms"
	FieldClientIP   = "client_ip"
	FieldUserID     = "user_id"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldEntityID   = "entity_id"
)

const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentStorage   = "storage"
	ComponentAuth      = "auth"
	ComponentMedia     = "media"
	ComponentDashboard = "dashboard"
)
