// Package logschema names the keys of meditation session log records.
package logschema

// SchemaID is stamped on every record under FieldSchema.
const (
	SchemaID    = "meditation.session.log.v1"
	FieldSchema = "log_schema"
)

// Envelope keys written by the zap encoder.
const (
	FieldTimestamp = "ts"
	FieldLevel     = "level"
	FieldMessage   = "msg"
	FieldLogger    = "logger"
	FieldCaller    = "caller"
	FieldStack     = "stack"
)

// Session keys shared by the components.
const (
	FieldComponent = "component"
	FieldSessionID = "session_id"
	FieldStage     = "stage"
	FieldBand      = "band"
	FieldSound     = "sound"
	FieldPosition  = "position"
	FieldFrames    = "frames"
	FieldPath      = "path"
	FieldElapsed   = "elapsed"
	FieldError     = "error"
)

// LogRecord is one decoded JSON log line.
type LogRecord map[string]interface{}
