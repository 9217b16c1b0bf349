package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"

	// Id factories
	FieldEntity      = "entity"
	FieldCount       = "count"
	FieldLength      = "length"
	FieldBits        = "bits"
	FieldTimestamped = "timestamped"
	FieldMode        = "mode"
)
