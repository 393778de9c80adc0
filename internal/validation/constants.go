package validation

// Schema files shipped with the service
const (
	SchemaPathNightTables = "configs/schemas/night_tables.schema.json"
)

const (
	ErrMsgReadData       = "failed to read data file"
	ErrMsgParseData      = "failed to parse JSON data"
	ErrMsgLoadSchema     = "failed to load schema"
	ErrMsgSchemaNotFound = "schema file not found"
	ErrMsgSchemaFailed   = "schema validation failed"
)
