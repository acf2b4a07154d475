package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldBytes      = "bytes"

	// Buffer and classification fields.
	FieldRegion     = "region"
	FieldOffset     = "offset"
	FieldLength     = "length"
	FieldRecognized = "recognized"
	FieldTruncated  = "truncated"
	FieldHistory    = "history"

	// Glitch fields.
	FieldMode    = "mode"
	FieldSeed    = "seed"
	FieldCount   = "count"
	FieldChanged = "changed"

	// Configuration fields.
	FieldEndMarker = "end_marker"
	FieldMaxSize   = "max_size"
	FieldJobs      = "jobs"
	FieldBackup    = "backup"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesScanned    = "files_scanned"
	FieldUnrecognized    = "unrecognized"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
