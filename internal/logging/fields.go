// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Configuration fields.
	FieldFlavor = "flavor"
	FieldFormat = "format"

	// Document fields.
	FieldBlocks = "blocks"
	FieldSize   = "size"
	FieldKind   = "kind"
	FieldNode   = "node"

	// Edit fields.
	FieldOp       = "op"
	FieldPos      = "pos"
	FieldFrom     = "from"
	FieldTo       = "to"
	FieldCursor   = "cursor"
	FieldInserted = "inserted"
	FieldDeleted  = "deleted"
	FieldChanged  = "changed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
