// Package validator holds utilities for validating data.
package validator

// Validator describes validator
type Validator interface {
	// Validate validates in
	Validate(in any) error
}

// ErrorRecord describes single violation reported by schema engine.
type ErrorRecord struct {
	// Path locates violating node. Empty path means violation concerns document root.
	Path string

	// Message is engine's human-readable description of violation.
	Message string
}

// CompiledSchema describes artifact produced by compiling schema once.
// It can test arbitrary values against that schema many times.
type CompiledSchema interface {
	// Test validates value against schema. It returns violations in engine order,
	// or nil when value satisfies schema.
	Test(value any) ([]ErrorRecord, error)
}

// SchemaCompiler describes entity that can compile schema definition into CompiledSchema.
type SchemaCompiler interface {
	// Compile compiles schema definition.
	Compile(schema map[string]any) (CompiledSchema, error)
}
