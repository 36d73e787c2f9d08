// Package schemacheck provides Factory struct with methods that build reusable
// input-validation checkers from JSON schema definitions.
//
// Factory may be initialized by two ways:
//
// First, returns Factory with default services:
//	func NewDefaultFactory() Factory
//
// Second, more customisable returns Factory with provided services:
//	func NewFactory(compiler validator.SchemaCompiler, fileValidator validator.Validator) Factory
//
// Schema definition may be passed as in-memory mapping or as path to file with JSON or YAML content:
//	checker, err := schemacheck.NewChecker(map[string]any{"type": "object"})
//	checker, err := schemacheck.NewChecker("/schemas/user.json")
//
// Returned CheckerFunc reports nil for valid value, otherwise error with message built
// from first violation reported by schema engine:
//	[SchemaError] Schema validation failed. Details: [name: name is required]
//
// Violations of document root are marked with <root> in place of node path.
// Default message prefix may be replaced through CheckerWithMessage.
package schemacheck
