package schemacheck

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/gjson"

	"github.com/pawelWritesCode/schemacheck/pkg/format"
	"github.com/pawelWritesCode/schemacheck/pkg/osutils"
	"github.com/pawelWritesCode/schemacheck/pkg/schema"
	"github.com/pawelWritesCode/schemacheck/pkg/types"
	v "github.com/pawelWritesCode/schemacheck/pkg/validator"
)

// DefaultMessage is error message prefix used when no custom message was provided.
const DefaultMessage = "[SchemaError] Schema validation failed"

// rootPath marks violations of document root in formatted messages.
const rootPath = "<root>"

// messageFormat is fixed format of messages produced by CheckerFunc.
const messageFormat = "%s. Details: [%s: %s]"

// CheckerFunc is reusable schema-bound validation function. It returns nil when value
// satisfies schema, otherwise error with message describing first violation reported
// by schema engine. CheckerFunc holds no mutable state, it may be invoked repeatedly.
type CheckerFunc func(value any) error

// Factory is entity that has ability to build CheckerFunc from schema definition.
// Every Checker* call compiles its schema exactly once, checkers built from separate
// calls share no compiled state.
type Factory struct {
	compiler      v.SchemaCompiler
	fileValidator v.Validator
	typeMapper    types.Mapper
}

// NewDefaultFactory creates new Factory with fixed services:
// xeipuuv/gojsonschema compiler and OS file validator.
func NewDefaultFactory() Factory {
	return NewFactory(schema.NewXGCompiler(), osutils.NewFileValidator())
}

// NewFactory creates new Factory with provided services.
func NewFactory(compiler v.SchemaCompiler, fileValidator v.Validator) Factory {
	return Factory{
		compiler:      compiler,
		fileValidator: fileValidator,
		typeMapper:    types.NewGoTypeMapper(),
	}
}

// NewChecker builds CheckerFunc from schemaDef using default services.
func NewChecker(schemaDef any) (CheckerFunc, error) {
	return NewDefaultFactory().Checker(schemaDef)
}

// NewCheckerWithMessage builds CheckerFunc from schemaDef using default services
// and custom error message prefix.
func NewCheckerWithMessage(schemaDef any, message string) (CheckerFunc, error) {
	return NewDefaultFactory().CheckerWithMessage(schemaDef, message)
}

// Checker builds CheckerFunc from schemaDef with default error message prefix.
func (f Factory) Checker(schemaDef any) (CheckerFunc, error) {
	return f.CheckerWithMessage(schemaDef, DefaultMessage)
}

// CheckerWithMessage builds CheckerFunc from schemaDef. schemaDef should be mapping
// describing JSON schema or non-empty string holding path to file with one, otherwise
// ErrInvalidSchema is returned. Returned CheckerFunc reports nil for valid value or
// error with message in form "<message>. Details: [<path>: <violation>]" built from
// first violation, where <path> is <root> when violation concerns document root.
// Compilation and file-loading failures are propagated unmodified.
func (f Factory) CheckerWithMessage(schemaDef any, message string) (CheckerFunc, error) {
	resolved, err := f.resolve(schemaDef)
	if err != nil {
		return nil, err
	}

	compiled, err := f.compiler.Compile(resolved)
	if err != nil {
		return nil, err
	}

	return newChecker(compiled, message), nil
}

// CheckerAt builds CheckerFunc that validates only node under expr instead of whole
// value. expr should be valid tidwall/gjson path expression and candidate values
// should be JSON-serializable. Missing node is reported in standard message format
// with expr in place of node path.
func (f Factory) CheckerAt(schemaDef any, expr string) (CheckerFunc, error) {
	return f.CheckerAtWithMessage(schemaDef, expr, DefaultMessage)
}

// CheckerAtWithMessage works as CheckerAt with custom error message prefix.
func (f Factory) CheckerAtWithMessage(schemaDef any, expr, message string) (CheckerFunc, error) {
	checker, err := f.CheckerWithMessage(schemaDef, message)
	if err != nil {
		return nil, err
	}

	return func(value any) error {
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}

		node := gjson.GetBytes(raw, expr)
		if !node.Exists() {
			return fmt.Errorf(messageFormat, message, expr, "node does not exist")
		}

		return checker(node.Value())
	}, nil
}

// newChecker closes over compiled schema and effective error message prefix.
// Only first violation reported by engine is surfaced, remaining ones are discarded.
func newChecker(compiled v.CompiledSchema, message string) CheckerFunc {
	return func(value any) error {
		records, err := compiled.Test(value)
		if err != nil {
			return err
		}

		if len(records) == 0 {
			return nil
		}

		pth := records[0].Path
		if pth == "" {
			pth = rootPath
		}

		return fmt.Errorf(messageFormat, message, pth, records[0].Message)
	}
}

// resolve validates type of raw schema definition and returns schema object.
// Available definition sources are: in-memory mapping and path to JSON or YAML file on user OS.
func (f Factory) resolve(schemaDef any) (map[string]any, error) {
	switch f.typeMapper.Map(schemaDef) {
	case types.String:
		pth := reflect.ValueOf(schemaDef).String()
		if pth == "" {
			return nil, ErrInvalidSchema
		}

		return f.loadFromFile(pth)
	case types.Map:
		return normalize(schemaDef)
	default:
		return nil, ErrInvalidSchema
	}
}

// loadFromFile reads schema definition from file under pth, recognizing JSON or YAML content.
func (f Factory) loadFromFile(pth string) (map[string]any, error) {
	if err := f.fileValidator.Validate(pth); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(pth)
	if err != nil {
		return nil, err
	}

	var schemaObj map[string]any
	switch format.Recognize(raw) {
	case format.JSON:
		if err := json.Unmarshal(raw, &schemaObj); err != nil {
			return nil, err
		}
	case format.YAML:
		if err := yaml.Unmarshal(raw, &schemaObj); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%s holds neither JSON nor YAML content", pth)
	}

	return schemaObj, nil
}

// normalize turns any mapping into map[string]any through encoding/json round trip.
func normalize(schemaDef any) (map[string]any, error) {
	if schemaObj, ok := schemaDef.(map[string]any); ok {
		return schemaObj, nil
	}

	raw, err := json.Marshal(schemaDef)
	if err != nil {
		return nil, err
	}

	var schemaObj map[string]any
	if err := json.Unmarshal(raw, &schemaObj); err != nil {
		return nil, err
	}

	return schemaObj, nil
}
