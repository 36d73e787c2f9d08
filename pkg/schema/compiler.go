// Package schema holds services that allows to compile JSON schema into reusable validator.
//
// Package contains two types of JSON schema compilers:
//
//	XGCompiler has ability to compile JSON schema written with draft v4 v6 or v7.
//	QICompiler has ability to compile JSON schema written with draft 7 & 2019-09.
//
// By default, gojsonschema will try to detect the draft of a schema by using the $schema keyword and parse it
// in a strict draft-04, draft-06 or draft-07 mode. If $schema is missing, or the draft version is not explicitely set,
// a hybrid mode is used which merges together functionality of all drafts into one mode.
//
// Both compilers translate the engine-native root marker into an empty ErrorRecord path.
package schema

import (
	"context"
	"encoding/json"

	"github.com/qri-io/jsonschema"
	jschema "github.com/xeipuuv/gojsonschema"

	v "github.com/pawelWritesCode/schemacheck/pkg/validator"
)

// XGCompiler is entity that has ability to compile JSON schema definition.
// xeipuuv/gojsonschema is used under the hood.
type XGCompiler struct{}

// QICompiler is entity that has ability to compile JSON schema definition.
// qri-io/jsonschema is used under the hood.
type QICompiler struct{}

// NewXGCompiler creates new XGCompiler.
func NewXGCompiler() XGCompiler {
	return XGCompiler{}
}

// NewQICompiler creates new QICompiler.
func NewQICompiler() QICompiler {
	return QICompiler{}
}

// xgSchema wraps schema compiled by xeipuuv/gojsonschema engine.
type xgSchema struct {
	schema *jschema.Schema
}

// qiSchema wraps schema compiled by qri-io/jsonschema engine.
type qiSchema struct {
	schema *jsonschema.Schema
}

// Compile compiles schemaDef. Every call constructs fresh engine session,
// compiled schemas obtained from separate calls share no state.
func (c XGCompiler) Compile(schemaDef map[string]any) (v.CompiledSchema, error) {
	s, err := jschema.NewSchema(jschema.NewGoLoader(schemaDef))
	if err != nil {
		return nil, err
	}

	return xgSchema{schema: s}, nil
}

// Test validates value against compiled schema.
func (x xgSchema) Test(value any) ([]v.ErrorRecord, error) {
	result, err := x.schema.Validate(jschema.NewGoLoader(value))
	if err != nil {
		return nil, err
	}

	if result.Valid() {
		return nil, nil
	}

	records := make([]v.ErrorRecord, 0, len(result.Errors()))
	for _, resultErr := range result.Errors() {
		pth := resultErr.Field()
		if pth == jschema.STRING_CONTEXT_ROOT {
			pth = ""
		}

		records = append(records, v.ErrorRecord{Path: pth, Message: resultErr.Description()})
	}

	return records, nil
}

// Compile compiles schemaDef. qri-io engine builds its schema representation
// from JSON bytes, so definition goes through encoding/json round trip.
func (c QICompiler) Compile(schemaDef map[string]any) (v.CompiledSchema, error) {
	raw, err := json.Marshal(schemaDef)
	if err != nil {
		return nil, err
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(raw, rs); err != nil {
		return nil, err
	}

	return qiSchema{schema: rs}, nil
}

// Test validates value against compiled schema.
func (q qiSchema) Test(value any) ([]v.ErrorRecord, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}

	keyErrs, err := q.schema.ValidateBytes(context.Background(), raw)
	if err != nil {
		return nil, err
	}

	if len(keyErrs) == 0 {
		return nil, nil
	}

	records := make([]v.ErrorRecord, 0, len(keyErrs))
	for _, keyErr := range keyErrs {
		pth := keyErr.PropertyPath
		if pth == "/" {
			pth = ""
		}

		records = append(records, v.ErrorRecord{Path: pth, Message: keyErr.Message})
	}

	return records, nil
}
