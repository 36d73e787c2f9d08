package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v "github.com/pawelWritesCode/schemacheck/pkg/validator"
)

var userSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"name": map[string]any{"type": "string"},
		"age":  map[string]any{"type": "integer", "minimum": 0.0},
	},
	"required": []any{"name"},
}

func TestXGCompiler_Compile(t *testing.T) {
	c := NewXGCompiler()

	t.Run("valid schema compiles", func(t *testing.T) {
		compiled, err := c.Compile(userSchema)

		require.NoError(t, err)
		require.NotNil(t, compiled)
	})

	t.Run("malformed schema fails to compile", func(t *testing.T) {
		_, err := c.Compile(map[string]any{"type": 123})

		assert.Error(t, err)
	})
}

func TestXGSchema_Test(t *testing.T) {
	compiled, err := NewXGCompiler().Compile(userSchema)
	require.NoError(t, err)

	t.Run("valid value yields no records", func(t *testing.T) {
		records, err := compiled.Test(map[string]any{"name": "John", "age": 30})

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("missing required property yields record with property path", func(t *testing.T) {
		records, err := compiled.Test(map[string]any{"age": 30})

		require.NoError(t, err)
		require.NotEmpty(t, records)
		assert.Equal(t, "name", records[0].Path)
		assert.Contains(t, records[0].Message, "required")
	})

	t.Run("property type mismatch yields record with property path", func(t *testing.T) {
		records, err := compiled.Test(map[string]any{"name": 123})

		require.NoError(t, err)
		require.NotEmpty(t, records)
		assert.Equal(t, "name", records[0].Path)
		assert.NotEmpty(t, records[0].Message)
	})

	t.Run("root violation yields record with empty path", func(t *testing.T) {
		records, err := compiled.Test("not an object")

		require.NoError(t, err)
		require.NotEmpty(t, records)
		assert.Equal(t, "", records[0].Path)
		assert.NotEmpty(t, records[0].Message)
	})
}

func TestQICompiler_Compile(t *testing.T) {
	c := NewQICompiler()

	compiled, err := c.Compile(userSchema)

	require.NoError(t, err)
	require.NotNil(t, compiled)
}

func TestQISchema_Test(t *testing.T) {
	compiled, err := NewQICompiler().Compile(userSchema)
	require.NoError(t, err)

	t.Run("valid value yields no records", func(t *testing.T) {
		records, err := compiled.Test(map[string]any{"name": "John", "age": 30})

		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("missing required property yields record", func(t *testing.T) {
		records, err := compiled.Test(map[string]any{"age": 30})

		require.NoError(t, err)
		require.NotEmpty(t, records)
		assert.NotEmpty(t, records[0].Message)
	})

	t.Run("root violation yields record with empty path", func(t *testing.T) {
		records, err := compiled.Test("not an object")

		require.NoError(t, err)
		require.NotEmpty(t, records)
		assert.Equal(t, "", records[0].Path)
		assert.NotEmpty(t, records[0].Message)
	})
}

// compile-time interface conformance
var (
	_ v.SchemaCompiler = XGCompiler{}
	_ v.SchemaCompiler = QICompiler{}
)
