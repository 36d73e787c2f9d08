// Package types holds utilities for working with Go data types.
package types

// DataType represents data type.
type DataType string

const (
	Bool   DataType = "bool"
	Float  DataType = "float"
	Int    DataType = "int"
	Map    DataType = "map"
	Nil    DataType = "nil"
	Slice  DataType = "slice"
	String DataType = "string"
)

const (
	// Unknown represents unknown data type.
	Unknown DataType = "unknown"
)

// Mapper is entity that has ability to map data's type into corresponding DataType.
type Mapper interface {
	// Map maps data type.
	Map(data any) DataType
}
