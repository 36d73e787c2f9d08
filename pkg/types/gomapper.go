package types

import "reflect"

// GoTypeMapper is entity that has ability to map underlying data type into corresponding Go-like data type.
type GoTypeMapper struct{}

func NewGoTypeMapper() GoTypeMapper {
	return GoTypeMapper{}
}

// Map maps data underlying type into Go-like data type.
func (g GoTypeMapper) Map(data any) DataType {
	if data == nil {
		return Nil
	}

	v := reflect.ValueOf(data)

	switch v.Kind() {
	case reflect.String:
		return String
	case reflect.Map:
		return Map
	case reflect.Slice, reflect.Array:
		return Slice
	case reflect.Bool:
		return Bool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Int
	case reflect.Float32, reflect.Float64:
		return Float
	case reflect.Ptr, reflect.Chan:
		if v.IsNil() {
			return Nil
		}
	}

	return Unknown
}
