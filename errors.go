package schemacheck

import "errors"

// ErrInvalidSchema tells that schema definition is neither an object nor a non-empty string.
var ErrInvalidSchema = errors.New("Invalid schema specified (arg #1)")
