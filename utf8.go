package typedstream

import (
	"errors"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("invalid UTF-8")

func isValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}
