package zero

import (
	"reflect"
	"unsafe"

	"github.com/viant/xunsafe"
)

// FieldIsZero reports whether a struct field holds the zero value of
// its type, without boxing the owning struct.
func FieldIsZero(field *xunsafe.Field, structPtr unsafe.Pointer) bool {
	value := field.Value(structPtr)
	if value == nil {
		return true
	}
	return reflect.ValueOf(value).IsZero()
}

// ResetField writes the zero value of the field type into a struct
// field.
func ResetField(field *xunsafe.Field, structPtr unsafe.Pointer) {
	field.SetValue(structPtr, OfType(field.Type))
}
