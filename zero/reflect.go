package zero

import (
	"reflect"
)

// OfType resolves the zero value for a type known only at runtime.
// Exactly one rule applies per type, selected by kind: nil-able kinds
// resolve to a typed nil, arithmetic and boolean kinds to zero, and any
// other kind to its default-constructed value. The result carries t as
// its dynamic type; a nil t resolves to nil.
func OfType(t reflect.Type) interface{} {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Ptr, reflect.UnsafePointer, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func, reflect.Interface:
		return reflect.Zero(t).Interface()
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return reflect.Zero(t).Interface()
	default:
		return reflect.New(t).Elem().Interface()
	}
}
