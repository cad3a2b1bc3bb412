// Package json encodes a string-keyed sparsemap as a JSON object with
// gojay. Only stored entries reach the wire, so suppressed defaults
// cost nothing to serialize either.
package json

import (
	"fmt"
	"reflect"

	"github.com/francoispqt/gojay"
	"github.com/viant/sparsemap"
)

// Object adapts a string-keyed map to gojay's object codec.
type Object[V comparable] struct {
	Map *sparsemap.Map[string, V]
}

// MarshalJSONObject encodes every stored entry in ascending key order.
func (o Object[V]) MarshalJSONObject(enc *gojay.Encoder) {
	if o.Map == nil {
		return
	}
	o.Map.Range(func(key string, value V) bool {
		enc.AddInterfaceKey(key, value)
		return true
	})
}

// IsNil reports whether there is no map to encode.
func (o Object[V]) IsNil() bool {
	return o.Map == nil
}

// UnmarshalJSONObject decodes one entry. Decoded entries are restored
// through the raw path, verbatim, mirroring the seed constructor; call
// Purge on the map afterwards to re-establish the suppression contract.
func (o Object[V]) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var raw interface{}
	if err := dec.Interface(&raw); err != nil {
		return err
	}
	value, err := coerce[V](raw)
	if err != nil {
		return fmt.Errorf("key %q: %w", key, err)
	}
	o.Map.Store(key, value)
	return nil
}

// NKeys instructs gojay to decode every key.
func (o Object[V]) NKeys() int {
	return 0
}

// Marshal encodes the stored entries of m as a JSON object.
func Marshal[V comparable](m *sparsemap.Map[string, V]) ([]byte, error) {
	return gojay.MarshalJSONObject(Object[V]{Map: m})
}

// Unmarshal decodes a JSON object into m through the raw path.
func Unmarshal[V comparable](data []byte, m *sparsemap.Map[string, V]) error {
	return gojay.UnmarshalJSONObject(data, Object[V]{Map: m})
}

// coerce converts a decoded interface value into V. JSON numbers decode
// as float64, so numeric value types are converted through reflection.
func coerce[V comparable](raw interface{}) (V, error) {
	var result V
	if raw == nil {
		return result, nil
	}
	if typed, ok := raw.(V); ok {
		return typed, nil
	}
	rType := reflect.TypeOf(result)
	rValue := reflect.ValueOf(raw)
	if rValue.Type().ConvertibleTo(rType) {
		return rValue.Convert(rType).Interface().(V), nil
	}
	return result, fmt.Errorf("cannot coerce %T into %s", raw, rType)
}
