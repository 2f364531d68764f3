package helpers

import "reflect"

// IsNil reports whether v is a nil interface or holds a nil pointer, map,
// slice, channel or func. Values of other kinds are never nil.
func IsNil[T any](v T) bool {
	var i interface{} = v
	if i == nil {
		return true
	}

	rv := reflect.ValueOf(i)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
