package handlers

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"
)

// JSONResponse sends a JSON response and ensures slices are never null
//
// This helper solves a common Go/JSON issue where nil slices are encoded
// as "null" instead of "[]", which breaks frontends that expect arrays.
// Always use this function instead of json.NewEncoder(w).Encode().
func JSONResponse(w http.ResponseWriter, status int, data interface{}) {
	normalized := normalizeSlices(data)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(normalized)
}

// normalizeSlices recursively ensures all nil slices become empty slices
func normalizeSlices(data interface{}) interface{} {
	if data == nil {
		return data
	}

	v := reflect.ValueOf(data)

	switch v.Kind() {
	case reflect.Ptr:
		if v.IsNil() {
			return data
		}
		elem := v.Elem()
		if elem.Type() == reflect.TypeOf(time.Time{}) {
			return data
		}
		normalized := normalizeSlices(elem.Interface())
		result := reflect.New(elem.Type())
		result.Elem().Set(reflect.ValueOf(normalized))
		return result.Interface()

	case reflect.Slice:
		if v.IsNil() {
			// Return empty slice of the same type
			return reflect.MakeSlice(v.Type(), 0, 0).Interface()
		}
		result := reflect.MakeSlice(v.Type(), v.Len(), v.Cap())
		for i := 0; i < v.Len(); i++ {
			normalized := normalizeSlices(v.Index(i).Interface())
			result.Index(i).Set(reflect.ValueOf(normalized))
		}
		return result.Interface()

	case reflect.Struct:
		if v.Type() == reflect.TypeOf(time.Time{}) {
			return data
		}
		result := reflect.New(v.Type()).Elem()
		for i := 0; i < v.NumField(); i++ {
			field := v.Field(i)
			if !field.CanInterface() || !result.Field(i).CanSet() {
				continue
			}
			switch field.Kind() {
			case reflect.Slice, reflect.Ptr, reflect.Struct:
				if field.Type() == reflect.TypeOf(time.Time{}) {
					result.Field(i).Set(field)
					continue
				}
				normalized := normalizeSlices(field.Interface())
				result.Field(i).Set(reflect.ValueOf(normalized))
			default:
				result.Field(i).Set(field)
			}
		}
		return result.Interface()
	}

	return data
}
