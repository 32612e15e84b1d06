package checksum

import (
	"reflect"
	"strings"
)

// ParamsFrom extracts checksum parameters from a request struct.
//
// Top-level string and *string fields are collected under their json tag
// name; embedded structs are flattened so base request fields participate.
// Nil pointers and untagged fields are skipped.
func ParamsFrom(req any) map[string]string {
	params := make(map[string]string)
	collect(reflect.ValueOf(req), params)
	return params
}

func collect(v reflect.Value, params map[string]string) {
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return
	}

	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		// Embedded structs flatten regardless of exportedness.
		if field.Anonymous {
			collect(v.Field(i), params)
			continue
		}
		if field.PkgPath != "" {
			continue
		}

		name := jsonName(field)
		if name == "" {
			continue
		}

		fv := v.Field(i)
		switch fv.Kind() {
		case reflect.String:
			params[name] = fv.String()
		case reflect.Pointer:
			if fv.IsNil() || fv.Elem().Kind() != reflect.String {
				continue
			}
			params[name] = fv.Elem().String()
		}
	}
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}
