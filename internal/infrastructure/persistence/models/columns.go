package models

import (
	"database/sql/driver"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// columnField maps a struct field of an Insert or Update shape to its column
type columnField struct {
	index  int
	column string
}

var columnFieldCache sync.Map // reflect.Type -> []columnField

func columnFields(t reflect.Type) []columnField {
	if cached, ok := columnFieldCache.Load(t); ok {
		return cached.([]columnField)
	}
	fields := make([]columnField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := strings.Split(f.Tag.Get("db"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		fields = append(fields, columnField{index: i, column: name})
	}
	columnFieldCache.Store(t, fields)
	return fields
}

// ShapeColumns returns the column names declared by an Insert or Update shape
// in field order.
func ShapeColumns(shape any) []string {
	t := reflect.TypeOf(shape)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	fields := columnFields(t)
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.column
	}
	return names
}

// columnValues collects the columns a shape writes. Plain fields are always
// written; Opt fields only when set.
func columnValues(shape any) map[string]any {
	rv := reflect.ValueOf(shape)
	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	values := make(map[string]any)
	for _, f := range columnFields(rv.Type()) {
		fv := rv.Field(f.index)
		if opt, ok := fv.Interface().(optional); ok {
			v, set := opt.columnValue()
			if !set {
				continue
			}
			values[f.column] = sqlValue(v)
			continue
		}
		values[f.column] = sqlValue(fv.Interface())
	}
	return values
}

// SQLValue converts a Go value the way Insert and Update shapes do before
// it reaches the driver.
func SQLValue(v any) any {
	return sqlValue(v)
}

// sqlValue unwraps pointers and named string/bool kinds so every driver sees
// a plain value. JSON documents are sent as text.
func sqlValue(v any) any {
	if v == nil {
		return nil
	}
	if raw, ok := v.(json.RawMessage); ok {
		if raw == nil {
			return nil
		}
		return string(raw)
	}
	if valuer, ok := v.(driver.Valuer); ok {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		return valuer
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		return sqlValue(rv.Elem().Interface())
	}
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	}
	return v
}
