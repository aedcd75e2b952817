package model

import (
	"reflect"
	"strings"
	"sync"
)

// Column describes one persisted field of an entity struct.
type Column struct {
	// Name is the column name from the gorm tag.
	Name string
	// index locates the struct field, including embedded structs.
	index []int
}

var columnCache sync.Map // reflect.Type -> []Column

// Columns returns the persisted columns of an entity in struct declaration
// order. The embedded Record's id column comes first.
func Columns(e Entity) []Column {
	t := reflect.TypeOf(e).Elem()
	if cached, ok := columnCache.Load(t); ok {
		return cached.([]Column)
	}

	var cols []Column
	var walk func(t reflect.Type, prefix []int)
	walk = func(t reflect.Type, prefix []int) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			index := append(append([]int(nil), prefix...), i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				walk(f.Type, index)
				continue
			}
			name := columnName(f)
			if name == "" {
				continue
			}
			cols = append(cols, Column{Name: name, index: index})
		}
	}
	walk(t, nil)

	columnCache.Store(t, cols)
	return cols
}

// FieldValue resolves an entity field by column name. The second return is
// false when the entity has no such column; query emulation treats that as
// "no match", never as an error.
func FieldValue(e Entity, column string) (interface{}, bool) {
	for _, col := range Columns(e) {
		if col.Name == column {
			return reflect.ValueOf(e).Elem().FieldByIndex(col.index).Interface(), true
		}
	}
	return nil, false
}

// FieldAddr resolves a pointer to an entity field by column name, for use
// as a sql.Rows scan destination.
func FieldAddr(e Entity, column string) (interface{}, bool) {
	for _, col := range Columns(e) {
		if col.Name == column {
			return reflect.ValueOf(e).Elem().FieldByIndex(col.index).Addr().Interface(), true
		}
	}
	return nil, false
}

// SetFieldValue assigns an entity field by column name. The value must be
// assignable to the field type.
func SetFieldValue(e Entity, column string, value interface{}) bool {
	for _, col := range Columns(e) {
		if col.Name != column {
			continue
		}
		field := reflect.ValueOf(e).Elem().FieldByIndex(col.index)
		v := reflect.ValueOf(value)
		if !v.IsValid() || !v.Type().AssignableTo(field.Type()) {
			if v.IsValid() && v.Type().ConvertibleTo(field.Type()) {
				field.Set(v.Convert(field.Type()))
				return true
			}
			return false
		}
		field.Set(v)
		return true
	}
	return false
}

func columnName(f reflect.StructField) string {
	tag, ok := f.Tag.Lookup("gorm")
	if !ok {
		return ""
	}
	for _, part := range strings.Split(tag, ";") {
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return ""
}
