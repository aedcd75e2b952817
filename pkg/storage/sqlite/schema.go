package sqlite

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/PattemChaitanya/custom-gateway/pkg/model"
)

// sqlType maps an entity field's Go type onto a SQLite column type.
// Booleans are stored as 0/1 integers; timestamps and the JSON-serialized
// nested fields are stored as text.
func sqlType(t reflect.Type) string {
	switch {
	case t.Kind() == reflect.Int64:
		return "INTEGER"
	case t.Kind() == reflect.Bool:
		return "INTEGER"
	case t == reflect.TypeOf(time.Time{}):
		return "TEXT"
	default:
		return "TEXT"
	}
}

// createSchema issues an idempotent CREATE TABLE IF NOT EXISTS per entity
// kind, with unique constraints mirroring the kinds' logical keys. Every
// statement runs under ctx's deadline.
func createSchema(ctx context.Context, db *sql.DB) error {
	for _, kind := range model.KindValues() {
		ddl := tableDDL(kind)
		if _, err := db.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create table %s: %w", model.Table(kind), err)
		}
	}
	return nil
}

func tableDDL(kind model.Kind) string {
	proto := model.New(kind)
	var defs []string
	for _, col := range model.Columns(proto) {
		if col.Name == "id" {
			defs = append(defs, "id INTEGER PRIMARY KEY AUTOINCREMENT")
			continue
		}
		value, _ := model.FieldValue(proto, col.Name)
		defs = append(defs, fmt.Sprintf("%s %s", col.Name, sqlType(reflect.TypeOf(value))))
	}
	for _, keyset := range model.UniqueKeys(kind) {
		defs = append(defs, fmt.Sprintf("UNIQUE(%s)", strings.Join(keyset, ", ")))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", model.Table(kind), strings.Join(defs, ",\n\t"))
}

// encodeField converts an entity field into a driver-bindable value.
// Zero timestamps become NULL so reads round-trip back to a zero time.
func encodeField(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return nil, nil
		}
		return v.UTC().Format(time.RFC3339Nano), nil
	case driver.Valuer:
		return v.Value()
	default:
		return value, nil
	}
}

// scanDest returns a scan destination for a column plus a finisher that
// moves the scanned value into the entity field, decoding booleans from
// 0/1 and timestamps from text.
func scanDest(e model.Entity, col model.Column) (interface{}, func() error) {
	addr, ok := model.FieldAddr(e, col.Name)
	if !ok {
		var discard interface{}
		return &discard, func() error { return nil }
	}

	switch field := addr.(type) {
	case *bool:
		buf := new(sql.NullInt64)
		return buf, func() error {
			*field = buf.Valid && buf.Int64 != 0
			return nil
		}
	case *time.Time:
		buf := new(sql.NullString)
		return buf, func() error {
			if !buf.Valid || buf.String == "" {
				*field = time.Time{}
				return nil
			}
			t, err := time.Parse(time.RFC3339Nano, buf.String)
			if err != nil {
				return fmt.Errorf("decode %s: %w", col.Name, err)
			}
			*field = t
			return nil
		}
	case *string:
		buf := new(sql.NullString)
		return buf, func() error {
			*field = buf.String
			return nil
		}
	case *int64:
		buf := new(sql.NullInt64)
		return buf, func() error {
			*field = buf.Int64
			return nil
		}
	default:
		// JSONMap and StringList implement sql.Scanner themselves.
		return addr, func() error { return nil }
	}
}
