// Package schema exposes the slice of model introspection the resolver
// needs: concrete column names, the identity column and reflective field
// access, all obtained from GORM's statement parser.
package schema

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	gormschema "gorm.io/gorm/schema"
)

// Info describes the storage shape of one model type.
type Info struct {
	// Table is the resolved storage table name.
	Table string

	// IdentityColumn is the primary key column when the model has exactly
	// one; empty for composite or absent primary keys.
	IdentityColumn string

	columns map[string]*gormschema.Field
	order   []string
}

// Inspect parses the model through GORM and returns its storage shape.
// Parsing is cached by GORM per model type, so repeated calls are cheap.
func Inspect(db *gorm.DB, model any) (*Info, error) {
	stmt := &gorm.Statement{DB: db}
	if err := stmt.Parse(model); err != nil {
		return nil, fmt.Errorf("parse model schema: %w", err)
	}

	info := &Info{
		Table:   stmt.Schema.Table,
		columns: make(map[string]*gormschema.Field, len(stmt.Schema.Fields)),
	}

	for _, field := range stmt.Schema.Fields {
		if field.DBName == "" {
			continue
		}
		if _, ok := info.columns[field.DBName]; ok {
			continue
		}
		info.columns[field.DBName] = field
		info.order = append(info.order, field.DBName)
	}

	if len(stmt.Schema.PrimaryFields) == 1 {
		info.IdentityColumn = stmt.Schema.PrimaryFields[0].DBName
	}

	return info, nil
}

// HasColumn reports whether the model carries the named column.
func (i *Info) HasColumn(name string) bool {
	_, ok := i.columns[name]
	return ok
}

// Columns returns the column names in declaration order.
func (i *Info) Columns() []string {
	columns := make([]string, len(i.order))
	copy(columns, i.order)
	return columns
}

// Value reads the named column's value from a record instance. The second
// return is false when the column does not exist on the model.
func (i *Info) Value(ctx context.Context, record any, column string) (any, bool) {
	field, ok := i.columns[column]
	if !ok {
		return nil, false
	}

	value, _ := field.ValueOf(ctx, reflect.ValueOf(record))
	return value, true
}

// SetValue writes a value into the named column of a record instance.
// Unknown columns report an error so callers can decide whether absence
// is benign.
func (i *Info) SetValue(ctx context.Context, record any, column string, value any) error {
	field, ok := i.columns[column]
	if !ok {
		return fmt.Errorf("column %q not present on table %q", column, i.Table)
	}

	return field.Set(ctx, reflect.ValueOf(record), value)
}
