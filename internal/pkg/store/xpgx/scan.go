package xpgx

import (
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
)

// scanOne reads the first row into dest (*T, T — структура с db-тегами).
func scanOne(rows pgx.Rows, dest any) error {
	defer rows.Close()

	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("scan: dest must be a struct pointer, got %T", dest)
	}
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return pgx.ErrNoRows
	}
	if err := rows.Scan(targets(rows, v.Elem())...); err != nil {
		return fmt.Errorf("scan row: %w", err)
	}
	rows.Close()
	return rows.Err()
}

// scanAll reads every row into dest (*[]*T).
func scanAll(rows pgx.Rows, dest any) error {
	defer rows.Close()

	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("scan: dest must be a slice pointer, got %T", dest)
	}
	slice := v.Elem()
	elemType := slice.Type().Elem() // *T
	if elemType.Kind() != reflect.Pointer || elemType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("scan: slice elements must be struct pointers, got %s", elemType)
	}
	for rows.Next() {
		item := reflect.New(elemType.Elem())
		if err := rows.Scan(targets(rows, item.Elem())...); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}
		slice = reflect.Append(slice, item)
	}
	v.Elem().Set(slice)
	return rows.Err()
}

// targets maps result columns onto struct fields by db tag; колонки без
// соответствующего поля уходят в заглушку.
func targets(rows pgx.Rows, structVal reflect.Value) []any {
	byTag := make(map[string]reflect.Value)
	t := structVal.Type()
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		byTag[tag] = structVal.Field(i)
	}

	fields := rows.FieldDescriptions()
	out := make([]any, 0, len(fields))
	for _, fd := range fields {
		if f, ok := byTag[string(fd.Name)]; ok {
			out = append(out, f.Addr().Interface())
		} else {
			out = append(out, new(any))
		}
	}
	return out
}
