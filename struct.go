package cove

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

///////////////////////////////////////////////////////////////////////////////
// Struct Loading
///////////////////////////////////////////////////////////////////////////////

// Tag names and modifiers recognized by Load.
const (
	LoadTagName         = "cove"
	DefaultTagName      = "default"
	OptionalTagModifier = "optional"
	SecretTagModifier   = "secret"
)

// Base error types for struct loading.
var (
	ErrNotStructPointer   = errors.New("destination must be a non-nil pointer to a struct")
	ErrEmptyTagName       = errors.New("key name cannot be empty in cove tag")
	ErrUnknownTagModifier = errors.New("unknown modifier in cove tag")
	ErrUnsupportedField   = errors.New("unsupported field type")
)

// fieldTag is the parsed form of a single cove tag.
type fieldTag struct {
	Name     string // Key to read from the source
	Optional bool   // Absent key leaves the field at its zero value
	Secret   bool   // Lookup envelope is marked sensitive
}

// Load populates dest, a pointer to a struct, from src. Each exported field
// carrying a `cove:"NAME"` tag is read by name and coerced to the field's
// type through the same built-in coercions used in hand-written pipelines.
//
// Fields are required by default with Must semantics: an absent key, or one
// set to the empty string, fails the load unless the field carries a
// `default:"value"` tag or the `optional` modifier. The `secret` modifier
// marks the lookup envelope sensitive. The first failing field aborts the
// whole load; partially written fields are not rolled back.
//
// Supported field types: string, bool, all int/uint widths, float32/64,
// time.Duration (AsDuration token format), time.Time (AsISODate round-trip),
// uuid.UUID, []byte, and any type implementing encoding.TextUnmarshaler.
func Load(src Reader, dest any) error {
	v := reflect.ValueOf(dest)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return ErrNotStructPointer
	}
	elem := v.Elem()
	if elem.Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	structType := elem.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		rawTag, ok := field.Tag.Lookup(LoadTagName)
		if !ok || rawTag == "-" {
			continue
		}

		tag, err := parseFieldTag(rawTag)
		if err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}

		target := elem.Field(i)
		if !target.CanSet() {
			continue
		}

		in := src.Read(tag.Name)
		if tag.Secret {
			in, _ = Secret(in)
		}

		s, ok := defined(in.Val)
		if !ok || s == "" {
			if def, ok := field.Tag.Lookup(DefaultTagName); ok {
				s = def
			} else if tag.Optional {
				continue
			} else {
				return coerceErr(in, ErrNotDefined)
			}
		}

		if err := setFieldValue(target, derive(in, s)); err != nil {
			return fmt.Errorf("field %s: %w", field.Name, err)
		}
	}

	return nil
}

// parseFieldTag splits a cove tag into the key name and its modifiers.
func parseFieldTag(raw string) (fieldTag, error) {
	parts := strings.Split(raw, ",")

	tag := fieldTag{Name: strings.TrimSpace(parts[0])}
	if tag.Name == "" {
		return fieldTag{}, ErrEmptyTagName
	}

	for _, part := range parts[1:] {
		switch strings.TrimSpace(part) {
		case OptionalTagModifier:
			tag.Optional = true
		case SecretTagModifier:
			tag.Secret = true
		default:
			return fieldTag{}, fmt.Errorf("%w: %q", ErrUnknownTagModifier, part)
		}
	}

	return tag, nil
}

// reflect.Type constants for the explicitly handled struct field types.
var (
	durationType = reflect.TypeOf(time.Duration(0))
	timeType     = reflect.TypeOf(time.Time{})
	uuidType     = reflect.TypeOf(uuid.UUID{})
)

// setFieldValue coerces the envelope's string value into the field. Types
// with a built-in coercion go through it so that struct loading and
// hand-written pipelines accept exactly the same inputs.
func setFieldValue(field reflect.Value, in Value[string]) error {
	switch field.Type() {
	case durationType:
		out, err := AsDuration[string](0)(in)
		if err != nil {
			return err
		}
		field.SetInt(int64(out.Val))
		return nil
	case timeType:
		out, err := AsISODate(in)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(out.Val))
		return nil
	case uuidType:
		out, err := AsUUID(in)
		if err != nil {
			return err
		}
		field.Set(reflect.ValueOf(out.Val))
		return nil
	}

	// Custom types get a chance to unmarshal themselves before the
	// kind-based fallback.
	if field.CanAddr() {
		if unmarshaler, ok := field.Addr().Interface().(encoding.TextUnmarshaler); ok {
			return unmarshaler.UnmarshalText([]byte(in.Val))
		}
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(in.Val)
	case reflect.Bool:
		out, err := AsBool[string](false)(in)
		if err != nil {
			return err
		}
		field.SetBool(out.Val)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(in.Val, 10, field.Type().Bits())
		if err != nil {
			return coerceErr(in, ErrNotNumber)
		}
		field.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(in.Val, 10, field.Type().Bits())
		if err != nil {
			return coerceErr(in, ErrNotNumber)
		}
		field.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(in.Val, field.Type().Bits())
		if err != nil {
			return coerceErr(in, ErrNotNumber)
		}
		field.SetFloat(f)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.Uint8 {
			return fmt.Errorf("%w: %s", ErrUnsupportedField, field.Type())
		}
		field.SetBytes([]byte(in.Val))
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedField, field.Type())
	}

	return nil
}
