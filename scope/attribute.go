package scope

import (
	"log/slog"
	"reflect"
)

// AttributeContext adapts an object's members for dynamic name resolution.
//
// Exported struct fields are readable and, when the target was given as a
// pointer, writable and deletable (Delete zeroes the field, the closest
// analog to removing a member from a fixed-layout struct). Methods in the
// target's method set are readable as bound callables but are frozen:
// attempting to Set or Delete one fails [ErrFrozenBinding], never a plain
// [ErrNameNotFound].
type AttributeContext struct {
	target reflect.Value // the value as given, used for method lookup
	strct  reflect.Value // dereferenced struct value, used for field lookup
}

// NewAttributeContext creates an AttributeContext over the given target.
// The target is borrowed for the context's lifetime. Pass a pointer to a
// struct to allow mutation; a non-pointer target supports reads only.
func NewAttributeContext(target any) *AttributeContext {
	v := reflect.ValueOf(target)

	s := v
	for s.Kind() == reflect.Pointer && !s.IsNil() {
		s = s.Elem()
	}

	return &AttributeContext{
		target: v,
		strct:  s,
	}
}

// typeName returns the name of the wrapped object's underlying type for
// failure diagnostics.
func (c *AttributeContext) typeName() string {
	if !c.target.IsValid() {
		return "<nil>"
	}

	t := c.target.Type()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.String()
}

// field returns the exported field named key, or an invalid value.
func (c *AttributeContext) field(key string) reflect.Value {
	if !c.strct.IsValid() || c.strct.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	sf, ok := c.strct.Type().FieldByName(key)
	if !ok || !sf.IsExported() {
		return reflect.Value{}
	}

	return c.strct.FieldByIndex(sf.Index)
}

// method returns the method named key bound to the target, or an invalid
// value. Looking up through the original (possibly pointer) value keeps
// pointer-receiver methods visible.
func (c *AttributeContext) method(key string) reflect.Value {
	if !c.target.IsValid() {
		return reflect.Value{}
	}

	return c.target.MethodByName(key)
}

// Get reads the member named key off the target: an exported field's value,
// or a method bound to the target.
func (c *AttributeContext) Get(key string) (any, error) {
	if field := c.field(key); field.IsValid() {
		return field.Interface(), nil
	}

	if method := c.method(key); method.IsValid() {
		return method.Interface(), nil
	}

	return nil, nameNotFound(key, "object of type "+c.typeName())
}

// Set overwrites the exported field named key with value.
// Methods cannot be overwritten and fail [ErrFrozenBinding]. Absent members
// fail [ErrNameNotFound].
func (c *AttributeContext) Set(key string, value any) error {
	field := c.field(key)
	if !field.IsValid() {
		if c.method(key).IsValid() {
			return frozenBinding(c.typeName(), key)
		}

		return nameNotFound(key, "object of type "+c.typeName())
	}

	if !field.CanSet() {
		return ErrUnaddressableTarget.With(
			slog.String("type", c.typeName()),
			slog.String("field", key),
		)
	}

	if value == nil {
		switch field.Kind() {
		case reflect.Pointer, reflect.Interface, reflect.Map,
			reflect.Slice, reflect.Chan, reflect.Func:
			field.SetZero()

			return nil
		default:
			return ErrInvalidValueType.With(
				slog.String("field", key),
				slog.String("want", field.Type().String()),
				slog.String("got", "nil"),
			)
		}
	}

	v := reflect.ValueOf(value)

	switch {
	case v.Type().AssignableTo(field.Type()):
		field.Set(v)
	case convertible(v.Type(), field.Type()):
		field.Set(v.Convert(field.Type()))
	default:
		return ErrInvalidValueType.With(
			slog.String("field", key),
			slog.String("want", field.Type().String()),
			slog.String("got", v.Type().String()),
		)
	}

	return nil
}

// convertible reports whether from may be converted to to for assignment.
// Numeric-to-string conversions are excluded: Go would interpret the number
// as a rune, which is never what a configuration author means.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}

	if to.Kind() == reflect.String {
		switch from.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
			reflect.Int64, reflect.Uint, reflect.Uint8, reflect.Uint16,
			reflect.Uint32, reflect.Uint64, reflect.Float32, reflect.Float64:
			return false
		}
	}

	return true
}

// Delete clears the exported field named key by zeroing it.
// Struct members cannot be removed from a Go value, so a zeroed field is the
// observable equivalent. Methods fail [ErrFrozenBinding]; absent members
// fail [ErrNameNotFound].
func (c *AttributeContext) Delete(key string) error {
	field := c.field(key)
	if !field.IsValid() {
		if c.method(key).IsValid() {
			return frozenBinding(c.typeName(), key)
		}

		return nameNotFound(key, "object of type "+c.typeName())
	}

	if !field.CanSet() {
		return ErrUnaddressableTarget.With(
			slog.String("type", c.typeName()),
			slog.String("field", key),
		)
	}

	field.SetZero()

	return nil
}

// Keys returns the names of the target's exported fields in declaration
// order, followed by its method names.
func (c *AttributeContext) Keys() []string {
	var keys []string

	if c.strct.IsValid() && c.strct.Kind() == reflect.Struct {
		t := c.strct.Type()
		for i := range t.NumField() {
			if sf := t.Field(i); sf.IsExported() {
				keys = append(keys, sf.Name)
			}
		}
	}

	if c.target.IsValid() {
		t := c.target.Type()
		for i := range t.NumMethod() {
			keys = append(keys, t.Method(i).Name)
		}
	}

	return keys
}
