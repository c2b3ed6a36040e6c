package record

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/tessera/pkg/field"
)

// Record is a validated instance of a Type.
//
// A Record exposes no way to change its values. Values and Decode hand out
// copies; With builds a new Record. Values are stored as supplied, so a caller
// that keeps a reference to a mutable value (a slice or map) can still change
// what it points to.
type Record struct {
	typ    *Type
	ctor   *Constructor
	values map[string]any
}

// Type returns the record's type.
func (r *Record) Type() *Type { return r.typ }

// Names returns the field names in registry order.
func (r *Record) Names() []string {
	if r.typ == nil {
		return nil
	}
	return r.typ.FieldNames()
}

// Len returns the number of fields.
func (r *Record) Len() int { return len(r.values) }

// Get returns the stored value of a field. Fields that passed construction
// without a supplied value hold field.Absent.
func (r *Record) Get(name string) (any, error) {
	v, ok := r.values[name]
	if !ok {
		return nil, &UnknownFieldError{Type: r.typeName(), Names: []string{name}}
	}
	return v, nil
}

// Lookup returns the stored value of a field and whether the field exists.
func (r *Record) Lookup(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Values returns a copy of the stored values.
func (r *Record) Values() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Decode copies the record into out, which must be a pointer to a struct or
// map. Struct fields are matched by their mapstructure tag or, failing that,
// case-insensitively by name. Absent fields are left untouched.
func (r *Record) Decode(out any) error {
	input := make(map[string]any, len(r.values))
	for k, v := range r.values {
		if field.IsAbsent(v) {
			continue
		}
		input[k] = v
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("decode %s: %w", r.typeName(), err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("decode %s: %w", r.typeName(), err)
	}
	return nil
}

// With validates a new Record of the same type holding r's values overlaid
// with changes. r itself is not modified.
func (r *Record) With(changes map[string]any) (*Record, error) {
	if r.typ == nil {
		return nil, fmt.Errorf("with: record has no type")
	}
	merged := r.Values()
	for k, v := range changes {
		merged[k] = v
	}
	ctor := r.ctor
	if ctor == nil {
		ctor = defaultConstructor
	}
	return ctor.Construct(r.typ, merged)
}

// Equal reports whether both records share a type and hold deeply equal values.
func (r *Record) Equal(other *Record) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.typ == other.typ && reflect.DeepEqual(r.values, other.values)
}

func (r *Record) typeName() string {
	if r.typ == nil {
		return ""
	}
	return r.typ.name
}
