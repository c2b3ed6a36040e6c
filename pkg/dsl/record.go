package dsl

import (
	"github.com/aretw0/tessera/pkg/field"
	"github.com/aretw0/tessera/pkg/record"
)

// RecordBuilder provides a fluent API for declaring one record type.
type RecordBuilder struct {
	name       string
	parent     *record.Type
	parentName string
	order      []*FieldBuilder
	index      map[string]*FieldBuilder
	builder    *Builder
}

// Record starts a standalone record declaration.
func Record(name string) *RecordBuilder {
	return newRecordBuilder(name)
}

func newRecordBuilder(name string) *RecordBuilder {
	return &RecordBuilder{
		name:  name,
		index: make(map[string]*FieldBuilder),
	}
}

// Extends sets an already declared parent type.
func (r *RecordBuilder) Extends(parent *record.Type) *RecordBuilder {
	r.parent = parent
	r.parentName = ""
	return r
}

// ExtendsNamed sets the parent by name. The name is resolved when the
// enclosing Builder builds.
func (r *RecordBuilder) ExtendsNamed(parent string) *RecordBuilder {
	r.parent = nil
	r.parentName = parent
	return r
}

// Field declares a field, or reopens it if the name was already declared on
// this record, in which case the label is replaced.
func (r *RecordBuilder) Field(name, label string) *FieldBuilder {
	if fb, ok := r.index[name]; ok {
		fb.label = label
		return fb
	}
	fb := &FieldBuilder{name: name, label: label, record: r}
	r.index[name] = fb
	r.order = append(r.order, fb)
	return fb
}

// Build declares the record type.
// A parent given by name can only be resolved through Builder.Build.
func (r *RecordBuilder) Build() (*record.Type, error) {
	if r.parent == nil && r.parentName != "" {
		return nil, &record.DeclarationError{Type: r.name, Reason: "parent " + r.parentName + " needs a Builder to resolve"}
	}
	return record.Define(r.name, r.parent, r.fields()...)
}

// MustBuild is like Build but panics on error.
func (r *RecordBuilder) MustBuild() *record.Type {
	t, err := r.Build()
	if err != nil {
		panic(err)
	}
	return t
}

func (r *RecordBuilder) fields() []record.Field {
	fields := make([]record.Field, len(r.order))
	for i, fb := range r.order {
		fields[i] = record.Field{Name: fb.name, Descriptor: fb.Descriptor()}
	}
	return fields
}

// FieldBuilder provides a fluent API for configuring a field.
type FieldBuilder struct {
	name   string
	label  string
	pre    []field.Predicate
	post   []field.Predicate
	coerce field.Coercion
	record *RecordBuilder
}

// Pre adds a precondition. All preconditions must hold.
func (f *FieldBuilder) Pre(p field.Predicate) *FieldBuilder {
	f.pre = append(f.pre, p)
	return f
}

// Post adds a postcondition. All postconditions must hold.
func (f *FieldBuilder) Post(p field.Predicate) *FieldBuilder {
	f.post = append(f.post, p)
	return f
}

// Required rejects absent and nil values.
func (f *FieldBuilder) Required() *FieldBuilder {
	return f.Pre(field.Required)
}

// Coerce sets the transform applied before the value is stored.
func (f *FieldBuilder) Coerce(c field.Coercion) *FieldBuilder {
	f.coerce = c
	return f
}

// Field continues with the next field of the same record.
func (f *FieldBuilder) Field(name, label string) *FieldBuilder {
	return f.record.Field(name, label)
}

// Record returns the enclosing record builder.
func (f *FieldBuilder) Record() *RecordBuilder {
	return f.record
}

// Build declares the enclosing record type.
func (f *FieldBuilder) Build() (*record.Type, error) {
	return f.record.Build()
}

// Descriptor returns the field descriptor configured so far.
func (f *FieldBuilder) Descriptor() field.Descriptor {
	var opts []field.Option
	if p := combine(f.pre); p != nil {
		opts = append(opts, field.WithPrecondition(p))
	}
	if p := combine(f.post); p != nil {
		opts = append(opts, field.WithPostcondition(p))
	}
	if f.coerce != nil {
		opts = append(opts, field.WithCoercion(f.coerce))
	}
	return field.New(f.label, opts...)
}

func combine(preds []field.Predicate) field.Predicate {
	switch len(preds) {
	case 0:
		return nil
	case 1:
		return preds[0]
	}
	return field.All(preds...)
}
