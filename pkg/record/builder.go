package record

// Builder stages field values for a record and hands them over to the
// Record produced by Build. After a successful Build the builder is sealed
// and every further change fails with *ImmutableRecordError.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	typ    *Type
	ctor   *Constructor
	staged map[string]any
	sealed bool
}

// NewBuilder returns a builder for t using the default Constructor.
func NewBuilder(t *Type) *Builder {
	return defaultConstructor.NewBuilder(t)
}

// NewBuilder returns a builder for t that constructs through c.
func (c *Constructor) NewBuilder(t *Type) *Builder {
	return &Builder{typ: t, ctor: c, staged: make(map[string]any)}
}

// Set stages a value. Names outside the effective field set are rejected.
func (b *Builder) Set(name string, value any) error {
	if b.sealed {
		return b.immutable("set", name)
	}
	if !b.typ.Has(name) {
		return &UnknownFieldError{Type: b.typ.name, Names: []string{name}}
	}
	b.staged[name] = value
	return nil
}

// Unset removes a staged value, so the field is constructed as absent.
func (b *Builder) Unset(name string) error {
	if b.sealed {
		return b.immutable("unset", name)
	}
	delete(b.staged, name)
	return nil
}

// Update stages several values at once. Nothing is staged if any name is
// unknown.
func (b *Builder) Update(values map[string]any) error {
	if b.sealed {
		return b.immutable("update", "")
	}
	for name := range values {
		if !b.typ.Has(name) {
			return &UnknownFieldError{Type: b.typ.name, Names: []string{name}}
		}
	}
	for name, v := range values {
		b.staged[name] = v
	}
	return nil
}

// Build validates the staged values. On success the builder is sealed and
// the staged values belong to the returned Record. On failure the builder
// stays open so values can be corrected.
func (b *Builder) Build() (*Record, error) {
	if b.sealed {
		return nil, b.immutable("build", "")
	}
	rec, err := b.ctor.Construct(b.typ, b.staged)
	if err != nil {
		return nil, err
	}
	b.sealed = true
	b.staged = nil
	return rec, nil
}

// Sealed reports whether Build has succeeded.
func (b *Builder) Sealed() bool { return b.sealed }

func (b *Builder) immutable(op, name string) error {
	return &ImmutableRecordError{Type: b.typ.name, Field: name, Op: op}
}
