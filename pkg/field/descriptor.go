package field

// Predicate reports whether a value is acceptable.
// Predicates are trusted to be free of side effects.
type Predicate func(value any) bool

// Coercion converts an accepted raw value into the value that gets stored.
type Coercion func(value any) (any, error)

// Descriptor is the immutable metadata of one field.
// The zero value has an empty label and accepts everything.
type Descriptor struct {
	label  string
	pre    Predicate
	post   Predicate
	coerce Coercion
}

// Option configures a Descriptor at creation time.
type Option func(*Descriptor)

// WithPrecondition sets the check run against the raw input value.
func WithPrecondition(p Predicate) Option {
	return func(d *Descriptor) {
		d.pre = p
	}
}

// WithPostcondition sets the check run against the stored value.
func WithPostcondition(p Predicate) Option {
	return func(d *Descriptor) {
		d.post = p
	}
}

// WithCoercion sets the transform applied after the precondition passed.
func WithCoercion(c Coercion) Option {
	return func(d *Descriptor) {
		d.coerce = c
	}
}

// New creates a Descriptor. Omitted or nil predicates accept any value.
func New(label string, opts ...Option) Descriptor {
	d := Descriptor{label: label}
	for _, opt := range opts {
		opt(&d)
	}
	if d.pre == nil {
		d.pre = Always
	}
	if d.post == nil {
		d.post = Always
	}
	return d
}

// Label returns the human-readable name used in error messages.
func (d Descriptor) Label() string { return d.label }

// Precondition returns the raw-value check. Never nil.
func (d Descriptor) Precondition() Predicate {
	if d.pre == nil {
		return Always
	}
	return d.pre
}

// Postcondition returns the stored-value check. Never nil.
func (d Descriptor) Postcondition() Predicate {
	if d.post == nil {
		return Always
	}
	return d.post
}

// Coercion returns the transform, or nil when values are stored as given.
func (d Descriptor) Coercion() Coercion { return d.coerce }

// CheckPre evaluates the precondition against a raw value.
func (d Descriptor) CheckPre(value any) bool { return d.Precondition()(value) }

// CheckPost evaluates the postcondition against a stored value.
func (d Descriptor) CheckPost(value any) bool { return d.Postcondition()(value) }

// Coerce applies the coercion if one is set, otherwise returns value unchanged.
func (d Descriptor) Coerce(value any) (any, error) {
	if d.coerce == nil {
		return value, nil
	}
	return d.coerce(value)
}
