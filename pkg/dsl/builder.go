package dsl

import (
	"fmt"

	"github.com/aretw0/tessera/pkg/catalog"
	"github.com/aretw0/tessera/pkg/record"
)

// Builder manages the declaration of a set of related record types.
// Records may extend each other by name regardless of the order they were added.
type Builder struct {
	records map[string]*RecordBuilder
	order   []string
}

// New creates a new declaration builder.
func New() *Builder {
	return &Builder{
		records: make(map[string]*RecordBuilder),
	}
}

// Add starts the declaration of a record type.
// If the record already exists, it returns the existing builder.
func (b *Builder) Add(name string) *RecordBuilder {
	if rb, ok := b.records[name]; ok {
		return rb
	}
	rb := newRecordBuilder(name)
	rb.builder = b
	b.records[name] = rb
	b.order = append(b.order, name)
	return rb
}

// Build declares every record and registers them in a new Catalog.
func (b *Builder) Build(opts ...catalog.Option) (*catalog.Catalog, error) {
	cat := catalog.New(opts...)
	if _, err := b.BuildInto(cat); err != nil {
		return nil, err
	}
	return cat, nil
}

// BuildInto declares every record and registers them in cat. Parents named
// with Extends are resolved among the builder's records first and then in
// cat. Nothing is registered if any declaration fails.
//
// The returned types are in the order they were added.
func (b *Builder) BuildInto(cat *catalog.Catalog) ([]*record.Type, error) {
	built := make(map[string]*record.Type, len(b.records))
	visiting := make(map[string]bool)

	var resolve func(name string) (*record.Type, error)
	resolve = func(name string) (*record.Type, error) {
		if t, ok := built[name]; ok {
			return t, nil
		}
		rb := b.records[name]
		if visiting[name] {
			return nil, &record.DeclarationError{Type: name, Reason: "inheritance cycle"}
		}
		visiting[name] = true
		defer delete(visiting, name)

		parent := rb.parent
		if parent == nil && rb.parentName != "" {
			switch {
			case b.records[rb.parentName] != nil:
				p, err := resolve(rb.parentName)
				if err != nil {
					return nil, err
				}
				parent = p
			case cat != nil:
				p, ok := cat.Lookup(rb.parentName)
				if !ok {
					return nil, &record.DeclarationError{Type: name, Reason: fmt.Sprintf("unknown parent %q", rb.parentName)}
				}
				parent = p
			default:
				return nil, &record.DeclarationError{Type: name, Reason: fmt.Sprintf("unknown parent %q", rb.parentName)}
			}
		}

		t, err := record.Define(name, parent, rb.fields()...)
		if err != nil {
			return nil, err
		}
		built[name] = t
		return t, nil
	}

	types := make([]*record.Type, 0, len(b.order))
	for _, name := range b.order {
		t, err := resolve(name)
		if err != nil {
			return nil, err
		}
		if cat != nil {
			if _, exists := cat.Lookup(name); exists {
				return nil, fmt.Errorf("%w: %s", catalog.ErrDuplicateType, name)
			}
		}
		types = append(types, t)
	}

	if cat != nil {
		for _, t := range types {
			if err := cat.Register(t); err != nil {
				return nil, err
			}
		}
	}
	return types, nil
}
