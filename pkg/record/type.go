package record

import (
	"regexp"
	"strings"
	"sync"

	"github.com/aretw0/tessera/pkg/field"
)

// ReservedPrefix marks field names kept for internal bookkeeping.
const ReservedPrefix = "__"

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Field pairs a field name with its descriptor.
type Field struct {
	Name       string
	Descriptor field.Descriptor
}

// F is shorthand for a Field declaration.
func F(name, label string, opts ...field.Option) Field {
	return Field{Name: name, Descriptor: field.New(label, opts...)}
}

// Type is a declared record type: a name, an optional parent and the fields
// the type itself introduces or overrides.
//
// A Type never changes after Define returns. Its effective field set is
// computed on first use and cached.
type Type struct {
	name   string
	parent *Type
	own    []Field

	once   sync.Once
	fields []Field
	index  map[string]int
}

// Define declares a record type. parent may be nil for a root type.
func Define(name string, parent *Type, fields ...Field) (*Type, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &DeclarationError{Type: name, Reason: "type name is empty"}
	}

	seen := make(map[string]struct{}, len(fields))
	own := make([]Field, 0, len(fields))
	for _, f := range fields {
		if err := checkFieldName(name, f.Name); err != nil {
			return nil, err
		}
		if _, dup := seen[f.Name]; dup {
			return nil, &DeclarationError{Type: name, Field: f.Name, Reason: "declared more than once"}
		}
		seen[f.Name] = struct{}{}
		own = append(own, f)
	}

	return &Type{name: name, parent: parent, own: own}, nil
}

// MustDefine is like Define but panics on a malformed declaration.
// It is meant for package-level type declarations.
func MustDefine(name string, parent *Type, fields ...Field) *Type {
	t, err := Define(name, parent, fields...)
	if err != nil {
		panic(err)
	}
	return t
}

func checkFieldName(typeName, fieldName string) error {
	switch {
	case fieldName == "":
		return &DeclarationError{Type: typeName, Field: fieldName, Reason: "field name is empty"}
	case strings.HasPrefix(fieldName, ReservedPrefix):
		return &DeclarationError{Type: typeName, Field: fieldName, Reason: "prefix " + ReservedPrefix + " is reserved"}
	case !identifier.MatchString(fieldName):
		return &DeclarationError{Type: typeName, Field: fieldName, Reason: "field name is not an identifier"}
	}
	return nil
}

// Name returns the type name.
func (t *Type) Name() string { return t.name }

// Parent returns the parent type, or nil for a root type.
func (t *Type) Parent() *Type { return t.parent }

// Ancestors returns the inheritance chain from the root type down to t itself.
func (t *Type) Ancestors() []*Type {
	var chain []*Type
	for cur := t; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// IsA reports whether other is t or one of its ancestors.
func (t *Type) IsA(other *Type) bool {
	for cur := t; cur != nil; cur = cur.parent {
		if cur == other {
			return true
		}
	}
	return false
}

// Own returns the fields declared by t itself, in declaration order.
func (t *Type) Own() []Field {
	out := make([]Field, len(t.own))
	copy(out, t.own)
	return out
}

// Fields returns the effective field set in registry order.
//
// Names keep the position of their first introduction in the ancestor chain;
// the descriptor is the one from the most derived declaration. Names new to a
// type come after everything inherited.
func (t *Type) Fields() []Field {
	fields, _ := t.effective()
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// FieldNames returns the effective field names in registry order.
func (t *Type) FieldNames() []string {
	fields, _ := t.effective()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// Field returns the effective descriptor for name.
func (t *Type) Field(name string) (field.Descriptor, bool) {
	fields, index := t.effective()
	i, ok := index[name]
	if !ok {
		return field.Descriptor{}, false
	}
	return fields[i].Descriptor, true
}

// Has reports whether name is in the effective field set.
func (t *Type) Has(name string) bool {
	_, index := t.effective()
	_, ok := index[name]
	return ok
}

// Len returns the number of effective fields.
func (t *Type) Len() int {
	fields, _ := t.effective()
	return len(fields)
}

func (t *Type) effective() ([]Field, map[string]int) {
	t.once.Do(func() {
		var fields []Field
		index := make(map[string]int)
		for _, level := range t.Ancestors() {
			for _, f := range level.own {
				if i, ok := index[f.Name]; ok {
					fields[i].Descriptor = f.Descriptor
					continue
				}
				index[f.Name] = len(fields)
				fields = append(fields, f)
			}
		}
		t.fields = fields
		t.index = index
	})
	return t.fields, t.index
}
