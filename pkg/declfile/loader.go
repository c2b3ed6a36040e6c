package declfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/tessera/internal/logging"
	"github.com/aretw0/tessera/pkg/catalog"
	"github.com/aretw0/tessera/pkg/dsl"
	"github.com/aretw0/tessera/pkg/field"
	"github.com/aretw0/tessera/pkg/record"
)

// Loader turns declaration documents into record types.
type Loader struct {
	predicates map[string]field.Predicate
	coercions  map[string]field.Coercion
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithPredicate makes p available to documents as `custom: name`.
func WithPredicate(name string, p field.Predicate) Option {
	return func(l *Loader) {
		l.predicates[name] = p
	}
}

// WithCoercion makes c available to documents as `coerce: name`.
func WithCoercion(name string, c field.Coercion) Option {
	return func(l *Loader) {
		l.coercions[name] = c
	}
}

// WithLogger sets the logger used to report declared types.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// NewLoader creates a Loader with the built-in coercions int and float.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		predicates: make(map[string]field.Predicate),
		coercions: map[string]field.Coercion{
			"int":   field.ToInt,
			"float": field.ToFloat,
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.logger == nil {
		l.logger = logging.NewNop()
	}
	return l
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse declarations: %w", err)
	}
	return &doc, nil
}

// Load parses r and declares its records into cat.
// Parents may be declared earlier in the document, later in it, or already
// be registered in cat.
func (l *Loader) Load(r io.Reader, cat *catalog.Catalog) ([]*record.Type, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return l.Declare(doc, cat)
}

// LoadBytes is Load for an in-memory document.
func (l *Loader) LoadBytes(data []byte, cat *catalog.Catalog) ([]*record.Type, error) {
	return l.Load(bytes.NewReader(data), cat)
}

// Declare declares the records of doc into cat. Nothing is registered if
// any record fails.
func (l *Loader) Declare(doc *Document, cat *catalog.Catalog) ([]*record.Type, error) {
	b := dsl.New()
	declared := make(map[string]bool, len(doc.Records))

	for _, rs := range doc.Records {
		if rs.Name == "" {
			return nil, &record.DeclarationError{Reason: "record without a name"}
		}
		if declared[rs.Name] {
			return nil, &record.DeclarationError{Type: rs.Name, Reason: "declared more than once"}
		}
		declared[rs.Name] = true

		rb := b.Add(rs.Name)
		if rs.Extends != "" {
			rb.ExtendsNamed(rs.Extends)
		}

		seen := make(map[string]bool, len(rs.Fields))
		for _, fs := range rs.Fields {
			if seen[fs.Name] {
				return nil, &record.DeclarationError{Type: rs.Name, Field: fs.Name, Reason: "declared more than once"}
			}
			seen[fs.Name] = true

			fb := rb.Field(fs.Name, fs.Label)
			if err := l.configure(fb, fs); err != nil {
				return nil, fmt.Errorf("record %s field %s: %w", rs.Name, fs.Name, err)
			}
		}
	}

	types, err := b.BuildInto(cat)
	if err != nil {
		return nil, err
	}

	for _, t := range types {
		l.logger.Debug("record type declared", "type", t.Name(), "fields", t.FieldNames())
	}
	return types, nil
}

func (l *Loader) configure(fb *dsl.FieldBuilder, fs FieldSpec) error {
	if fs.Pre != nil {
		p, err := l.predicate(fs.Pre)
		if err != nil {
			return fmt.Errorf("pre: %w", err)
		}
		fb.Pre(p)
	}
	if fs.Post != nil {
		p, err := l.predicate(fs.Post)
		if err != nil {
			return fmt.Errorf("post: %w", err)
		}
		fb.Post(p)
	}
	if fs.Coerce != "" {
		c, ok := l.coercions[fs.Coerce]
		if !ok {
			return fmt.Errorf("unknown coercion %q", fs.Coerce)
		}
		fb.Coerce(c)
	}
	return nil
}

func (l *Loader) predicate(raw map[string]any) (field.Predicate, error) {
	var c Constraint
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &c,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, err
	}
	return l.compile(c)
}

func (l *Loader) compile(c Constraint) (field.Predicate, error) {
	var preds []field.Predicate

	if c.Required {
		preds = append(preds, field.Required)
	}

	switch c.Type {
	case "":
	case "string":
		preds = append(preds, field.IsString)
	case "int":
		preds = append(preds, field.IsInt)
	case "number", "float":
		preds = append(preds, field.IsNumber)
	case "bool":
		preds = append(preds, field.IsBool)
	default:
		return nil, fmt.Errorf("unsupported type: %s", c.Type)
	}

	if c.Min != nil {
		preds = append(preds, field.AtLeast(*c.Min))
	}
	if c.Max != nil {
		preds = append(preds, field.AtMost(*c.Max))
	}
	if len(c.OneOf) > 0 {
		preds = append(preds, field.OneOf(c.OneOf...))
	}
	if c.Pattern != "" {
		re, err := regexp.Compile(c.Pattern)
		if err != nil {
			return nil, fmt.Errorf("pattern: %w", err)
		}
		preds = append(preds, field.MatchesRegexp(re))
	}
	if c.NonEmpty {
		preds = append(preds, field.NonEmpty)
	}
	for _, name := range c.Custom {
		p, ok := l.predicates[name]
		if !ok {
			return nil, fmt.Errorf("unknown predicate %q", name)
		}
		preds = append(preds, p)
	}

	p := field.All(preds...)
	if c.Optional {
		p = field.Optional(p)
	}
	return p, nil
}

// Load declares the records read from r into cat with a default Loader.
func Load(r io.Reader, cat *catalog.Catalog) ([]*record.Type, error) {
	return NewLoader().Load(r, cat)
}
