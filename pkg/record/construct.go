package record

import (
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/aretw0/tessera/internal/logging"
	"github.com/aretw0/tessera/pkg/field"
)

// Constructor runs validated construction for any record type.
// A Constructor holds no per-call state and is safe for concurrent use.
type Constructor struct {
	hooks  Hooks
	logger *slog.Logger
}

// ConstructorOption configures a Constructor.
type ConstructorOption func(*Constructor)

// WithHooks registers callbacks invoked after every construction attempt.
func WithHooks(h Hooks) ConstructorOption {
	return func(c *Constructor) {
		c.hooks = c.hooks.Merge(h)
	}
}

// WithLogger sets the logger used for construction diagnostics.
func WithLogger(logger *slog.Logger) ConstructorOption {
	return func(c *Constructor) {
		c.logger = logger
	}
}

// NewConstructor creates a Constructor. By default it logs nothing.
func NewConstructor(opts ...ConstructorOption) *Constructor {
	c := &Constructor{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logging.NewNop()
	}
	return c
}

var defaultConstructor = NewConstructor()

// Construct validates raw against t with the default Constructor.
func Construct(t *Type, raw map[string]any) (*Record, error) {
	return defaultConstructor.Construct(t, raw)
}

// New validates raw and returns an instance of t.
func (t *Type) New(raw map[string]any) (*Record, error) {
	return defaultConstructor.Construct(t, raw)
}

// Construct validates raw against the effective fields of t and returns a
// new immutable Record. On failure no record is returned.
//
// Supplied names outside the effective field set are rejected first. Fields
// are then checked one at a time in registry order and the first rejected
// value stops construction.
func (c *Constructor) Construct(t *Type, raw map[string]any) (*Record, error) {
	if t == nil {
		return nil, errors.New("construct: nil record type")
	}

	start := time.Now()
	rec, err := c.construct(t, raw)
	c.observe(t, err, time.Since(start))
	return rec, err
}

func (c *Constructor) construct(t *Type, raw map[string]any) (*Record, error) {
	fields, index := t.effective()

	var unknown []string
	for name := range raw {
		if _, ok := index[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, &UnknownFieldError{Type: t.name, Names: unknown}
	}

	values := make(map[string]any, len(fields))
	for _, f := range fields {
		d := f.Descriptor

		v, ok := raw[f.Name]
		if !ok {
			v = field.Absent
		}

		if !d.CheckPre(v) {
			return nil, invalid(t, f, StagePrecondition, v, nil)
		}

		stored := v
		if !field.IsAbsent(v) {
			coerced, err := d.Coerce(v)
			if err != nil {
				return nil, invalid(t, f, StageCoercion, v, err)
			}
			stored = coerced
		}
		values[f.Name] = stored

		if !d.CheckPost(stored) {
			return nil, invalid(t, f, StagePostcondition, stored, nil)
		}
	}

	return &Record{typ: t, ctor: c, values: values}, nil
}

func invalid(t *Type, f Field, stage Stage, value any, err error) *ValidationError {
	return &ValidationError{
		Type:  t.name,
		Field: f.Name,
		Label: f.Descriptor.Label(),
		Stage: stage,
		Value: value,
		Err:   err,
	}
}

func (c *Constructor) observe(t *Type, err error, d time.Duration) {
	event := ConstructEvent{Type: t.name, Err: err, Duration: d}

	var verr *ValidationError
	if errors.As(err, &verr) {
		event.Field = verr.Field
		event.Stage = verr.Stage
	}

	if err != nil {
		c.logger.Debug("record construction failed", "type", t.name, "field", event.Field, "error", err)
	} else {
		c.logger.Debug("record constructed", "type", t.name, "duration", d)
	}

	if c.hooks.OnConstruct != nil {
		c.hooks.OnConstruct(event)
	}
}
