package tessera

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/tessera/internal/logging"
	"github.com/aretw0/tessera/pkg/catalog"
	"github.com/aretw0/tessera/pkg/declfile"
	"github.com/aretw0/tessera/pkg/field"
	"github.com/aretw0/tessera/pkg/observability"
	"github.com/aretw0/tessera/pkg/record"
	"github.com/aretw0/tessera/pkg/render"
)

// Library is the high-level entry point for tessera.
// It ties a catalog of record types to a configured constructor and a
// declaration loader.
type Library struct {
	catalog     *catalog.Catalog
	constructor *record.Constructor
	loader      *declfile.Loader
	metrics     *observability.Metrics

	hooks      record.Hooks
	logger     *slog.Logger
	registerer prometheus.Registerer
	loaderOpts []declfile.Option
}

// Option defines a functional option for configuring the Library.
type Option func(*Library)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Library) {
		l.logger = logger
	}
}

// WithHooks registers construction hooks.
func WithHooks(hooks record.Hooks) Option {
	return func(l *Library) {
		l.hooks = l.hooks.Merge(hooks)
	}
}

// WithMetrics exports construction metrics through reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(l *Library) {
		l.registerer = reg
	}
}

// WithPredicate makes a named predicate available to declaration documents.
func WithPredicate(name string, p field.Predicate) Option {
	return func(l *Library) {
		l.loaderOpts = append(l.loaderOpts, declfile.WithPredicate(name, p))
	}
}

// WithCoercion makes a named coercion available to declaration documents.
func WithCoercion(name string, c field.Coercion) Option {
	return func(l *Library) {
		l.loaderOpts = append(l.loaderOpts, declfile.WithCoercion(name, c))
	}
}

// New initializes a Library.
func New(opts ...Option) (*Library, error) {
	lib := &Library{}
	for _, opt := range opts {
		opt(lib)
	}

	if lib.logger == nil {
		lib.logger = logging.NewNop()
	}

	if lib.registerer != nil {
		m, err := observability.NewMetrics(lib.registerer)
		if err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
		lib.metrics = m
		lib.hooks = lib.hooks.Merge(m.Hooks())
	}

	lib.constructor = record.NewConstructor(
		record.WithLogger(lib.logger),
		record.WithHooks(lib.hooks),
	)
	lib.catalog = catalog.New(catalog.WithConstructor(lib.constructor))
	lib.loader = declfile.NewLoader(append(lib.loaderOpts, declfile.WithLogger(lib.logger))...)

	return lib, nil
}

// Register adds record types declared in Go.
func (l *Library) Register(types ...*record.Type) error {
	for _, t := range types {
		if err := l.catalog.Register(t); err != nil {
			return err
		}
	}
	return nil
}

// Load declares the record types of a YAML document.
func (l *Library) Load(data []byte) ([]*record.Type, error) {
	return l.LoadReader(bytes.NewReader(data))
}

// LoadReader is Load for a stream.
func (l *Library) LoadReader(r io.Reader) ([]*record.Type, error) {
	types, err := l.loader.Load(r, l.catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load declarations: %w", err)
	}
	return types, nil
}

// Type returns a registered record type.
func (l *Library) Type(name string) (*record.Type, bool) {
	return l.catalog.Lookup(name)
}

// Types returns the registered type names, sorted.
func (l *Library) Types() []string {
	return l.catalog.Names()
}

// Construct validates raw against the named type.
func (l *Library) Construct(name string, raw map[string]any) (*record.Record, error) {
	return l.catalog.Construct(name, raw)
}

// NewBuilder returns a staged builder for the named type.
func (l *Library) NewBuilder(name string) (*record.Builder, error) {
	return l.catalog.NewBuilder(name)
}

// Catalog exposes the underlying catalog.
func (l *Library) Catalog() *catalog.Catalog {
	return l.catalog
}

// Metrics returns the metrics collectors, or nil without WithMetrics.
func (l *Library) Metrics() *observability.Metrics {
	return l.metrics
}

// Render formats a record for people to read.
func (l *Library) Render(r *record.Record) string {
	return render.Text(r)
}
