/*
Package observability exports record construction metrics to Prometheus.

Metrics plugs into a record.Constructor through its hooks:

	m, err := observability.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}
	ctor := record.NewConstructor(record.WithHooks(m.Hooks()))
*/
package observability
