package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/sdk/metric"

	"github.com/crossline-labs/crossline-relayer/log"
)

const (
	meterName     = "github.com/crossline-labs/crossline-relayer"
	namespaceRoot = "relayer"
)

var (
	meterProvider *metric.MeterProvider
	meter         api.Meter = noop.Meter{}

	queryCounter        api.Int64Counter
	queryFailureCounter api.Int64Counter
)

// ExporterConfig selects where metrics are exported to.
type ExporterConfig interface {
	exporterType() string
}

// ExporterNull discards all metrics.
type ExporterNull struct{}

func (e ExporterNull) exporterType() string { return "null" }

// ExporterProm serves metrics over HTTP in the Prometheus exposition format.
type ExporterProm struct {
	Addr string
}

func (e ExporterProm) exporterType() string { return "prometheus" }

// InitializeMetrics sets up the meter provider and creates the query
// instruments. It must be called before any chain query is issued; until
// then the package records into a no-op meter.
func InitializeMetrics(exporterConf ExporterConfig) error {
	switch exporterConf := exporterConf.(type) {
	case ExporterNull:
		meterProvider = metric.NewMeterProvider()
	case ExporterProm:
		exporter, err := NewPrometheusExporter(exporterConf.Addr)
		if err != nil {
			return err
		}
		meterProvider = metric.NewMeterProvider(metric.WithReader(exporter))
	default:
		return fmt.Errorf("unexpected exporter config type: %T", exporterConf)
	}

	meter = meterProvider.Meter(meterName)

	var err error
	name := fmt.Sprintf("%s.queries_total", namespaceRoot)
	if queryCounter, err = meter.Int64Counter(
		name,
		api.WithUnit("1"),
		api.WithDescription("number of state queries issued against chains"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	name = fmt.Sprintf("%s.query_failures_total", namespaceRoot)
	if queryFailureCounter, err = meter.Int64Counter(
		name,
		api.WithUnit("1"),
		api.WithDescription("number of state queries that returned an error"),
	); err != nil {
		return fmt.Errorf("failed to create the instrument %s: %v", name, err)
	}

	return nil
}

// ShutdownMetrics flushes and stops the meter provider.
func ShutdownMetrics(ctx context.Context) error {
	if meterProvider == nil {
		return nil
	}
	if err := meterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown the MeterProvider: %v", err)
	}
	return nil
}

// NewPrometheusExporter starts the exposition endpoint at addr and returns
// a reader for the meter provider. A failing endpoint leaves the process
// running without exposition; the failure is logged, not fatal.
func NewPrometheusExporter(addr string) (*prometheus.Exporter, error) {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			log.GetLogger().WithModule("metrics").Error("prometheus exposition endpoint failed", err, "addr", addr)
		}
	}()

	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create the Prometheus Exporter: %v", err)
	}
	return exporter, nil
}

// CountQuery records one chain state query of the given kind.
func CountQuery(ctx context.Context, chainID, kind string, success bool) {
	attrs := api.WithAttributes(
		attribute.Key("chain_id").String(chainID),
		attribute.Key("kind").String(kind),
	)
	if queryCounter != nil {
		queryCounter.Add(ctx, 1, attrs)
	}
	if !success && queryFailureCounter != nil {
		queryFailureCounter.Add(ctx, 1, attrs)
	}
}
