package observability

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type Observability struct {
	meterProvider  *metric.MeterProvider
	meter          otelmetric.Meter
	surveyCounter  otelmetric.Int64Counter
	surveyDuration otelmetric.Float64Histogram
}

func New(serviceName string) *Observability {
	exporter, err := prometheus.New()
	if err != nil {
		log.Printf("Failed to create Prometheus exporter: %v", err)
		return &Observability{}
	}

	provider := metric.NewMeterProvider(metric.WithReader(exporter))
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	surveyCounter, _ := meter.Int64Counter(
		"surveys.processed",
		otelmetric.WithDescription("Number of surveys processed"),
	)

	surveyDuration, _ := meter.Float64Histogram(
		"surveys.duration",
		otelmetric.WithDescription("Survey processing duration"),
		otelmetric.WithUnit("ms"),
	)

	return &Observability{
		meterProvider:  provider,
		meter:          meter,
		surveyCounter:  surveyCounter,
		surveyDuration: surveyDuration,
	}
}

func (o *Observability) RecordSurveyProcessed(ctx context.Context, status string) {
	if o.surveyCounter != nil {
		o.surveyCounter.Add(ctx, 1, otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) RecordSurveyDuration(ctx context.Context, duration time.Duration, status string) {
	if o.surveyDuration != nil {
		o.surveyDuration.Record(ctx, float64(duration.Milliseconds()), otelmetric.WithAttributes(
			attribute.String("status", status),
		))
	}
}

func (o *Observability) Shutdown() {
	if o.meterProvider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		o.meterProvider.Shutdown(ctx)
	}
}
