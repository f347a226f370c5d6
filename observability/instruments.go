package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

const instrumentationName = "github.com/kbukum/xapi"

// Span and instrument names.
const (
	SpanRequest     = "xapi.request"
	EventRedirect   = "redirect"
	MetricRequests  = "xapi.client.requests"
	MetricRedirects = "xapi.client.redirects"
	MetricDuration  = "xapi.client.duration"
)

// Attribute keys.
const (
	AttrMethod     = "http.request.method"
	AttrStatusCode = "http.response.status_code"
	AttrURL        = "url.full"
	AttrLocation   = "http.response.header.location"
	AttrHops       = "xapi.redirect.count"
	AttrHop        = "xapi.redirect.hop"
)

// Instruments holds the tracer and metric instruments for client calls.
type Instruments struct {
	tracer    trace.Tracer
	requests  metric.Int64Counter
	redirects metric.Int64Counter
	duration  metric.Float64Histogram
}

// NewInstruments creates instruments from the given providers. A nil
// provider falls back to the corresponding otel global.
func NewInstruments(tp trace.TracerProvider, mp metric.MeterProvider) (*Instruments, error) {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	if mp == nil {
		mp = otel.GetMeterProvider()
	}
	meter := mp.Meter(instrumentationName)

	requests, err := meter.Int64Counter(MetricRequests,
		metric.WithDescription("HTTP requests sent, one per hop"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRequests, err)
	}

	redirects, err := meter.Int64Counter(MetricRedirects,
		metric.WithDescription("Redirects followed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRedirects, err)
	}

	duration, err := meter.Float64Histogram(MetricDuration,
		metric.WithDescription("Duration of client calls including redirects"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricDuration, err)
	}

	return &Instruments{
		tracer:    tp.Tracer(instrumentationName),
		requests:  requests,
		redirects: redirects,
		duration:  duration,
	}, nil
}

// NewNopInstruments returns instruments that record nothing.
func NewNopInstruments() *Instruments {
	inst, _ := NewInstruments(tracenoop.NewTracerProvider(), metricnoop.NewMeterProvider())
	return inst
}

// Call tracks one client call across all of its hops.
type Call struct {
	inst   *Instruments
	span   trace.Span
	method string
	start  time.Time
	hops   int
}

// StartCall opens the span for a call. The returned context carries it.
func (i *Instruments) StartCall(ctx context.Context, method, url string) (context.Context, *Call) {
	ctx, span := i.tracer.Start(ctx, SpanRequest,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String(AttrMethod, method),
			attribute.String(AttrURL, url),
		),
	)
	return ctx, &Call{inst: i, span: span, method: method, start: time.Now()}
}

// RecordSend counts one request that produced a response.
func (c *Call) RecordSend(ctx context.Context, method string, statusCode int) {
	c.inst.requests.Add(ctx, 1, metric.WithAttributes(
		attribute.String(AttrMethod, method),
		attribute.Int(AttrStatusCode, statusCode),
	))
}

// RecordRedirect counts a followed redirect and adds a span event.
func (c *Call) RecordRedirect(ctx context.Context, statusCode int, location string) {
	c.hops++
	c.inst.redirects.Add(ctx, 1, metric.WithAttributes(
		attribute.Int(AttrStatusCode, statusCode),
	))
	c.span.AddEvent(EventRedirect, trace.WithAttributes(
		attribute.Int(AttrStatusCode, statusCode),
		attribute.String(AttrLocation, location),
		attribute.Int(AttrHop, c.hops),
	))
}

// End closes the span. statusCode is the terminal status, or 0 when no
// response was produced.
func (c *Call) End(ctx context.Context, statusCode int, err error) {
	attrs := []attribute.KeyValue{attribute.Int(AttrHops, c.hops)}
	if statusCode > 0 {
		attrs = append(attrs, attribute.Int(AttrStatusCode, statusCode))
	}
	c.span.SetAttributes(attrs...)
	if err != nil {
		c.span.RecordError(err)
		c.span.SetStatus(codes.Error, err.Error())
	}
	c.span.End()

	c.inst.duration.Record(ctx, time.Since(c.start).Seconds(), metric.WithAttributes(
		attribute.String(AttrMethod, c.method),
	))
}
