// Package observability provides the OpenTelemetry instruments used by the
// client: one span per call and request/redirect counters.
//
// Instruments consume providers; exporter setup belongs to the application.
// Nil providers fall back to the otel globals, which are no-ops until the
// application installs real ones:
//
//	inst, err := observability.NewInstruments(tp, mp)
//	ctx, call := inst.StartCall(ctx, http.MethodGet, url)
//	call.RecordSend(ctx, http.MethodGet, resp.StatusCode)
//	call.End(ctx, resp.StatusCode, nil)
package observability
