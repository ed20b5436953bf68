package telemetry

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation name of every span the site starts.
const TracerName = "github.com/glamorous-css/website"

// Tracer resolves the site tracer from the global provider. Configure the
// provider with otel.SetTracerProvider before serving; without one the
// spans are no-ops.
func Tracer() trace.Tracer {
	return otel.Tracer(TracerName)
}

// Tracing starts a server span for each request. The span is named after
// the method and path and is available to handlers through the request
// context.
func Tracing(next http.Handler) http.Handler {
	tracer := Tracer()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(),
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.path", r.URL.Path),
			),
		)
		defer span.End()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StartEvent starts a span for one live nav event.
func StartEvent(ctx context.Context, action, path string) (context.Context, trace.Span) {
	return Tracer().Start(ctx, "nav."+action,
		trace.WithAttributes(
			attribute.String("nav.action", action),
			attribute.String("nav.path", path),
		),
	)
}

// End records err on span and ends it.
func End(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
