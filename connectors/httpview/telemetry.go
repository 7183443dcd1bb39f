package httpview

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// WithTelemetry traces every request as "<name> <method> <path>".
func WithTelemetry(h http.Handler, name string) http.Handler {
	return otelhttp.NewHandler(h, name, otelhttp.WithSpanNameFormatter(
		func(operation string, r *http.Request) string {
			return operation + " " + r.Method + " " + r.URL.Path
		},
	))
}
