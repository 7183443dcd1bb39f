package main

import (
	"net/http"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/sdk/trace"

	"github.com/weegigs/wee-counter-go/connectors/httpview"
	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/support"
	"github.com/weegigs/wee-counter-go/view"
)

type Server struct {
	Address string
	Handler http.Handler
	Log     *zerolog.Logger
}

func InitialValue(config support.Config) view.InitialValue {
	return view.InitialValue(config.InitialValue)
}

func Sessions(initial view.InitialValue, logger *zerolog.Logger) *view.Sessions {
	return view.NewSessions(initial, view.WithLogger(logger))
}

// Handler depends on the tracer provider so that it is installed before the
// first request is traced.
func Handler(sessions *view.Sessions, dispatcher *counter.Dispatcher, logger *zerolog.Logger, _ *trace.TracerProvider) http.Handler {
	return withLogging(httpview.NewHandler(sessions, httpview.Logger(logger), httpview.Dispatcher(dispatcher)))
}

func NewServer(config support.Config, handler http.Handler, logger *zerolog.Logger) *Server {
	return &Server{Address: config.Address, Handler: handler, Log: logger}
}

var Live = wire.NewSet(
	support.LoadConfig,
	support.Logger,
	support.TracerProvider,
	counter.NewDispatcher,
	InitialValue,
	Sessions,
	Handler,
	NewServer,
)
