package httpview

import (
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter-go/counter"
	"github.com/weegigs/wee-counter-go/view"
)

type HandlerOption func(service *httpService)

func Logger(log *zerolog.Logger) HandlerOption {
	return func(service *httpService) {
		service.log = log
	}
}

func Dispatcher(dispatcher *counter.Dispatcher) HandlerOption {
	return func(service *httpService) {
		service.dispatcher = dispatcher
	}
}

func NewHandler(sessions *view.Sessions, options ...HandlerOption) http.Handler {
	service := &httpService{sessions: sessions}
	for _, option := range options {
		option(service)
	}
	if service.log == nil {
		service.log = &log.Logger
	}
	if service.dispatcher == nil {
		service.dispatcher = counter.NewDispatcher()
	}

	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Method("POST", "/counters", service.createSession())
	r.Method("GET", "/counters/{id}", service.getResource())
	r.Method("POST", "/counters/{id}", service.executeCommand())
	r.Method("DELETE", "/counters/{id}", service.releaseSession())
	r.Method("POST", "/counters/{id}/reset", service.resetSession())

	return WithTelemetry(r, "counter-http")
}

type httpService struct {
	log        *zerolog.Logger
	sessions   *view.Sessions
	dispatcher *counter.Dispatcher
}

func (service *httpService) session(w http.ResponseWriter, r *http.Request) (*view.Session, bool) {
	id, err := view.ParseSessionID(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	session, err := service.sessions.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	return session, true
}

func (service *httpService) createSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session := service.sessions.Create()
		encode(w, http.StatusCreated, session)
	}
}

func (service *httpService) getResource() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := service.session(w, r)
		if !ok {
			return
		}

		encode(w, http.StatusOK, session)
	}
}

func (service *httpService) executeCommand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := service.session(w, r)
		if !ok {
			return
		}

		contentType := r.Header.Get("Content-type")
		mediaType, _, err := mime.ParseMediaType(contentType)
		if mediaType != "application/json" || err != nil {
			http.Error(w, "unsupported content type", http.StatusUnsupportedMediaType)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		// UnmarshalContext cannot decode into the RawMessage payload
		var command counter.RemoteCommand
		if err := json.Unmarshal(body, &command); err != nil || command.CommandName == "" {
			service.log.Info().Err(err).Msg("failed to unmarshal command")
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := service.dispatcher.Dispatch(r.Context(), session.Engine(), command); err != nil {
			var notFound counter.CommandNotFoundError
			if errors.As(err, &notFound) {
				http.Error(w, notFound.Error(), http.StatusNotFound)
				return
			}

			var invalid *counter.InvalidPayloadError
			if errors.As(err, &invalid) {
				service.log.Info().Err(err).Str("session", session.ID.String()).Msg("rejected command payload")
				http.Error(w, "invalid command payload", http.StatusBadRequest)
				return
			}

			service.log.Info().Err(err).Str("session", session.ID.String()).Msg("failed to execute command")
			http.Error(w, "failed to execute command", http.StatusInternalServerError)
			return
		}

		encode(w, http.StatusOK, session)
	}
}

// resetSession re-mounts the session with a fresh counter at the initial value.
func (service *httpService) resetSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := service.session(w, r)
		if !ok {
			return
		}

		session.Reset()
		encode(w, http.StatusOK, session)
	}
}

func (service *httpService) releaseSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.sessions.Release(view.SessionID(chi.URLParam(r, "id")))
		w.WriteHeader(http.StatusNoContent)
	}
}
