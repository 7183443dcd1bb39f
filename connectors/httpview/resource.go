package httpview

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/weegigs/wee-counter-go/view"
)

type Resource struct {
	ID      view.SessionID `json:"$id"`
	Value   int64          `json:"value"`
	Renders int64          `json:"renders"`
}

func ResourceOf(session *view.Session) Resource {
	return Resource{
		ID:      session.ID,
		Value:   session.Engine().Value(),
		Renders: session.Renders(),
	}
}

func encode(w http.ResponseWriter, status int, session *view.Session) {
	body, err := json.Marshal(ResourceOf(session))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
