package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/matt-g-everett/animtx/core"
	"github.com/matt-g-everett/animtx/smooth"
	"github.com/matt-g-everett/animtx/sprite"
	"github.com/matt-g-everett/animtx/stream"
)

// Controller is what the Api reports on and steers.
type Controller interface {
	State() stream.State
	SwitchTo(name string) (sprite.Transition, error)
	SetTint(hex string, durationMs float64) error
}

type Api struct {
	controller Controller
	router     *mux.Router
}

type tintRequest struct {
	Colour     string  `json:"colour"`
	DurationMs float64 `json:"durationMs"`
}

func NewApi(controller Controller) *Api {
	a := new(Api)
	a.controller = controller

	r := mux.NewRouter()
	r.HandleFunc("/state", a.getState).Methods("GET")
	r.HandleFunc("/curves", a.getCurves).Methods("GET")
	r.HandleFunc("/sequence/{name}", a.switchSequence).Methods("POST")
	r.HandleFunc("/tint", a.setTint).Methods("POST")
	r.PathPrefix("/").Handler(http.FileServer(http.Dir("client/dist")))
	a.router = r

	return a
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Serve listens on addr until the server fails.
func (a *Api) Serve(addr string) error {
	core.LogInfo("Listening on %s...", addr)
	return http.ListenAndServe(addr, a)
}

func (a *Api) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.controller.State())
}

func (a *Api) getCurves(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, smooth.Names())
}

func (a *Api) switchSequence(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	tr, err := a.controller.SwitchTo(name)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tr)
}

func (a *Api) setTint(w http.ResponseWriter, r *http.Request) {
	var req tintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.DurationMs <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "durationMs must be positive"})
		return
	}
	if err := a.controller.SetTint(req.Colour, req.DurationMs); err != nil {
		handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrKeyNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, core.ErrInvalidConfiguration), errors.Is(err, core.ErrShapeMismatch):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		core.LogError("Request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
