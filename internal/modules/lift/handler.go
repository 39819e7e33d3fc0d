package lift

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes lift pool HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/lifts", func(r chi.Router) {
		r.Get("/", h.listLifts)
		r.Get("/{number}", h.getLift)
		r.Post("/{number}/force-release", h.forceRelease)
	})
}

func (h *Handler) listLifts(w http.ResponseWriter, r *http.Request) {
	lifts, err := h.service.ListLifts(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, lifts)
}

func (h *Handler) getLift(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid lift number"})
		return
	}
	l, err := h.service.GetLift(r.Context(), number)
	if err != nil {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, l)
}

func (h *Handler) forceRelease(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "invalid lift number"})
		return
	}
	l, err := h.service.ForceRelease(r.Context(), number)
	if err != nil {
		code := http.StatusInternalServerError
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		respond(w, code, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, l)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
