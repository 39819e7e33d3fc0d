package reports

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Handler exposes reporting HTTP endpoints. Periods come in as query
// parameters: ?date=dd/MM/yyyy for daily, ?month=MM/yyyy for monthly.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Get("/sales/daily", h.dailySales)
		r.Get("/sales/monthly", h.monthlySales)
		r.Get("/balance/monthly", h.monthlyBalance)
	})
}

func (h *Handler) dailySales(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.DailySales(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func (h *Handler) monthlySales(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.MonthlySales(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func (h *Handler) monthlyBalance(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.MonthlyBalance(r.Context(), r.URL.Query().Get("month"))
	if err != nil {
		respond(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, report)
}

func errorStatus(err error) int {
	if strings.Contains(err.Error(), "invalid") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
