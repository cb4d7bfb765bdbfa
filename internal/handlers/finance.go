package handlers

import (
	"net/http"

	"photospro/internal/records"
	"photospro/internal/service"
	"photospro/internal/view"
)

// TotalsHandler reports income, expenses and net across all transactions.
type TotalsHandler struct {
	finances *service.RecordService[records.Finance]
}

// NewTotalsHandler creates a new TotalsHandler.
func NewTotalsHandler(finances *service.RecordService[records.Finance]) *TotalsHandler {
	return &TotalsHandler{finances: finances}
}

func (h *TotalsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, view.Totals(h.finances.List()).Summary())
}
