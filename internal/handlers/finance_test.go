package handlers

import (
	"net/http"
	"testing"

	"photospro/internal/records"
	"photospro/internal/service"
	"photospro/internal/store"
	"photospro/internal/view"
)

func TestTotalsHandler(t *testing.T) {
	s := newTestStore(t, store.Options{})

	for _, f := range []struct {
		typ    records.FinanceType
		amount float64
	}{{records.Income, 1200}, {records.Expense, 450.25}, {records.Tax, 99}} {
		rec := records.NewFinance()
		rec.Type = f.typ
		rec.Amount = f.amount
		if err := s.Finances().Upsert(testContext(t), rec); err != nil {
			t.Fatal(err)
		}
	}

	w := doRequest(t, NewTotalsHandler(service.NewRecordService(s.Finances())), http.MethodGet, "/api/finances/totals", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	got := decode[view.TotalsSummary](t, w)
	if got.Income != "1200.00" || got.Expenses != "450.25" || got.Net != "749.75" || !got.Positive {
		t.Errorf("totals = %+v", got)
	}
}
