package handlers

import (
	"fmt"
	"net/url"

	"photospro/internal/records"
	"photospro/internal/service"
	"photospro/internal/view"
)

// label is a closed enum whose value is its display label.
type label interface {
	~string
	Valid() bool
}

// queryLabel reads an optional enum filter from the query string.
func queryLabel[E label](q url.Values, key string) (E, error) {
	v := E(q.Get(key))
	if v != "" && !v.Valid() {
		return "", fmt.Errorf("unknown %s %q: %w", key, string(v), service.ErrInvalidInput)
	}
	return v, nil
}

func projectPortfolio(items []records.Portfolio, q url.Values) ([]records.Portfolio, error) {
	category, err := queryLabel[records.PortfolioCategory](q, "category")
	if err != nil {
		return nil, err
	}
	return view.FilterPortfolio(items, view.PortfolioFilter{Category: category, Search: q.Get("q")}), nil
}

func projectSessions(items []records.PhotoSession, q url.Values) ([]records.PhotoSession, error) {
	status, err := queryLabel[records.SessionStatus](q, "status")
	if err != nil {
		return nil, err
	}
	return view.FilterSessions(items, view.SessionFilter{Status: status, Search: q.Get("q")}), nil
}

func projectClients(items []records.Client, q url.Values) ([]records.Client, error) {
	status, err := queryLabel[records.ClientStatus](q, "status")
	if err != nil {
		return nil, err
	}
	return view.FilterClients(items, view.ClientFilter{Status: status, Search: q.Get("q")}), nil
}

func projectTasks(items []records.Task, q url.Values) ([]records.Task, error) {
	status, err := queryLabel[records.TaskStatus](q, "status")
	if err != nil {
		return nil, err
	}
	category, err := queryLabel[records.TaskCategory](q, "category")
	if err != nil {
		return nil, err
	}
	return view.FilterTasks(items, view.TaskFilter{Status: status, Category: category, Search: q.Get("q")}), nil
}

func projectFinances(items []records.Finance, q url.Values) ([]records.Finance, error) {
	typ, err := queryLabel[records.FinanceType](q, "type")
	if err != nil {
		return nil, err
	}
	category, err := queryLabel[records.FinanceCategory](q, "category")
	if err != nil {
		return nil, err
	}
	return view.FilterFinances(items, view.FinanceFilter{Type: typ, Category: category, Search: q.Get("q")}), nil
}
