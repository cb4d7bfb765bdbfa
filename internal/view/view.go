// Package view derives the filtered and sorted lists shown to users from
// store snapshots. Functions here never modify their input.
package view

import (
	"cmp"
	"slices"
	"strings"

	"photospro/internal/records"
)

// PortfolioFilter selects portfolio items. Zero fields match everything.
type PortfolioFilter struct {
	Category records.PortfolioCategory
	Search   string
}

type SessionFilter struct {
	Status records.SessionStatus
	Search string
}

type ClientFilter struct {
	Status records.ClientStatus
	Search string
}

type TaskFilter struct {
	Status   records.TaskStatus
	Category records.TaskCategory
	Search   string
}

type FinanceFilter struct {
	Type     records.FinanceType
	Category records.FinanceCategory
	Search   string
}

// contains reports a case-insensitive substring match.
func contains(s, query string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

func containsPtr(s *string, query string) bool {
	return s != nil && contains(*s, query)
}

func keep[T any](items []T, match func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

// flagFirst moves items with the flag set ahead of the rest, keeping
// relative order within each group.
func flagFirst[T any](items []T, flag func(T) bool) {
	slices.SortStableFunc(items, func(a, b T) int {
		switch fa, fb := flag(a), flag(b); {
		case fa && !fb:
			return -1
		case !fa && fb:
			return 1
		}
		return 0
	})
}

// byLabelDesc orders by the raw priority label, Z to A. The label is
// compared as text, so "Medium" sorts before "High".
func byLabelDesc[T any, E ~string](items []T, label func(T) E) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(label(b), label(a))
	})
}

// FilterPortfolio returns matching items with favorites first.
func FilterPortfolio(items []records.Portfolio, f PortfolioFilter) []records.Portfolio {
	out := keep(items, func(p records.Portfolio) bool {
		if f.Category != "" && p.Category != f.Category {
			return false
		}
		if f.Search == "" {
			return true
		}
		return contains(p.Title, f.Search) ||
			contains(p.Description, f.Search) ||
			slices.ContainsFunc(p.Tags, func(tag string) bool { return contains(tag, f.Search) })
	})
	flagFirst(out, func(p records.Portfolio) bool { return p.IsFavorite })
	return out
}

// FilterSessions returns matching sessions ordered by priority label.
func FilterSessions(items []records.PhotoSession, f SessionFilter) []records.PhotoSession {
	out := keep(items, func(s records.PhotoSession) bool {
		if f.Status != "" && s.Status != f.Status {
			return false
		}
		if f.Search == "" {
			return true
		}
		return contains(s.Title, f.Search) ||
			contains(s.Description, f.Search) ||
			contains(s.Concept, f.Search)
	})
	byLabelDesc(out, func(s records.PhotoSession) records.SessionPriority { return s.Priority })
	return out
}

// FilterClients returns matching clients with VIPs first.
func FilterClients(items []records.Client, f ClientFilter) []records.Client {
	out := keep(items, func(c records.Client) bool {
		if f.Status != "" && c.Status != f.Status {
			return false
		}
		if f.Search == "" {
			return true
		}
		return contains(c.Name, f.Search) ||
			containsPtr(c.Company, f.Search) ||
			contains(c.Email, f.Search)
	})
	flagFirst(out, func(c records.Client) bool { return c.IsVIP })
	return out
}

// FilterTasks returns matching tasks ordered by priority label.
func FilterTasks(items []records.Task, f TaskFilter) []records.Task {
	out := keep(items, func(t records.Task) bool {
		if f.Status != "" && t.Status != f.Status {
			return false
		}
		if f.Category != "" && t.Category != f.Category {
			return false
		}
		if f.Search == "" {
			return true
		}
		return contains(t.Title, f.Search) ||
			contains(t.Description, f.Search) ||
			containsPtr(t.ClientName, f.Search)
	})
	byLabelDesc(out, func(t records.Task) records.TaskPriority { return t.Priority })
	return out
}

// FilterFinances returns matching transactions, newest first.
func FilterFinances(items []records.Finance, f FinanceFilter) []records.Finance {
	out := keep(items, func(fin records.Finance) bool {
		if f.Type != "" && fin.Type != f.Type {
			return false
		}
		if f.Category != "" && fin.Category != f.Category {
			return false
		}
		if f.Search == "" {
			return true
		}
		return contains(fin.Title, f.Search) ||
			contains(fin.Description, f.Search) ||
			containsPtr(fin.ClientName, f.Search)
	})
	slices.SortStableFunc(out, func(a, b records.Finance) int {
		return b.Date.Compare(a.Date.Time)
	})
	return out
}
