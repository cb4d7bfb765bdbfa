// Package palette maps record enum cases to their display colors. Colors are
// a presentation concern and are kept out of the records package.
package palette

import "photospro/internal/records"

// Entry pairs a persisted label with its display color. Color is empty for
// enums the app renders without a color.
type Entry struct {
	Label string `json:"label"`
	Color string `json:"color,omitempty"`
}

var (
	portfolioCategoryColors = map[records.PortfolioCategory]string{
		records.PortfolioPortrait:     "blue",
		records.PortfolioLandscape:    "green",
		records.PortfolioWedding:      "pink",
		records.PortfolioCommercial:   "orange",
		records.PortfolioFashion:      "purple",
		records.PortfolioStreet:       "gray",
		records.PortfolioNature:       "mint",
		records.PortfolioArchitecture: "brown",
		records.PortfolioSports:       "red",
		records.PortfolioMacro:        "yellow",
		records.PortfolioOther:        "secondary",
	}

	priorityColors = map[string]string{
		"Low":    "green",
		"Medium": "yellow",
		"High":   "orange",
		"Urgent": "red",
	}

	sessionStatusColors = map[records.SessionStatus]string{
		records.SessionIdea:       "gray",
		records.SessionPlanning:   "blue",
		records.SessionScheduled:  "yellow",
		records.SessionInProgress: "orange",
		records.SessionCompleted:  "green",
		records.SessionCancelled:  "red",
	}

	clientStatusColors = map[records.ClientStatus]string{
		records.ClientStatusProspect: "gray",
		records.ClientStatusLead:     "blue",
		records.ClientStatusActive:   "green",
		records.ClientStatusInactive: "yellow",
		records.ClientStatusLost:     "red",
		records.ClientStatusReferral: "purple",
	}

	taskCategoryColors = map[records.TaskCategory]string{
		records.TaskShooting:   "blue",
		records.TaskEditing:    "purple",
		records.TaskClientWork: "green",
		records.TaskMarketing:  "orange",
		records.TaskEquipment:  "brown",
		records.TaskBusiness:   "red",
		records.TaskPersonal:   "pink",
		records.TaskLearning:   "mint",
		records.TaskNetworking: "yellow",
		records.TaskOther:      "gray",
	}

	taskStatusColors = map[records.TaskStatus]string{
		records.TaskPending:    "gray",
		records.TaskInProgress: "blue",
		records.TaskCompleted:  "green",
		records.TaskCancelled:  "red",
		records.TaskOnHold:     "yellow",
	}

	financeTypeColors = map[records.FinanceType]string{
		records.Income:     "green",
		records.Expense:    "red",
		records.Investment: "blue",
		records.Tax:        "orange",
	}

	financeCategoryColors = map[records.FinanceCategory]string{
		records.FinanceShooting:  "blue",
		records.FinanceEditing:   "purple",
		records.FinanceEquipment: "brown",
		records.FinanceMarketing: "orange",
		records.FinanceTravel:    "mint",
		records.FinanceStudio:    "pink",
		records.FinanceSoftware:  "yellow",
		records.FinanceEducation: "green",
		records.FinanceInsurance: "red",
		records.FinanceOffice:    "gray",
		records.FinanceOther:     "secondary",
	}

	paymentStatusColors = map[records.PaymentStatus]string{
		records.PaymentPending:   "yellow",
		records.PaymentPaid:      "green",
		records.PaymentOverdue:   "red",
		records.PaymentCancelled: "gray",
		records.PaymentRefunded:  "blue",
	}
)

// Color returns the display color for an enum case, or "" if it has none.
func Color[E ~string](v E) string {
	switch x := any(v).(type) {
	case records.PortfolioCategory:
		return portfolioCategoryColors[x]
	case records.SessionPriority:
		return priorityColors[string(x)]
	case records.TaskPriority:
		return priorityColors[string(x)]
	case records.SessionStatus:
		return sessionStatusColors[x]
	case records.ClientStatus:
		return clientStatusColors[x]
	case records.TaskCategory:
		return taskCategoryColors[x]
	case records.TaskStatus:
		return taskStatusColors[x]
	case records.FinanceType:
		return financeTypeColors[x]
	case records.FinanceCategory:
		return financeCategoryColors[x]
	case records.PaymentStatus:
		return paymentStatusColors[x]
	}
	return ""
}

func entries[E ~string](values []E) []Entry {
	out := make([]Entry, 0, len(values))
	for _, v := range values {
		out = append(out, Entry{Label: string(v), Color: Color(v)})
	}
	return out
}

// Catalog returns every enum with its labels in declaration order, keyed by
// a stable enum name.
func Catalog() map[string][]Entry {
	return map[string][]Entry{
		"portfolioCategory": entries(records.PortfolioCategoryValues()),
		"projectType":       entries(records.ProjectTypeValues()),
		"sessionPriority":   entries(records.SessionPriorityValues()),
		"sessionStatus":     entries(records.SessionStatusValues()),
		"indoorOutdoor":     entries(records.IndoorOutdoorValues()),
		"lighting":          entries(records.LightingTypeValues()),
		"photoStyle":        entries(records.PhotoStyleValues()),
		"clientType":        entries(records.ClientTypeValues()),
		"clientStatus":      entries(records.ClientStatusValues()),
		"clientSource":      entries(records.ClientSourceValues()),
		"contactMethod":     entries(records.ContactMethodValues()),
		"taskCategory":      entries(records.TaskCategoryValues()),
		"taskPriority":      entries(records.TaskPriorityValues()),
		"taskStatus":        entries(records.TaskStatusValues()),
		"financeType":       entries(records.FinanceTypeValues()),
		"financeCategory":   entries(records.FinanceCategoryValues()),
		"paymentMethod":     entries(records.PaymentMethodValues()),
		"paymentStatus":     entries(records.PaymentStatusValues()),
	}
}
