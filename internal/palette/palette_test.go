package palette

import (
	"testing"

	"photospro/internal/records"
)

func TestColor(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"wedding", Color(records.PortfolioWedding), "pink"},
		{"urgent session", Color(records.SessionPriorityUrgent), "red"},
		{"urgent task", Color(records.TaskPriorityUrgent), "red"},
		{"referral client", Color(records.ClientStatusReferral), "purple"},
		{"on hold", Color(records.TaskOnHold), "yellow"},
		{"tax", Color(records.Tax), "orange"},
		{"refunded", Color(records.PaymentRefunded), "blue"},
		{"no color for lighting", Color(records.LightingGoldenHour), ""},
		{"no color for payment method", Color(records.PaymentBank), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("Color() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestCatalog_EveryColoredCaseHasColor(t *testing.T) {
	catalog := Catalog()
	if len(catalog) != 18 {
		t.Errorf("Catalog() has %d enums, want 18", len(catalog))
	}

	colored := []string{
		"portfolioCategory", "sessionPriority", "sessionStatus", "clientStatus",
		"taskCategory", "taskPriority", "taskStatus", "financeType", "financeCategory", "paymentStatus",
	}
	for _, name := range colored {
		for _, e := range catalog[name] {
			if e.Color == "" {
				t.Errorf("Catalog()[%q] label %q has no color", name, e.Label)
			}
		}
	}

	statuses := catalog["taskStatus"]
	if len(statuses) != 5 || statuses[0].Label != "Pending" || statuses[4].Label != "On Hold" {
		t.Errorf("Catalog()[taskStatus] = %v, want declaration order", statuses)
	}
}
