package view

import (
	"fmt"
	"strings"

	"photospro/internal/records"
)

// SessionBrief renders a planning sheet for a session as Markdown.
func SessionBrief(s records.PhotoSession) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", orDash(s.Title))
	if s.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", s.Description)
	}

	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Status | %s |\n", s.Status)
	fmt.Fprintf(&b, "| Priority | %s |\n", s.Priority)
	if s.ScheduledDate != nil {
		fmt.Fprintf(&b, "| Scheduled | %s |\n", s.ScheduledDate.Format("Mon, 02 Jan 2006 15:04"))
	}
	fmt.Fprintf(&b, "| Duration | %dh |\n", s.EstimatedDuration)
	fmt.Fprintf(&b, "| Location | %s (%s) |\n", orDash(s.Location), s.IndoorOutdoor)
	fmt.Fprintf(&b, "| Lighting | %s |\n", s.Lighting)
	fmt.Fprintf(&b, "| Style | %s |\n", s.Style)
	if s.Budget > 0 {
		fmt.Fprintf(&b, "| Budget | $%.2f |\n", s.Budget)
	}
	if s.WeatherDependency {
		b.WriteString("| Weather | dependent |\n")
	}
	b.WriteString("\n")

	section(&b, "Concept", s.Concept)
	section(&b, "Mood", s.Mood)
	list(&b, "Equipment", s.Equipment)
	list(&b, "Models", s.Models)
	list(&b, "Team", s.Team)
	section(&b, "Notes", s.Notes)

	return b.String()
}

func section(b *strings.Builder, title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Fprintf(b, "## %s\n\n%s\n\n", title, body)
}

func list(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
