package store

import (
	"fmt"

	"github.com/google/uuid"

	"photospro/internal/records"
)

// ValidationError reports a record the store refused to persist.
type ValidationError struct {
	Kind    records.Kind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s.%s: %s", e.Kind, e.Field, e.Message)
}

// checker accumulates the first validation failure for one record.
type checker struct {
	kind records.Kind
	err  *ValidationError
}

func (c *checker) fail(field, format string, args ...any) {
	if c.err == nil {
		c.err = &ValidationError{Kind: c.kind, Field: field, Message: fmt.Sprintf(format, args...)}
	}
}

func (c *checker) id(id uuid.UUID) {
	if id == uuid.Nil {
		c.fail("id", "must not be the nil UUID")
	}
}

// label rejects enum values that could not be decoded again. Persisting one
// would make the whole collection unreadable on the next load.
func (c *checker) label(field string, value string, valid bool) {
	if !valid {
		c.fail(field, "unknown label %q", value)
	}
}

func (c *checker) rating(v int) {
	if v < 1 || v > 5 {
		c.fail("rating", "must be between 1 and 5, got %d", v)
	}
}

func (c *checker) nonNegative(field string, v int) {
	if v < 0 {
		c.fail(field, "must not be negative, got %d", v)
	}
}

func (c *checker) result() error {
	if c.err == nil {
		return nil
	}
	return c.err
}

func validatePortfolio(p records.Portfolio, strict bool) error {
	c := checker{kind: records.KindPortfolio}
	c.label("category", string(p.Category), p.Category.Valid())
	c.label("projectType", string(p.ProjectType), p.ProjectType.Valid())
	if strict {
		c.id(p.ID)
		c.rating(p.Rating)
	}
	return c.result()
}

func validateSession(s records.PhotoSession, strict bool) error {
	c := checker{kind: records.KindSessions}
	c.label("priority", string(s.Priority), s.Priority.Valid())
	c.label("status", string(s.Status), s.Status.Valid())
	c.label("indoorOutdoor", string(s.IndoorOutdoor), s.IndoorOutdoor.Valid())
	c.label("lighting", string(s.Lighting), s.Lighting.Valid())
	c.label("style", string(s.Style), s.Style.Valid())
	if strict {
		c.id(s.ID)
		c.nonNegative("estimatedDuration", s.EstimatedDuration)
	}
	return c.result()
}

func validateClient(cl records.Client, strict bool) error {
	c := checker{kind: records.KindClients}
	c.label("clientType", string(cl.ClientType), cl.ClientType.Valid())
	c.label("status", string(cl.Status), cl.Status.Valid())
	c.label("source", string(cl.Source), cl.Source.Valid())
	c.label("preferredContact", string(cl.PreferredContact), cl.PreferredContact.Valid())
	if strict {
		c.id(cl.ID)
		c.rating(cl.Rating)
	}
	return c.result()
}

func validateTask(t records.Task, strict bool) error {
	c := checker{kind: records.KindTasks}
	c.label("category", string(t.Category), t.Category.Valid())
	c.label("priority", string(t.Priority), t.Priority.Valid())
	c.label("status", string(t.Status), t.Status.Valid())
	if strict {
		c.id(t.ID)
		c.nonNegative("estimatedDuration", t.EstimatedDuration)
		if t.ActualDuration != nil {
			c.nonNegative("actualDuration", *t.ActualDuration)
		}
	}
	return c.result()
}

func validateFinance(f records.Finance, strict bool) error {
	c := checker{kind: records.KindFinances}
	c.label("type", string(f.Type), f.Type.Valid())
	c.label("category", string(f.Category), f.Category.Valid())
	c.label("paymentMethod", string(f.PaymentMethod), f.PaymentMethod.Valid())
	c.label("status", string(f.Status), f.Status.Valid())
	if strict {
		c.id(f.ID)
	}
	return c.result()
}
