package records

import (
	"fmt"

	"github.com/google/uuid"
)

// Record is implemented by all five entity types.
type Record interface {
	RecordID() uuid.UUID
}

// Kind names one of the five record collections.
type Kind string

const (
	KindPortfolio Kind = "portfolio"
	KindSessions  Kind = "photoSessions"
	KindClients   Kind = "clients"
	KindTasks     Kind = "tasks"
	KindFinances  Kind = "finances"
)

// Kinds returns all collection kinds in a fixed order.
func Kinds() []Kind {
	return []Kind{KindPortfolio, KindSessions, KindClients, KindTasks, KindFinances}
}

// Key returns the persisted collection key. Changing it orphans existing data.
func (k Kind) Key() string {
	return string(k)
}

// Path returns the name used for the kind in API routes and CLI arguments.
func (k Kind) Path() string {
	switch k {
	case KindSessions:
		return "sessions"
	default:
		return string(k)
	}
}

// ParseKind resolves a collection key or route alias to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "portfolio":
		return KindPortfolio, nil
	case "photoSessions", "sessions", "ideas":
		return KindSessions, nil
	case "clients":
		return KindClients, nil
	case "tasks":
		return KindTasks, nil
	case "finances", "finance":
		return KindFinances, nil
	}
	return "", fmt.Errorf("unknown record kind %q", s)
}
