package records

import (
	"fmt"
	"slices"
)

// parseLabel maps a persisted label back to its enum case. Labels are
// matched exactly; relabeling a case is a breaking storage change.
func parseLabel[E ~string](name string, values []E, text []byte) (E, error) {
	v := E(text)
	if !slices.Contains(values, v) {
		return "", fmt.Errorf("unknown %s %q", name, string(text))
	}
	return v, nil
}
