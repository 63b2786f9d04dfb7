package dialog

import (
	"fmt"
	"strings"
)

// Policy decides what Publish does when a dialog of the same kind is
// already visible.
type Policy int

const (
	// PolicyQueue keeps the visible dialog and shows the new one after it
	// is resolved. Same-kind dialogs are answered in arrival order.
	PolicyQueue Policy = iota
	// PolicySupersede replaces the visible dialog with the new one. The
	// replaced interaction is never resolved.
	PolicySupersede
)

func (p Policy) String() string {
	switch p {
	case PolicyQueue:
		return "queue"
	case PolicySupersede:
		return "supersede"
	default:
		return "unknown"
	}
}

// ParsePolicy maps a config value to a Policy. Empty means PolicyQueue.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "queue":
		return PolicyQueue, nil
	case "supersede":
		return PolicySupersede, nil
	default:
		return PolicyQueue, fmt.Errorf("unknown dialog policy %q", s)
	}
}
