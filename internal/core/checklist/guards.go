package checklist

import "fmt"

// UnknownIDPolicy decides what happens when a toggle names an id outside the catalog.
type UnknownIDPolicy string

const (
	// PolicyReject refuses toggles of unknown ids.
	PolicyReject UnknownIDPolicy = "reject"
	// PolicyAllow persists unknown ids but never counts them.
	PolicyAllow UnknownIDPolicy = "allow"
)

// ParsePolicy maps a config value to a policy. Empty means PolicyReject.
func ParsePolicy(s string) (UnknownIDPolicy, error) {
	switch UnknownIDPolicy(s) {
	case "", PolicyReject:
		return PolicyReject, nil
	case PolicyAllow:
		return PolicyAllow, nil
	default:
		return "", fmt.Errorf("unknown id policy %q (want %q or %q)", s, PolicyReject, PolicyAllow)
	}
}

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// ToggleContext provides context for toggle guards.
type ToggleContext struct {
	TaskID    string
	CatalogID string
	InCatalog bool
	Policy    UnknownIDPolicy
}

// CanToggle evaluates whether a task can be toggled.
// Rules:
// - Task id must not be empty
// - Task must be in the catalog unless the policy allows unknown ids
func CanToggle(ctx ToggleContext) GuardResult {
	if ctx.TaskID == "" {
		return GuardResult{
			Allowed: false,
			Reason:  "task id is required",
		}
	}

	if !ctx.InCatalog && ctx.Policy != PolicyAllow {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("task %s is not part of checklist %s", ctx.TaskID, ctx.CatalogID),
		}
	}

	return GuardResult{Allowed: true}
}
