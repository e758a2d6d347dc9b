package domain

// Capability is a single operation a principal may perform on a workflow.
type Capability uint8

const (
	CapRead Capability = 1 << iota
	CapUpdate
	CapDelete
	CapComment
	CapUpdateStep
)

// Has reports whether every capability in want is present in c.
func (c Capability) Has(want Capability) bool {
	return c&want == want
}

// WorkflowCapabilities is the visibility policy: a pure function of the
// principal and the workflow record.
//
//   - admin: everything, unconditionally
//   - creator: everything
//   - assignee or public workflow: read, comment, update-step
//   - otherwise: nothing (callers must report forbidden, not success)
func WorkflowCapabilities(p Principal, w *Workflow) Capability {
	if p.Role == RoleAdmin {
		return CapRead | CapUpdate | CapDelete | CapComment | CapUpdateStep
	}
	if w.CreatedBy == p.ID {
		return CapRead | CapUpdate | CapDelete | CapComment | CapUpdateStep
	}
	for _, id := range w.AssignedTo {
		if id == p.ID {
			return CapRead | CapComment | CapUpdateStep
		}
	}
	if w.IsPublic {
		return CapRead | CapComment | CapUpdateStep
	}
	return 0
}

// WorkflowScope is the query-layer equivalent of WorkflowCapabilities for
// list and stats operations: admins see all records, everyone else sees
// records they created, are assigned to, or that are public.
type WorkflowScope struct {
	ViewerID string
	All      bool
}

// ScopeFor builds the list scope for a principal.
func ScopeFor(p Principal) WorkflowScope {
	return WorkflowScope{ViewerID: p.ID, All: p.Role == RoleAdmin}
}
