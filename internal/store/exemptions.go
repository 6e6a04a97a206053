package store

// ExemptionRegistry answers whether a script name is permanently
// excluded from conflict checks. Membership is name-only, not
// server-scoped. The registry is rebuilt per batch from the workspace
// settings so that edits take effect on the next invocation.
type ExemptionRegistry struct {
	names map[string]struct{}
}

func NewExemptionRegistry(names []string) *ExemptionRegistry {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return &ExemptionRegistry{names: set}
}

// IsExempt reports whether name bypasses hash comparison and prompting.
func (r *ExemptionRegistry) IsExempt(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Len returns the number of exempted names.
func (r *ExemptionRegistry) Len() int {
	return len(r.names)
}
