package serialize

type policyMode int

const (
	modeKeepAll policyMode = iota
	modeInclude
	modeExclude
)

// FieldPolicy selects which fields of a record survive serialization.
// A policy is either an include-list or an exclude-list; the two modes are
// mutually exclusive by construction. The zero value keeps every field.
type FieldPolicy struct {
	mode  policyMode
	names map[string]struct{}
}

// Include returns a policy that keeps only the named fields.
func Include(names ...string) FieldPolicy {
	return FieldPolicy{mode: modeInclude, names: toSet(names)}
}

// Exclude returns a policy that keeps every field except the named ones.
func Exclude(names ...string) FieldPolicy {
	return FieldPolicy{mode: modeExclude, names: toSet(names)}
}

// Allows reports whether a field with the given name survives the policy.
// Names unknown to the record are handled by the caller simply never asking
// about them, so a stray name in the policy is a no-op.
func (p FieldPolicy) Allows(name string) bool {
	_, listed := p.names[name]
	switch p.mode {
	case modeInclude:
		return listed
	case modeExclude:
		return !listed
	default:
		return true
	}
}

func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
