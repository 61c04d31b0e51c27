package check

import "github.com/jvmlint/jvmlint/sig"

// narrow returns the copy of binding b refined by a predicate test.
// On the true branch the binding takes the tested member type,
// and passing the test proves presence, so any Nullable wrapper
// is stripped.
// On the false branch the binding takes the union with that member
// removed; a single remaining member collapses to that member,
// and a Nullable wrapper is kept, since an absent value fails
// every membership test.
// Narrowing to a non-member, or removing the only member,
// leaves no type: that is an ImpossibleType error charged to the
// annotations, not the call site.
func narrow(x *scope, n Node, b *Binding, tested sig.Type, branch bool) (*Binding, *checkError) {
	elem, wasNil := sig.Strip(b.Type)
	members := []sig.Type{elem}
	if u, ok := elem.(sig.Union); ok {
		members = u.Elems
	}
	if branch {
		for _, m := range members {
			if sig.Equal(m, tested) {
				return &Binding{Name: b.Name, Type: tested}, nil
			}
		}
		err := x.err(n, "impossible type: %s is never a %s", b.Name, tested)
		err.kind = ImpossibleType
		return nil, err
	}
	var rest []sig.Type
	for _, m := range members {
		if !sig.Equal(m, tested) {
			rest = append(rest, m)
		}
	}
	if len(rest) == 0 {
		err := x.err(n, "impossible type: %s is always a %s", b.Name, tested)
		err.kind = ImpossibleType
		return nil, err
	}
	typ := sig.Un(rest...)
	if wasNil {
		typ = sig.Nilable(typ)
	}
	return &Binding{Name: b.Name, Type: typ}, nil
}

// merge rejoins two branch copies of a binding at a join point,
// recomputing the deduplicated union of the branch types.
// For a pure two-way split, merge reconstructs the original union.
func merge(a, b *Binding) *Binding {
	return &Binding{Name: a.Name, Type: sig.Un(a.Type, b.Type)}
}
