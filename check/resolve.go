package check

import (
	"strings"

	"github.com/jvmlint/jvmlint/sig"
)

// resolve selects the unique overload of a foreign member
// matching the call-site argument types.
// An overload matches when every argument could select
// the corresponding parameter under its effective nullability;
// see matches below.
// No member, or a member with no matching overload,
// is an UnknownSignature error; more than one match is an
// AmbiguousResolution error naming every candidate.
// No best-effort tie-break is attempted among multiple matches:
// a call is ambiguous until its arguments are narrowed.
// resolve is a pure query; it never changes the catalog.
func resolve(x *scope, n Node, owner sig.Class, name string, kind sig.Kind, args []sig.Type) (*sig.Sig, *checkError) {
	cat := x.cfg.Catalog
	target := member(owner, name, kind)
	cands := cat.Lookup(owner.Name, name, kind)
	if len(cands) == 0 {
		err := x.err(n, "%s %s undefined", kind, target)
		err.kind = UnknownSignature
		return nil, err
	}
	var found []*sig.Sig
	for _, s := range cands {
		if len(s.Parms) != len(args) {
			continue
		}
		ok := true
		for i, a := range args {
			if !matches(a, parmType(cat, s, i)) {
				ok = false
				break
			}
		}
		if ok {
			found = append(found, s)
		}
	}
	switch len(found) {
	case 1:
		return found[0], nil
	case 0:
		err := x.err(n, "%s %s undefined for arguments (%s)", kind, target, typeList(args))
		err.kind = UnknownSignature
		for _, s := range cands {
			note(err, "candidate: %s", s)
		}
		return nil, err
	default:
		err := x.err(n, "ambiguous %s invocation %s", kind, target)
		err.kind = AmbiguousResolution
		for _, s := range found {
			note(err, "candidate: %s", s)
		}
		return nil, err
	}
}

// matches returns whether a call-site argument of type actual
// could select a parameter of type parm.
// Unlike assignable, a union argument matches when any member
// matches: an un-narrowed union can reach several overloads,
// and reaching more than one is an ambiguity, not a mismatch.
// Absence stays strict: a Nullable argument never matches a
// parameter requiring presence.
func matches(actual, parm sig.Type) bool {
	if a, ok := actual.(sig.Nullable); ok {
		p, ok := parm.(sig.Nullable)
		return ok && matches(a.Elem, p.Elem)
	}
	if p, ok := parm.(sig.Nullable); ok {
		return matches(actual, p.Elem)
	}
	if a, ok := actual.(sig.Union); ok {
		for _, m := range a.Elems {
			if matches(m, parm) {
				return true
			}
		}
		return false
	}
	if p, ok := parm.(sig.Union); ok {
		for _, m := range p.Elems {
			if matches(actual, m) {
				return true
			}
		}
		return false
	}
	return sig.Equal(actual, parm)
}

func member(owner sig.Class, name string, kind sig.Kind) string {
	if kind == sig.CtorKind {
		return owner.Name
	}
	return owner.Name + "." + name
}

func typeList(types []sig.Type) string {
	var s strings.Builder
	for i, t := range types {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(t.String())
	}
	return s.String()
}
