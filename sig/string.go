package sig

import "strings"

func (t Prim) String() string  { return t.Name }
func (t Class) String() string { return t.Name }

// Unions and possibly-absent types print in the host language's
// union syntax: (U a b), with absence as a trailing nil member.
func (t Union) String() string {
	var s strings.Builder
	buildUnionString(t.Elems, false, &s)
	return s.String()
}

func (t Nullable) String() string {
	var s strings.Builder
	if u, ok := t.Elem.(Union); ok {
		buildUnionString(u.Elems, true, &s)
	} else {
		buildUnionString([]Type{t.Elem}, true, &s)
	}
	return s.String()
}

func buildUnionString(elems []Type, nilable bool, s *strings.Builder) {
	s.WriteString("(U")
	for _, e := range elems {
		s.WriteRune(' ')
		s.WriteString(e.String())
	}
	if nilable {
		s.WriteString(" nil")
	}
	s.WriteRune(')')
}

func (s *Sig) String() string {
	var b strings.Builder
	b.WriteString(memberString(s.Owner.Name, s.Name, s.Kind))
	if s.Kind != FieldKind {
		b.WriteRune('(')
		for i, p := range s.Parms {
			if i > 0 {
				b.WriteString(", ")
			}
			buildParmString(p, &b)
		}
		b.WriteRune(')')
	}
	if s.Kind != CtorKind {
		b.WriteRune(' ')
		buildParmString(s.Ret, &b)
	}
	return b.String()
}

func buildParmString(p Parm, s *strings.Builder) {
	if p.Nilable {
		s.WriteString(Nilable(p.Type).String())
		return
	}
	s.WriteString(p.Type.String())
}

func memberString(owner, name string, kind Kind) string {
	if kind == CtorKind {
		return owner
	}
	return owner + "." + name
}
