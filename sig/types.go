// Package sig holds the catalog of foreign signatures:
// the constructors, methods, and fields of the statically-typed
// interop target, together with their nullability.
package sig

// A Type is the static type of a foreign value
// or of a host expression flowing into a foreign call.
type Type interface {
	String() string
}

// A Prim is a primitive type of the foreign runtime.
type Prim struct {
	Name string
}

// A Class is a nominal reference type of the foreign runtime.
type Class struct {
	Name string
}

// A Union is an untagged union of two or more types.
// Unions built with Un are flattened, contain no duplicates,
// and contain no Nullable member.
type Union struct {
	Elems []Type
}

// A Nullable is a type whose value may be absent.
// The element of a Nullable is never itself Nullable.
type Nullable struct {
	Elem Type
}

// Un returns the canonical union of the given types:
// nested unions are flattened, duplicates are dropped,
// nullability is lifted to the outside,
// and a single-member union collapses to the member.
// The union of no types is nil.
func Un(elems ...Type) Type {
	var flat []Type
	var nilable bool
	var add func(t Type)
	add = func(t Type) {
		switch t := t.(type) {
		case nil:
			break
		case Union:
			for _, e := range t.Elems {
				add(e)
			}
		case Nullable:
			nilable = true
			add(t.Elem)
		default:
			for _, e := range flat {
				if Equal(e, t) {
					return
				}
			}
			flat = append(flat, t)
		}
	}
	for _, t := range elems {
		add(t)
	}
	var u Type
	switch len(flat) {
	case 0:
		return nil
	case 1:
		u = flat[0]
	default:
		u = Union{Elems: flat}
	}
	if nilable {
		return Nullable{Elem: u}
	}
	return u
}

// Nilable returns t marked as possibly absent.
// A Nullable type is returned unchanged.
func Nilable(t Type) Type {
	switch t := t.(type) {
	case nil:
		return nil
	case Nullable:
		return t
	default:
		return Nullable{Elem: t}
	}
}

// Strip returns t without its Nullable wrapper
// and whether t had one.
func Strip(t Type) (Type, bool) {
	if n, ok := t.(Nullable); ok {
		return n.Elem, true
	}
	return t, false
}

// Equal returns whether two types are the same type.
// Union equality is set equality: member order is insignificant.
func Equal(a, b Type) bool {
	switch a := a.(type) {
	case nil:
		return b == nil
	case Prim:
		b, ok := b.(Prim)
		return ok && a.Name == b.Name
	case Class:
		b, ok := b.(Class)
		return ok && a.Name == b.Name
	case Nullable:
		b, ok := b.(Nullable)
		return ok && Equal(a.Elem, b.Elem)
	case Union:
		b, ok := b.(Union)
		if !ok || len(a.Elems) != len(b.Elems) {
			return false
		}
		for _, e := range a.Elems {
			if !member(e, b) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func member(t Type, u Union) bool {
	for _, e := range u.Elems {
		if Equal(t, e) {
			return true
		}
	}
	return false
}
