package sig

// A Kind says which kind of foreign member a Sig declares.
type Kind int

const (
	// CtorKind is a constructor.
	CtorKind Kind = iota
	// MethKind is a method, static or instance.
	MethKind
	// FieldKind is a field, static or instance.
	FieldKind
)

func (k Kind) String() string {
	switch k {
	case CtorKind:
		return "constructor"
	case MethKind:
		return "method"
	case FieldKind:
		return "field"
	default:
		panic("impossible kind")
	}
}

// A Parm is one parameter or the return of a Sig:
// a declared type and whether the position may hold an absent value.
type Parm struct {
	Type    Type
	Nilable bool
}

// A Sig is the declared signature of one foreign member.
// Constructors have an empty Name and a non-nilable Ret.
// Fields have no Parms; their Ret is the field type.
type Sig struct {
	Kind  Kind
	Owner Class
	Name  string
	Parms []Parm
	Ret   Parm
}

// Ctor returns a constructor signature for owner.
// The parameters are assumed present and the result is never absent.
func Ctor(owner string, parms ...Type) *Sig {
	return &Sig{
		Kind:  CtorKind,
		Owner: Class{Name: owner},
		Parms: mkParms(parms),
		Ret:   Parm{Type: Class{Name: owner}},
	}
}

// Meth returns a method signature for owner.
// The parameters are assumed present
// and the result is assumed possibly absent.
func Meth(owner, name string, ret Type, parms ...Type) *Sig {
	return &Sig{
		Kind:  MethKind,
		Owner: Class{Name: owner},
		Name:  name,
		Parms: mkParms(parms),
		Ret:   Parm{Type: ret, Nilable: true},
	}
}

// Field returns a field signature for owner.
// The field value is assumed possibly absent.
func Field(owner, name string, typ Type) *Sig {
	return &Sig{
		Kind:  FieldKind,
		Owner: Class{Name: owner},
		Name:  name,
		Ret:   Parm{Type: typ, Nilable: true},
	}
}

func mkParms(types []Type) []Parm {
	if len(types) == 0 {
		return nil
	}
	parms := make([]Parm, len(types))
	for i, t := range types {
		parms[i] = Parm{Type: t}
	}
	return parms
}

// An Axis says which positions of a Sig an Override applies to.
type Axis int

const (
	// ParmAxis is the parameter position selected by Override.Pos.
	ParmAxis Axis = iota
	// RetAxis is the return position.
	RetAxis
)

func (a Axis) String() string {
	switch a {
	case ParmAxis:
		return "parameter"
	case RetAxis:
		return "return"
	default:
		panic("impossible axis")
	}
}

// A Policy is the nullability an Override imposes.
type Policy int

const (
	// NonNil marks the position as never absent.
	NonNil Policy = iota
	// CanNil marks the position as possibly absent.
	CanNil
)

func (p Policy) String() string {
	switch p {
	case NonNil:
		return "non-nil"
	case CanNil:
		return "can-nil"
	default:
		panic("impossible policy")
	}
}

// AllParms is the Override.Pos value selecting every parameter position.
const AllParms = -1

// An Override changes the effective nullability of one axis
// of a foreign member. Overrides are identified by owner, member
// name, and kind: an override applies to every overload of the member.
// Pos selects a parameter position for ParmAxis
// (AllParms for every position) and is ignored for RetAxis.
type Override struct {
	Owner  string
	Name   string
	Kind   Kind
	Axis   Axis
	Pos    int
	Policy Policy
}
