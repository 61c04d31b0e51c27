package sig

import "fmt"

type key struct {
	owner, name string
	kind        Kind
}

type okey struct {
	owner, name string
	kind        Kind
	axis        Axis
	pos         int
}

// A Catalog holds the known foreign signatures
// and their nullability overrides.
// Build the catalog fully, then Freeze it;
// a frozen catalog may be shared by concurrent checking passes.
type Catalog struct {
	sigs      map[key][]*Sig
	overrides map[okey]Policy
	frozen    bool
}

// New returns an empty, unfrozen Catalog.
func New() *Catalog {
	return &Catalog{
		sigs:      make(map[key][]*Sig),
		overrides: make(map[okey]Policy),
	}
}

// Load builds a frozen Catalog from a declaration set.
// The first malformed declaration or override is returned as an error
// and the whole catalog is rejected.
func Load(sigs []*Sig, overrides []Override) (*Catalog, error) {
	c := New()
	for _, s := range sigs {
		if err := c.Add(s); err != nil {
			return nil, err
		}
	}
	for _, o := range overrides {
		if err := c.AddOverride(o); err != nil {
			return nil, err
		}
	}
	c.Freeze()
	return c, nil
}

// Add registers a signature.
// It is an error to add to a frozen catalog,
// to redeclare an overload, or to add a malformed signature:
// declared parameter and return types must not be Nullable
// (declared nullability is the Parm.Nilable bit),
// constructors must be unnamed and return their owner, never absent,
// and fields must have no parameters.
func (c *Catalog) Add(s *Sig) error {
	if c.frozen {
		return fmt.Errorf("catalog is frozen")
	}
	if err := validate(s); err != nil {
		return err
	}
	k := key{owner: s.Owner.Name, name: s.Name, kind: s.Kind}
	for _, prev := range c.sigs[k] {
		if sameParms(prev, s) {
			return fmt.Errorf("%s %s redefined", s.Kind, s)
		}
	}
	c.sigs[k] = append(c.sigs[k], s)
	return nil
}

func validate(s *Sig) error {
	if s.Owner.Name == "" {
		return fmt.Errorf("%s with no owner", s.Kind)
	}
	for i, p := range s.Parms {
		if p.Type == nil {
			return fmt.Errorf("%s %s: parameter %d has no type", s.Kind, s, i)
		}
		if _, ok := p.Type.(Nullable); ok {
			return fmt.Errorf("%s %s: parameter %d declares a Nullable type", s.Kind, s, i)
		}
	}
	if _, ok := s.Ret.Type.(Nullable); ok {
		return fmt.Errorf("%s %s: return declares a Nullable type", s.Kind, s)
	}
	switch s.Kind {
	case CtorKind:
		switch {
		case s.Name != "":
			return fmt.Errorf("constructor %s is named", s)
		case s.Ret.Nilable:
			return fmt.Errorf("constructor %s result is marked absent", s)
		case !Equal(s.Ret.Type, s.Owner):
			return fmt.Errorf("constructor %s does not return its owner", s)
		}
	case MethKind:
		if s.Name == "" {
			return fmt.Errorf("method of %s with no name", s.Owner)
		}
		if s.Ret.Type == nil {
			return fmt.Errorf("method %s has no return type", s)
		}
	case FieldKind:
		switch {
		case s.Name == "":
			return fmt.Errorf("field of %s with no name", s.Owner)
		case len(s.Parms) > 0:
			return fmt.Errorf("field %s has parameters", s)
		case s.Ret.Type == nil:
			return fmt.Errorf("field %s has no type", s)
		}
	}
	return nil
}

func sameParms(a, b *Sig) bool {
	if len(a.Parms) != len(b.Parms) {
		return false
	}
	for i := range a.Parms {
		if !Equal(a.Parms[i].Type, b.Parms[i].Type) {
			return false
		}
	}
	return true
}

// AddOverride registers a nullability override.
// The target member must already be in the catalog,
// a ParmAxis position must exist on at least one overload,
// and a constructor result cannot be marked absent.
// Registering two different policies for the same position is an error.
func (c *Catalog) AddOverride(o Override) error {
	if c.frozen {
		return fmt.Errorf("catalog is frozen")
	}
	target := memberString(o.Owner, o.Name, o.Kind)
	sigs := c.sigs[key{owner: o.Owner, name: o.Name, kind: o.Kind}]
	if len(sigs) == 0 {
		return fmt.Errorf("override of unknown %s %s", o.Kind, target)
	}
	switch o.Axis {
	case ParmAxis:
		if o.Pos != AllParms {
			ok := false
			for _, s := range sigs {
				if o.Pos >= 0 && o.Pos < len(s.Parms) {
					ok = true
					break
				}
			}
			if !ok {
				return fmt.Errorf("override of %s: no overload has parameter %d", target, o.Pos)
			}
		}
	case RetAxis:
		if o.Kind == CtorKind && o.Policy == CanNil {
			return fmt.Errorf("override of %s: constructor result is never absent", target)
		}
		o.Pos = 0
	}
	k := okey{owner: o.Owner, name: o.Name, kind: o.Kind, axis: o.Axis, pos: o.Pos}
	if prev, ok := c.overrides[k]; ok && prev != o.Policy {
		return fmt.Errorf("override of %s %s redefined", target, o.Axis)
	}
	c.overrides[k] = o.Policy
	return nil
}

// Freeze makes the catalog read-only.
// Add and AddOverride fail after Freeze;
// lookups on a frozen catalog are safe from concurrent passes.
func (c *Catalog) Freeze() { c.frozen = true }

// Frozen returns whether the catalog is frozen.
func (c *Catalog) Frozen() bool { return c.frozen }

// Lookup returns all overloads of a member, or nil if there are none.
// Constructors are looked up with an empty name.
func (c *Catalog) Lookup(owner, name string, kind Kind) []*Sig {
	return c.sigs[key{owner: owner, name: name, kind: kind}]
}

// ParmNilable returns the effective nullability of parameter i of s:
// the override policy if one is registered for the position
// (or for all positions), else the declared bit,
// which defaults to assumed-present.
func (c *Catalog) ParmNilable(s *Sig, i int) bool {
	k := okey{owner: s.Owner.Name, name: s.Name, kind: s.Kind, axis: ParmAxis, pos: i}
	if p, ok := c.overrides[k]; ok {
		return p == CanNil
	}
	k.pos = AllParms
	if p, ok := c.overrides[k]; ok {
		return p == CanNil
	}
	return s.Parms[i].Nilable
}

// RetNilable returns the effective nullability of the result of s:
// the override policy if one is registered, else the declared bit,
// which defaults to possibly-absent for methods and fields
// and never-absent for constructors.
func (c *Catalog) RetNilable(s *Sig) bool {
	k := okey{owner: s.Owner.Name, name: s.Name, kind: s.Kind, axis: RetAxis}
	if p, ok := c.overrides[k]; ok {
		return p == CanNil
	}
	return s.Ret.Nilable
}
