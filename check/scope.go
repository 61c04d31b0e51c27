package check

import "github.com/jvmlint/jvmlint/sig"

// A Binding associates a name with a type within a lexical scope.
// Narrowing never mutates a Binding: branch scopes get fresh copies,
// and the join pushes a fresh merged copy.
type Binding struct {
	Name string
	Type sig.Type
}

type scope struct {
	*state
	up *scope

	// One of the following fields is non-nil.
	fun  *FunDef
	bind *Binding
}

func (x *scope) new() *scope {
	return &scope{state: x.state, up: x}
}

// push returns a child scope with name bound to typ.
func (x *scope) push(name string, typ sig.Type) *scope {
	y := x.new()
	y.bind = &Binding{Name: name, Type: typ}
	return y
}

func (x *scope) find(name string) *Binding {
	switch {
	case x == nil:
		return nil
	case x.bind != nil && x.bind.Name == name:
		return x.bind
	default:
		return x.up.find(name)
	}
}

func (x *scope) function() *FunDef {
	switch {
	case x == nil:
		return nil
	case x.fun != nil:
		return x.fun
	default:
		return x.up.function()
	}
}
