// Package check verifies the foreign interop calls of a unit
// against a catalog of foreign signatures:
// it resolves constructor and method overloads,
// narrows union-typed bindings along predicate branches,
// and tracks which values may be absent.
package check

import (
	"github.com/jvmlint/jvmlint/loc"
	"github.com/jvmlint/jvmlint/sig"
)

// A Node is a node of the unit tree with location information.
type Node interface {
	GetLoc() loc.Loc
}

// A Unit is one independently checkable collection of definitions.
// A Unit is built in memory by an external loader;
// the checker never mutates it.
type Unit struct {
	Name string
	Funs []*FunDef
}

// A FunDef is a host-language function definition
// with annotated parameter types.
// Ret is nil if the function declares no result type.
type FunDef struct {
	loc.Loc
	Name  string
	Parms []Parm
	Ret   sig.Type
	Body  []Stmt
}

// A Parm is an annotated function parameter.
type Parm struct {
	Name string
	Type sig.Type
}

// A Stmt is a statement.
type Stmt interface {
	Node
}

// A Ret is a return statement.
type Ret struct {
	loc.Loc
	Val Expr
}

// An Assign binds the value of an expression to a name.
// Type is the declared type of the name, or nil to take
// the type of the expression.
type Assign struct {
	loc.Loc
	Name string
	Type sig.Type
	Expr Expr
}

// An If branches on a predicate test.
// The tested binding is narrowed in each branch
// and the branch types are merged at the join.
type If struct {
	loc.Loc
	Cond Pred
	Then []Stmt
	Else []Stmt
}

// A Pred is a type-membership test on a named binding:
// the host language's string?-style predicates,
// modeled statically as a test of the Is member of a union.
type Pred struct {
	loc.Loc
	Name string
	Is   sig.Type
}

// An ExprStmt evaluates an expression for its effect.
type ExprStmt struct {
	loc.Loc
	Expr Expr
}

// An Expr is an expression.
type Expr interface {
	Node
}

// An Ident is a bound name as an expression.
type Ident struct {
	loc.Loc
	Name string
}

// A New is a foreign constructor invocation.
type New struct {
	loc.Loc
	Class sig.Class
	Args  []Expr
}

// A Call is a foreign instance method invocation.
type Call struct {
	loc.Loc
	Recv Expr
	Name string
	Args []Expr
}

// A StaticCall is a foreign static method invocation,
// qualified by its owner.
type StaticCall struct {
	loc.Loc
	Owner sig.Class
	Name  string
	Args  []Expr
}

// A Get is a foreign field read.
type Get struct {
	loc.Loc
	Recv Expr
	Name string
}

// A StaticGet is a foreign static field read,
// qualified by its owner.
type StaticGet struct {
	loc.Loc
	Owner sig.Class
	Name  string
}

// A StrLit is a host string literal.
// Host strings are the foreign runtime's string class.
type StrLit struct {
	loc.Loc
	Data string
}

// An IntLit is a host integer literal.
type IntLit struct {
	loc.Loc
	Val int64
}
