package check

import (
	"fmt"

	"github.com/jvmlint/jvmlint/sig"
)

// Check checks every foreign interop call of a unit against
// cfg.Catalog and returns the diagnostics found, in production
// order: the walk is post-order, so the diagnostic of an inner
// expression precedes those of the expressions enclosing it.
// An empty result means the unit checked cleanly.
func Check(unit *Unit, cfg Config) []Diagnostic {
	x := &scope{state: newState(cfg, unit)}
	return convertErrors(checkUnit(x, unit))
}

// CheckUnit runs a full pass from a raw declaration set:
// it loads the declarations and overrides into a fresh frozen
// catalog, walks the unit, and reports.
// A malformed declaration aborts the pass with a single BadDecl
// diagnostic; the walk never runs against a bad catalog.
func CheckUnit(unit *Unit, decls []*sig.Sig, overrides []sig.Override, cfg Config) []Diagnostic {
	cat, err := sig.Load(decls, overrides)
	if err != nil {
		return []Diagnostic{{Kind: BadDecl, Msg: err.Error()}}
	}
	cfg.Catalog = cat
	return Check(unit, cfg)
}

func checkUnit(x *scope, unit *Unit) (errs []checkError) {
	defer x.tr("checkUnit(%s)", unit.Name)(&errs)
	for _, fun := range unit.Funs {
		errs = append(errs, checkFun(x, fun)...)
	}
	return errs
}

func checkFun(x *scope, fun *FunDef) (errs []checkError) {
	defer x.tr("checkFun(%s)", fun.Name)(&errs)
	y := x.new()
	y.fun = fun
	for _, p := range fun.Parms {
		y = y.push(p.Name, p.Type)
	}
	_, es := checkStmts(y, fun.Body)
	return append(errs, es...)
}

// checkStmts checks a statement sequence, threading the scope:
// an Assign extends the scope of the statements after it,
// and an If rebinds its tested name to the merged branch types.
func checkStmts(x *scope, stmts []Stmt) (*scope, []checkError) {
	var errs []checkError
	for _, stmt := range stmts {
		var es []checkError
		x, es = checkStmt(x, stmt)
		errs = append(errs, es...)
	}
	return x, errs
}

func checkStmt(x *scope, stmt Stmt) (*scope, []checkError) {
	switch stmt := stmt.(type) {
	case *Ret:
		return x, checkRet(x, stmt)
	case *Assign:
		return checkAssign(x, stmt)
	case *If:
		return checkIf(x, stmt)
	case *ExprStmt:
		_, errs := checkExpr(x, stmt.Expr)
		return x, errs
	default:
		panic(fmt.Sprintf("impossible type: %T", stmt))
	}
}

func checkRet(x *scope, stmt *Ret) (errs []checkError) {
	defer x.tr("checkRet")(&errs)
	fun := x.function()
	if fun == nil {
		err := x.err(stmt, "return outside of a function")
		err.kind = UnknownBinding
		return append(errs, *err)
	}
	if stmt.Val == nil {
		if fun.Ret != nil {
			err := x.err(stmt, "missing return value, want %s", fun.Ret)
			err.kind = TypeMismatch
			err.expected = fun.Ret
			errs = append(errs, *err)
		}
		return errs
	}
	typ, errs := checkExpr(x, stmt.Val)
	if err := checkAssignable(x, stmt.Val, typ, fun.Ret); err != nil {
		errs = append(errs, *err)
	}
	return errs
}

func checkAssign(x *scope, stmt *Assign) (*scope, []checkError) {
	typ, errs := checkExpr(x, stmt.Expr)
	if stmt.Type != nil {
		if err := checkAssignable(x, stmt.Expr, typ, stmt.Type); err != nil {
			errs = append(errs, *err)
		}
		typ = stmt.Type
	}
	return x.push(stmt.Name, typ), errs
}

func checkIf(x *scope, stmt *If) (_ *scope, errs []checkError) {
	defer x.tr("checkIf(%s is %s)", stmt.Cond.Name, stmt.Cond.Is)(&errs)

	b := x.find(stmt.Cond.Name)
	if b == nil {
		err := x.err(&stmt.Cond, "%s undefined", stmt.Cond.Name)
		err.kind = UnknownBinding
		errs = append(errs, *err)
		_, es := checkStmts(x, stmt.Then)
		errs = append(errs, es...)
		_, es = checkStmts(x, stmt.Else)
		return x, append(errs, es...)
	}

	thenB, err := narrow(x, &stmt.Cond, b, stmt.Cond.Is, true)
	if err != nil {
		errs = append(errs, *err)
	}
	elseB, err := narrow(x, &stmt.Cond, b, stmt.Cond.Is, false)
	if err != nil {
		errs = append(errs, *err)
	}

	// A branch whose narrowing failed is checked best-effort
	// with the binding unrefined.
	thenX := x
	if thenB != nil {
		thenX = x.push(thenB.Name, thenB.Type)
	}
	_, es := checkStmts(thenX, stmt.Then)
	errs = append(errs, es...)

	elseX := x
	if elseB != nil {
		elseX = x.push(elseB.Name, elseB.Type)
	}
	_, es = checkStmts(elseX, stmt.Else)
	errs = append(errs, es...)

	if thenB != nil && elseB != nil {
		m := merge(thenB, elseB)
		x = x.push(m.Name, m.Type)
	}
	return x, errs
}

// checkExpr returns the static type of an expression,
// or nil if the expression failed to check.
// A nil type is never re-reported by enclosing expressions:
// the diagnostic of the innermost failure stands alone.
func checkExpr(x *scope, expr Expr) (typ sig.Type, errs []checkError) {
	defer x.tr("checkExpr(%T)", expr)(&errs)
	switch expr := expr.(type) {
	case *Ident:
		b := x.find(expr.Name)
		if b == nil {
			err := x.err(expr, "%s undefined", expr.Name)
			err.kind = UnknownBinding
			return nil, append(errs, *err)
		}
		return b.Type, nil
	case *StrLit:
		return sig.Class{Name: "java.lang.String"}, nil
	case *IntLit:
		return sig.Prim{Name: "long"}, nil
	case *New:
		return checkNew(x, expr)
	case *Call:
		return checkCall(x, expr)
	case *StaticCall:
		return checkMember(x, expr, expr.Owner, expr.Name, sig.MethKind, expr.Args)
	case *Get:
		return checkGet(x, expr)
	case *StaticGet:
		return checkMember(x, expr, expr.Owner, expr.Name, sig.FieldKind, nil)
	default:
		panic(fmt.Sprintf("impossible type: %T", expr))
	}
}

func checkNew(x *scope, expr *New) (sig.Type, []checkError) {
	return checkMember(x, expr, expr.Class, "", sig.CtorKind, expr.Args)
}

func checkCall(x *scope, expr *Call) (sig.Type, []checkError) {
	owner, errs := checkRecv(x, expr, expr.Recv, expr.Name)
	if owner == nil {
		_, es := checkArgs(x, expr.Args)
		return nil, append(errs, es...)
	}
	typ, es := checkMember(x, expr, *owner, expr.Name, sig.MethKind, expr.Args)
	return typ, append(errs, es...)
}

func checkGet(x *scope, expr *Get) (sig.Type, []checkError) {
	owner, errs := checkRecv(x, expr, expr.Recv, expr.Name)
	if owner == nil {
		return nil, errs
	}
	typ, es := checkMember(x, expr, *owner, expr.Name, sig.FieldKind, nil)
	return typ, append(errs, es...)
}

// checkRecv checks the receiver of an instance member access.
// The receiver position requires presence: a possibly-absent
// receiver is a TypeMismatch, and the access then proceeds
// best-effort on the present type.
func checkRecv(x *scope, n Node, recv Expr, name string) (*sig.Class, []checkError) {
	typ, errs := checkExpr(x, recv)
	if typ == nil {
		return nil, errs
	}
	elem, wasNil := sig.Strip(typ)
	if wasNil {
		if err := checkAssignable(x, recv, typ, elem); err != nil {
			errs = append(errs, *err)
		}
	}
	cls, ok := elem.(sig.Class)
	if !ok {
		err := x.err(n, "%s of non-class type %s undefined", name, elem)
		err.kind = UnknownSignature
		return nil, append(errs, *err)
	}
	return &cls, errs
}

func checkMember(x *scope, n Node, owner sig.Class, name string, kind sig.Kind, args []Expr) (sig.Type, []checkError) {
	argTypes, errs := checkArgs(x, args)
	for _, t := range argTypes {
		if t == nil {
			// An argument already failed to check;
			// resolving against it would only cascade.
			return nil, errs
		}
	}
	s, err := resolve(x, n, owner, name, kind, argTypes)
	if err != nil {
		return nil, append(errs, *err)
	}
	// Resolution found the overload the call reaches;
	// each argument must still soundly fit its parameter.
	for i, t := range argTypes {
		if err := checkAssignable(x, args[i], t, parmType(x.cfg.Catalog, s, i)); err != nil {
			errs = append(errs, *err)
		}
	}
	return retType(x.cfg.Catalog, s), errs
}

func checkArgs(x *scope, args []Expr) ([]sig.Type, []checkError) {
	var errs []checkError
	types := make([]sig.Type, len(args))
	for i, arg := range args {
		var es []checkError
		types[i], es = checkExpr(x, arg)
		errs = append(errs, es...)
	}
	return types, errs
}
