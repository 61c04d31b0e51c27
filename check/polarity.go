package check

import "github.com/jvmlint/jvmlint/sig"

// assignable returns whether a value of type actual
// can flow into a position of type expected.
// A nil expected type admits anything.
// Nullable(T) fits only a Nullable expected whose element admits T:
// a bare expected type rejects a possibly-absent value unconditionally.
// A Union actual fits only if every member fits;
// a Union expected admits an actual that some member admits.
func assignable(actual, expected sig.Type) bool {
	if expected == nil {
		return true
	}
	if a, ok := actual.(sig.Nullable); ok {
		e, ok := expected.(sig.Nullable)
		return ok && assignable(a.Elem, e.Elem)
	}
	if e, ok := expected.(sig.Nullable); ok {
		return assignable(actual, e.Elem)
	}
	if a, ok := actual.(sig.Union); ok {
		for _, m := range a.Elems {
			if !assignable(m, expected) {
				return false
			}
		}
		return true
	}
	if e, ok := expected.(sig.Union); ok {
		for _, m := range e.Elems {
			if assignable(actual, m) {
				return true
			}
		}
		return false
	}
	return sig.Equal(actual, expected)
}

// checkAssignable returns a TypeMismatch error if actual cannot
// flow into expected, and nil otherwise.
// A nil actual means the expression already failed to check;
// it is not reported again here.
func checkAssignable(x *scope, n Node, actual, expected sig.Type) *checkError {
	if actual == nil || expected == nil || assignable(actual, expected) {
		return nil
	}
	err := x.err(n, "type mismatch: have %s, want %s", actual, expected)
	err.kind = TypeMismatch
	err.actual = actual
	err.expected = expected
	return err
}

// retType is the type a call of s produces:
// the declared return type, wrapped in Nullable
// when the catalog says the result may be absent.
// Signatures are never mutated; the wrap happens here.
func retType(cat *sig.Catalog, s *sig.Sig) sig.Type {
	if cat.RetNilable(s) {
		return sig.Nilable(s.Ret.Type)
	}
	return s.Ret.Type
}

// parmType is the type parameter i of s accepts:
// the declared parameter type, wrapped in Nullable
// when the catalog says the position tolerates absence.
func parmType(cat *sig.Catalog, s *sig.Sig, i int) sig.Type {
	if cat.ParmNilable(s, i) {
		return sig.Nilable(s.Parms[i].Type)
	}
	return s.Parms[i].Type
}
