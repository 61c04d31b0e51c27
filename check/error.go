package check

import (
	"fmt"
	"strings"

	"github.com/jvmlint/jvmlint/loc"
	"github.com/jvmlint/jvmlint/sig"
)

// A DiagKind classifies a Diagnostic.
type DiagKind int

const (
	// UnknownSignature reports a call site naming a member
	// with no catalog entry or with no overload
	// matching the argument types.
	UnknownSignature DiagKind = iota
	// AmbiguousResolution reports a call site
	// matched by more than one overload.
	AmbiguousResolution
	// TypeMismatch reports a value flowing into a position
	// that cannot hold it.
	TypeMismatch
	// ImpossibleType reports a narrowing that produced an empty type.
	// The declared annotations, not the call site, are wrong.
	ImpossibleType
	// UnknownBinding reports a use of a name with no binding in scope.
	UnknownBinding
	// BadDecl reports a malformed declaration set.
	// The pass was aborted; it is the only diagnostic of the pass.
	BadDecl
)

func (k DiagKind) String() string {
	switch k {
	case UnknownSignature:
		return "unknown signature"
	case AmbiguousResolution:
		return "ambiguous resolution"
	case TypeMismatch:
		return "type mismatch"
	case ImpossibleType:
		return "impossible type"
	case UnknownBinding:
		return "unknown binding"
	case BadDecl:
		return "bad declaration"
	default:
		panic("impossible kind")
	}
}

// A Diagnostic reports one error found during a checking pass.
// Expected and Actual are non-nil only for a TypeMismatch.
// Diagnostics are never mutated after the pass returns them.
type Diagnostic struct {
	Loc      loc.Loc
	Kind     DiagKind
	Expected sig.Type
	Actual   sig.Type
	Msg      string
	Notes    []string
}

func (d *Diagnostic) String() string {
	var s strings.Builder
	s.WriteString(d.Loc.String())
	s.WriteString(": ")
	s.WriteString(d.Msg)
	for _, n := range d.Notes {
		s.WriteString("\n\t")
		s.WriteString(n)
	}
	return s.String()
}

type checkError struct {
	loc      loc.Loc
	kind     DiagKind
	expected sig.Type
	actual   sig.Type
	msg      string
	notes    []string
}

func note(err *checkError, f string, vs ...interface{}) {
	err.notes = append(err.notes, fmt.Sprintf(f, vs...))
}

func (err *checkError) Error() string {
	var s strings.Builder
	s.WriteString(err.loc.String())
	s.WriteString(": ")
	s.WriteString(err.msg)
	for _, n := range err.notes {
		s.WriteString("\n\t")
		s.WriteString(n)
	}
	return s.String()
}

// convertErrors converts accumulated errors to Diagnostics.
// Production order is kept: the walk is post-order,
// so the diagnostic of an inner expression
// precedes those of the expressions enclosing it.
// Duplicates of the same location and message are dropped.
func convertErrors(cerrs []checkError) []Diagnostic {
	var diags []Diagnostic
	seen := make(map[string]bool)
	for i := range cerrs {
		err := &cerrs[i]
		id := err.loc.String() + "\x00" + err.msg
		if seen[id] {
			continue
		}
		seen[id] = true
		diags = append(diags, Diagnostic{
			Loc:      err.loc,
			Kind:     err.kind,
			Expected: err.expected,
			Actual:   err.actual,
			Msg:      err.msg,
			Notes:    err.notes,
		})
	}
	return diags
}
