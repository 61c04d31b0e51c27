package check

import (
	"fmt"
	"reflect"

	"github.com/jvmlint/jvmlint/sig"
)

// Config are configuration parameters for a checking pass.
type Config struct {
	// Catalog is the catalog of foreign signatures.
	// Check freezes it if the caller has not already done so;
	// a frozen catalog may be shared by concurrent passes.
	// The default is an empty catalog: every call site is unknown.
	Catalog *sig.Catalog
	// Trace is whether to enable debug tracing.
	Trace bool
}

type state struct {
	unit *Unit
	cfg  Config

	indent string
}

func newState(cfg Config, unit *Unit) *state {
	x := &state{unit: unit, cfg: cfg}
	if x.cfg.Catalog == nil {
		x.cfg.Catalog = sig.New()
	}
	if !x.cfg.Catalog.Frozen() {
		x.cfg.Catalog.Freeze()
	}
	return x
}

func (x *state) err(n Node, f string, vs ...interface{}) *checkError {
	return &checkError{loc: n.GetLoc(), msg: fmt.Sprintf(f, vs...)}
}

// The argument to the returned function,
// if non-empty, only the first element of vs is used.
// It must be a either pointer to a slice of types convertable to error,
// or a pointer to a type convertable to error.
func (x *state) tr(f string, vs ...interface{}) func(...interface{}) {
	if !x.cfg.Trace {
		return func(...interface{}) {}
	}
	x.log(f, vs...)
	olddent := x.indent
	x.indent += "---"
	return func(errs ...interface{}) {
		defer func() { x.indent = olddent }()
		if len(errs) == 0 {
			return
		}
		v := reflect.ValueOf(errs[0])
		if v.IsNil() || v.Elem().Kind() == reflect.Slice && v.Elem().Len() == 0 {
			return
		}
		x.log("%v", v.Elem().Interface())
	}
}

func (x *state) log(f string, vs ...interface{}) {
	if !x.cfg.Trace {
		return
	}
	fmt.Printf(x.indent)
	fmt.Printf(f, vs...)
	fmt.Println("")
}
