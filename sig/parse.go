package sig

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jvmlint/jvmlint/loc"
)

// Decls is a parsed declaration set:
// the signatures and overrides of one declaration file.
type Decls struct {
	Sigs      []*Sig
	Overrides []Override
}

// Load builds a frozen Catalog from the declaration set.
func (d *Decls) Load() (*Catalog, error) {
	return Load(d.Sigs, d.Overrides)
}

// ParseFile parses the declaration file at path.
func ParseFile(path string) (*Decls, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(path, f)
}

// Parse parses a declaration file.
// The format is line-oriented; # starts a comment. Lines are one of
// 	ctor OWNER (TYPE,...)
// 	meth OWNER NAME (TYPE,...) TYPE
// 	field OWNER NAME TYPE
// 	nonnil ctor|meth|field OWNER [NAME] ret|all|N
// 	cannil ctor|meth|field OWNER [NAME] ret|all|N
// A TYPE is a primitive name, a class name, or a | union of them;
// a trailing ? marks a parameter or return as possibly absent.
func Parse(path string, r io.Reader) (*Decls, error) {
	d := &Decls{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexRune(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		l := loc.In(path, line)
		var err error
		switch fields[0] {
		case "ctor":
			err = parseCtor(d, l, fields[1:])
		case "meth":
			err = parseMeth(d, l, fields[1:])
		case "field":
			err = parseField(d, l, fields[1:])
		case "nonnil":
			err = parseOverride(d, l, NonNil, fields[1:])
		case "cannil":
			err = parseOverride(d, l, CanNil, fields[1:])
		default:
			err = parseError(l, "unknown declaration %s", fields[0])
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return d, nil
}

func parseError(l loc.Loc, f string, vs ...interface{}) error {
	return fmt.Errorf("%s: %s", l, fmt.Sprintf(f, vs...))
}

func parseCtor(d *Decls, l loc.Loc, fields []string) error {
	if len(fields) != 2 {
		return parseError(l, "ctor wants OWNER (TYPE,...)")
	}
	parms, err := parseParms(l, fields[1])
	if err != nil {
		return err
	}
	d.Sigs = append(d.Sigs, &Sig{
		Kind:  CtorKind,
		Owner: Class{Name: fields[0]},
		Parms: parms,
		Ret:   Parm{Type: Class{Name: fields[0]}},
	})
	return nil
}

func parseMeth(d *Decls, l loc.Loc, fields []string) error {
	if len(fields) != 4 {
		return parseError(l, "meth wants OWNER NAME (TYPE,...) TYPE")
	}
	parms, err := parseParms(l, fields[2])
	if err != nil {
		return err
	}
	ret, err := parseParm(l, fields[3])
	if err != nil {
		return err
	}
	if !strings.HasSuffix(fields[3], "?") {
		// Method results are assumed possibly absent
		// unless an override says otherwise.
		ret.Nilable = true
	}
	d.Sigs = append(d.Sigs, &Sig{
		Kind:  MethKind,
		Owner: Class{Name: fields[0]},
		Name:  fields[1],
		Parms: parms,
		Ret:   ret,
	})
	return nil
}

func parseField(d *Decls, l loc.Loc, fields []string) error {
	if len(fields) != 3 {
		return parseError(l, "field wants OWNER NAME TYPE")
	}
	typ, err := parseParm(l, fields[2])
	if err != nil {
		return err
	}
	if !strings.HasSuffix(fields[2], "?") {
		typ.Nilable = true
	}
	d.Sigs = append(d.Sigs, &Sig{
		Kind:  FieldKind,
		Owner: Class{Name: fields[0]},
		Name:  fields[1],
		Ret:   typ,
	})
	return nil
}

func parseOverride(d *Decls, l loc.Loc, policy Policy, fields []string) error {
	if len(fields) < 3 {
		return parseError(l, "override wants ctor|meth|field OWNER [NAME] ret|all|N")
	}
	o := Override{Policy: policy}
	switch fields[0] {
	case "ctor":
		o.Kind = CtorKind
	case "meth":
		o.Kind = MethKind
	case "field":
		o.Kind = FieldKind
	default:
		return parseError(l, "unknown member kind %s", fields[0])
	}
	o.Owner = fields[1]
	rest := fields[2:]
	if o.Kind != CtorKind {
		if len(rest) < 2 {
			return parseError(l, "override of a %s wants OWNER NAME ret|all|N", o.Kind)
		}
		o.Name = rest[0]
		rest = rest[1:]
	}
	if len(rest) != 1 {
		return parseError(l, "override wants a single ret|all|N position")
	}
	switch pos := rest[0]; pos {
	case "ret":
		o.Axis = RetAxis
	case "all":
		o.Axis = ParmAxis
		o.Pos = AllParms
	default:
		n, err := strconv.Atoi(pos)
		if err != nil || n < 0 {
			return parseError(l, "bad override position %s", pos)
		}
		o.Axis = ParmAxis
		o.Pos = n
	}
	d.Overrides = append(d.Overrides, o)
	return nil
}

func parseParms(l loc.Loc, text string) ([]Parm, error) {
	if len(text) < 2 || text[0] != '(' || text[len(text)-1] != ')' {
		return nil, parseError(l, "malformed parameter list %s", text)
	}
	text = text[1 : len(text)-1]
	if text == "" {
		return nil, nil
	}
	var parms []Parm
	for _, part := range strings.Split(text, ",") {
		p, err := parseParm(l, strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		parms = append(parms, p)
	}
	return parms, nil
}

func parseParm(l loc.Loc, text string) (Parm, error) {
	var p Parm
	if strings.HasSuffix(text, "?") {
		p.Nilable = true
		text = text[:len(text)-1]
	}
	typ, err := parseType(l, text)
	if err != nil {
		return Parm{}, err
	}
	p.Type = typ
	return p, nil
}

var prims = map[string]bool{
	"boolean": true,
	"byte":    true,
	"char":    true,
	"short":   true,
	"int":     true,
	"long":    true,
	"float":   true,
	"double":  true,
	"void":    true,
}

func parseType(l loc.Loc, text string) (Type, error) {
	var elems []Type
	for _, part := range strings.Split(text, "|") {
		switch {
		case part == "":
			return nil, parseError(l, "malformed type %s", text)
		case prims[part]:
			elems = append(elems, Prim{Name: part})
		default:
			elems = append(elems, Class{Name: part})
		}
	}
	return Un(elems...), nil
}
