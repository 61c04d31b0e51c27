package sig

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	t.Parallel()
	const src = `
		# java.io.File interop surface
		ctor java.io.File (java.lang.String)
		ctor java.io.File (java.net.URI)
		meth java.io.File getParent () java.lang.String
		meth java.io.File compareTo (java.io.File) int
		meth java.io.File canonical () java.lang.String|java.net.URI
		field java.lang.System out java.io.PrintStream

		nonnil meth java.io.File getParent ret
		cannil meth java.io.File compareTo 0
		cannil ctor java.io.File all
	`
	want := &Decls{
		Sigs: []*Sig{
			Ctor("java.io.File", str),
			Ctor("java.io.File", uri),
			Meth("java.io.File", "getParent", str),
			Meth("java.io.File", "compareTo", i32, file),
			Meth("java.io.File", "canonical", Un(str, uri)),
			Field("java.lang.System", "out", Class{Name: "java.io.PrintStream"}),
		},
		Overrides: []Override{
			{Owner: "java.io.File", Name: "getParent", Kind: MethKind, Axis: RetAxis, Policy: NonNil},
			{Owner: "java.io.File", Name: "compareTo", Kind: MethKind, Axis: ParmAxis, Pos: 0, Policy: CanNil},
			{Owner: "java.io.File", Kind: CtorKind, Axis: ParmAxis, Pos: AllParms, Policy: CanNil},
		},
	}
	got, err := Parse("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse diff:\n%s", diff)
	}
}

func TestParseNilableMarks(t *testing.T) {
	t.Parallel()
	const src = `
		meth java.util.Map get (java.lang.Object) java.lang.Object?
		meth java.util.Map put (java.lang.Object?,java.lang.Object) java.lang.Object?
		field java.io.File separator java.lang.String?
	`
	got, err := Parse("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	get := got.Sigs[0]
	if !get.Ret.Nilable {
		t.Error("explicit ? on a method return parsed as non-nil")
	}
	put := got.Sigs[1]
	if !put.Parms[0].Nilable || put.Parms[1].Nilable {
		t.Errorf("put parameter nilability: got %v %v, want true false",
			put.Parms[0].Nilable, put.Parms[1].Nilable)
	}
	sep := got.Sigs[2]
	if !sep.Ret.Nilable {
		t.Error("explicit ? on a field parsed as non-nil")
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		src  string
		err  string // regexp
	}{
		{
			name: "unknown declaration",
			src:  "method java.io.File getParent () java.lang.String",
			err:  "1: unknown declaration method",
		},
		{
			name: "ctor arity",
			src:  "ctor java.io.File",
			err:  "ctor wants",
		},
		{
			name: "malformed parameter list",
			src:  "ctor java.io.File java.lang.String",
			err:  "malformed parameter list",
		},
		{
			name: "malformed type",
			src:  "meth java.io.File getParent () java.lang.String|",
			err:  "malformed type",
		},
		{
			name: "bad override position",
			src: `
				meth java.io.File getParent () java.lang.String
				nonnil meth java.io.File getParent -2
			`,
			err: "bad override position",
		},
		{
			name: "override kind",
			src:  "nonnil function java.io.File getParent ret",
			err:  "unknown member kind",
		},
		{
			name: "line number reported",
			src:  "\n\nctor java.io.File",
			err:  "^test:3: ",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			_, err := Parse("test", strings.NewReader(test.src))
			if err == nil {
				t.Fatalf("got nil, expected matching %s", test.err)
			}
			if !regexp.MustCompile(test.err).MatchString(err.Error()) {
				t.Errorf("got %v, expected matching %s", err, test.err)
			}
		})
	}
}

func TestParseLoad(t *testing.T) {
	t.Parallel()
	const src = `
		ctor java.io.File (java.lang.String)
		meth java.io.File getParent () java.lang.String
		nonnil meth java.io.File getParent ret
	`
	d, err := Parse("test", strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	c, err := d.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !c.Frozen() {
		t.Error("loaded catalog is not frozen")
	}
	meths := c.Lookup("java.io.File", "getParent", MethKind)
	if len(meths) != 1 {
		t.Fatalf("got %d overloads, want 1", len(meths))
	}
	if c.RetNilable(meths[0]) {
		t.Error("nonnil override not applied")
	}
}
