package check

import (
	"testing"

	"github.com/jvmlint/jvmlint/loc"
	"github.com/jvmlint/jvmlint/sig"
)

func testScope(t *testing.T) *scope {
	t.Helper()
	unit := &Unit{Name: "test"}
	return &scope{state: newState(Config{}, unit)}
}

var testNode = Pred{Loc: loc.In("test", 1)}

func TestNarrow(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		typ       sig.Type
		is        sig.Type
		wantTrue  sig.Type // nil means ImpossibleType
		wantFalse sig.Type // nil means ImpossibleType
	}{
		{
			name:      "two-member union",
			typ:       sig.Un(uri, str),
			is:        str,
			wantTrue:  str,
			wantFalse: uri,
		},
		{
			name:      "three-member union keeps the rest",
			typ:       sig.Un(uri, str, file),
			is:        uri,
			wantTrue:  uri,
			wantFalse: sig.Un(str, file),
		},
		{
			name:      "non-member test",
			typ:       sig.Un(uri, str),
			is:        file,
			wantTrue:  nil,
			wantFalse: sig.Un(uri, str),
		},
		{
			name:      "sole member test",
			typ:       str,
			is:        str,
			wantTrue:  str,
			wantFalse: nil,
		},
		{
			name:      "nullable union proves presence on true",
			typ:       sig.Nilable(sig.Un(uri, str)),
			is:        str,
			wantTrue:  str,
			wantFalse: sig.Nilable(uri),
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			x := testScope(t)
			b := &Binding{Name: "s", Type: test.typ}

			got, err := narrow(x, testNode, b, test.is, true)
			switch {
			case test.wantTrue == nil && err == nil:
				t.Errorf("true branch: got %v, expected impossible type", got.Type)
			case test.wantTrue == nil && err.kind != ImpossibleType:
				t.Errorf("true branch: got kind %v, want %v", err.kind, ImpossibleType)
			case test.wantTrue != nil && err != nil:
				t.Errorf("true branch: got %v, expected nil", err)
			case test.wantTrue != nil && !sig.Equal(got.Type, test.wantTrue):
				t.Errorf("true branch: got %v, want %v", got.Type, test.wantTrue)
			}

			got, err = narrow(x, testNode, b, test.is, false)
			switch {
			case test.wantFalse == nil && err == nil:
				t.Errorf("false branch: got %v, expected impossible type", got.Type)
			case test.wantFalse == nil && err.kind != ImpossibleType:
				t.Errorf("false branch: got kind %v, want %v", err.kind, ImpossibleType)
			case test.wantFalse != nil && err != nil:
				t.Errorf("false branch: got %v, expected nil", err)
			case test.wantFalse != nil && !sig.Equal(got.Type, test.wantFalse):
				t.Errorf("false branch: got %v, want %v", got.Type, test.wantFalse)
			}

			// Binding values are copied, never narrowed in place.
			if !sig.Equal(b.Type, test.typ) {
				t.Errorf("binding mutated: %v became %v", test.typ, b.Type)
			}
		})
	}
}

// A two-way split rejoined at the merge point reconstructs
// the original union.
func TestNarrowMergeRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		typ  sig.Type
		is   sig.Type
	}{
		{name: "two members", typ: sig.Un(uri, str), is: str},
		{name: "three members", typ: sig.Un(uri, str, file), is: file},
		{name: "primitive member", typ: sig.Un(str, i32), is: i32},
		{name: "nullable union", typ: sig.Nilable(sig.Un(uri, str)), is: str},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			x := testScope(t)
			b := &Binding{Name: "s", Type: test.typ}
			thenB, err := narrow(x, testNode, b, test.is, true)
			if err != nil {
				t.Fatalf("true branch failed: %v", err)
			}
			elseB, err := narrow(x, testNode, b, test.is, false)
			if err != nil {
				t.Fatalf("false branch failed: %v", err)
			}
			if got := merge(thenB, elseB); !sig.Equal(got.Type, test.typ) {
				t.Errorf("got %v, want %v", got.Type, test.typ)
			}
		})
	}
}
