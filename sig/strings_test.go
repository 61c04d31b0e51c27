package sig

import "testing"

func TestTypeString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ  Type
		want string
	}{
		{typ: i32, want: "int"},
		{typ: str, want: "java.lang.String"},
		{typ: Un(str, uri), want: "(U java.lang.String java.net.URI)"},
		{typ: Nilable(str), want: "(U java.lang.String nil)"},
		{
			typ:  Nilable(Un(str, uri)),
			want: "(U java.lang.String java.net.URI nil)",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.want, func(t *testing.T) {
			t.Parallel()
			if got := test.typ.String(); got != test.want {
				t.Errorf("got %s, want %s", got, test.want)
			}
		})
	}
}

func TestSigString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		sig  *Sig
		want string
	}{
		{
			sig:  Ctor("java.io.File", str),
			want: "java.io.File(java.lang.String)",
		},
		{
			sig:  Ctor("java.io.File"),
			want: "java.io.File()",
		},
		{
			sig:  Meth("java.io.File", "getParent", str),
			want: "java.io.File.getParent() (U java.lang.String nil)",
		},
		{
			sig:  Meth("java.io.File", "compareTo", i32, file),
			want: "java.io.File.compareTo(java.io.File) (U int nil)",
		},
		{
			sig:  Field("java.lang.System", "out", Class{Name: "java.io.PrintStream"}),
			want: "java.lang.System.out (U java.io.PrintStream nil)",
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.want, func(t *testing.T) {
			t.Parallel()
			if got := test.sig.String(); got != test.want {
				t.Errorf("got %s, want %s", got, test.want)
			}
		})
	}
}
