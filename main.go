// Jvmlint verifies foreign interop calls against declared signatures.
//
// This command is a debug utility:
// it loads the declaration files named on the command line
// (or standard input if none are named),
// prints every signature and override read,
// and reports whether the catalog loads cleanly.
package main

import (
	"fmt"
	"os"

	"github.com/eaburns/pretty"
	"github.com/jvmlint/jvmlint/sig"
)

func main() {
	pretty.Indent = "    "

	var decls []*sig.Decls
	if len(os.Args) == 1 {
		d, err := sig.Parse("", os.Stdin)
		if err != nil {
			die(err)
		}
		decls = append(decls, d)
	} else {
		for _, file := range os.Args[1:] {
			d, err := sig.ParseFile(file)
			if err != nil {
				die(err)
			}
			decls = append(decls, d)
		}
	}

	all := &sig.Decls{}
	for _, d := range decls {
		for _, s := range d.Sigs {
			fmt.Println(s)
			pretty.Print(s)
			fmt.Println("")
		}
		for _, o := range d.Overrides {
			pretty.Print(o)
			fmt.Println("")
		}
		all.Sigs = append(all.Sigs, d.Sigs...)
		all.Overrides = append(all.Overrides, d.Overrides...)
	}

	if _, err := all.Load(); err != nil {
		die(err)
	}
	fmt.Println("ok")
}

func die(err error) {
	fmt.Println(err)
	os.Exit(1)
}
