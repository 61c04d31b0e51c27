// Package loc has routines for tracking the locations of diagnostics.
package loc

import "fmt"

// A Loc describes where a declaration or expression came from.
// Units are built in memory, so a Loc is whatever the builder
// recorded: typically a file path and line, but either may be empty.
type Loc struct {
	Path string
	Line int
}

// In returns the Loc for the given path and line.
func In(path string, line int) Loc { return Loc{Path: path, Line: line} }

// GetLoc returns itself.
// This is useful so that Loc can be embedded in a struct
// and that struct can implement interface{GetLoc() Loc}.
func (l Loc) GetLoc() Loc { return l }

func (l Loc) String() string {
	switch {
	case l.Path == "" && l.Line == 0:
		return "?"
	case l.Line == 0:
		return l.Path
	case l.Path == "":
		return fmt.Sprintf("%d", l.Line)
	default:
		return fmt.Sprintf("%s:%d", l.Path, l.Line)
	}
}
