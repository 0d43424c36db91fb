package modfile

import (
	"errors"
	"fmt"

	"go.starlark.net/syntax"
)

// fileOptions accept the whole Starlark statement set, top-level loops and
// conditionals included, and let globals be reassigned so that
// DEPS += [...] works.
var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// File is a parsed module file. A File can be evaluated once.
type File struct {
	Path string

	ast       *syntax.File
	evaluated bool
}

// Statements returns the number of top-level statements.
func (f *File) Statements() int {
	return len(f.ast.Stmts)
}

// Parse parses src as a module file. filename is used in positions only.
// Malformed input yields an error matching ErrSyntax.
func Parse(filename string, src []byte) (*File, error) {
	f, err := fileOptions.Parse(filename, src, 0)
	if err != nil {
		var serr syntax.Error
		if errors.As(err, &serr) {
			return nil, &Error{Pos: serr.Pos, Err: fmt.Errorf("%w: %s", ErrSyntax, serr.Msg)}
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return &File{Path: filename, ast: f}, nil
}
