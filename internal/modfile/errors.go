package modfile

import (
	"errors"
	"fmt"
	"strings"

	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Error classes returned by Parse and Evaluate. Use errors.Is to test for them.
var (
	ErrSyntax             = errors.New("syntax error")
	ErrUnknownDeclaration = errors.New("unrecognized declaration")
	ErrMissingArgument    = errors.New("missing argument")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnsupported        = errors.New("unsupported construct")
	ErrEvaluation         = errors.New("evaluation failed")
)

// declarationErrors are the classes raised by the declarations themselves.
var declarationErrors = []error{ErrUnknownDeclaration, ErrMissingArgument, ErrInvalidArgument}

// Error is a failure located at a position in a module file.
type Error struct {
	Pos syntax.Position
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// errorAt builds a positioned error whose message starts with the class name,
// e.g. "MODULE.bazel:3:1: unrecognized declaration: foo".
func errorAt(pos syntax.Position, class error, format string, args ...any) error {
	return &Error{
		Pos: pos,
		Err: fmt.Errorf("%w: %s", class, fmt.Sprintf(format, args...)),
	}
}

// fromResolve classifies a resolver failure. Names the file uses but never
// binds are unrecognized declarations; anything else is a static error in
// the file's structure.
func fromResolve(err error, predeclared starlark.StringDict) error {
	var list resolve.ErrorList
	if !errors.As(err, &list) || len(list) == 0 {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	first := list[0]
	if rest, ok := strings.CutPrefix(first.Msg, "undefined: "); ok {
		name, _, _ := strings.Cut(rest, " ")
		return errorAt(first.Pos, ErrUnknownDeclaration, "%s is not a recognized module declaration (recognized: %s)",
			name, strings.Join(predeclared.Keys(), ", "))
	}
	return errorAt(first.Pos, ErrSyntax, "%s", first.Msg)
}

// fromEval classifies a failure raised while the file runs. Errors from the
// declarations keep their class; Starlark runtime errors (type mismatches,
// fail(), the step limit) become ErrEvaluation.
func fromEval(err error) error {
	var ev *starlark.EvalError
	if !errors.As(err, &ev) {
		return fmt.Errorf("%w: %v", ErrEvaluation, err)
	}
	pos := sourcePos(ev.CallStack)
	for _, class := range declarationErrors {
		if errors.Is(ev, class) {
			return &Error{Pos: pos, Err: ev.Unwrap()}
		}
	}
	return errorAt(pos, ErrEvaluation, "%s", ev.Msg)
}

// sourcePos returns the innermost position of the stack that lies in the
// module file rather than in a built-in.
func sourcePos(stack starlark.CallStack) syntax.Position {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i].Pos.Filename() != "<builtin>" {
			return stack[i].Pos
		}
	}
	return syntax.Position{}
}
