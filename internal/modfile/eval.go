package modfile

import (
	"fmt"
	"log/slog"

	"go.starlark.net/starlark"
)

// maxSteps bounds the work one module file may do.
const maxSteps = 10_000_000

// Evaluate executes f against the recognized declarations, appending every
// bazel_dep to acc. A nil logger discards diagnostics.
//
// Names are resolved before anything runs, so a file that calls an
// unrecognized declaration records nothing. A runtime failure stops
// evaluation; dependencies recorded before it remain in acc and callers that
// must not act on partial results should discard acc when an error is
// returned.
func Evaluate(f *File, acc *Collector, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if f.evaluated {
		return fmt.Errorf("module file %s was already evaluated", f.Path)
	}
	f.evaluated = true

	predeclared := declarations(acc, logger)
	logger.Debug("evaluating module file", "path", f.Path, "statements", f.Statements())

	prog, err := starlark.FileProgram(f.ast, predeclared.Has)
	if err != nil {
		return fromResolve(err, predeclared)
	}
	if prog.NumLoads() > 0 {
		module, pos := prog.Load(0)
		return errorAt(pos, ErrUnsupported, "load(%q) is not allowed in module files", module)
	}

	thread := &starlark.Thread{
		Name: f.Path,
		Print: func(_ *starlark.Thread, msg string) {
			logger.Info(msg, "source", f.Path)
		},
	}
	thread.SetMaxExecutionSteps(maxSteps)
	if _, err := prog.Init(thread, predeclared); err != nil {
		return fromEval(err)
	}
	logger.Debug("evaluated module file", "path", f.Path, "dependencies", acc.Len(), "steps", thread.ExecutionSteps())
	return nil
}
