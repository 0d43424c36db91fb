package modfile

import (
	"fmt"
	"log/slog"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// extensionMethods are the calls accepted on the object use_extension returns.
var extensionMethods = []string{"toolchain", "parse", "spec", "from_specs", "install"}

type builtinFunc = func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)

// declarations builds the predeclared names of a module file. bazel_dep
// records into acc; every other entry is a no-op.
func declarations(acc *Collector, logger *slog.Logger) starlark.StringDict {
	return starlark.StringDict{
		"module":              ignored("module", logger),
		"register_toolchains": ignored("register_toolchains", logger),
		"use_repo":            ignored("use_repo", logger),
		"bazel_dep":           starlark.NewBuiltin("bazel_dep", bazelDep(acc, logger)),
		"use_extension":       starlark.NewBuiltin("use_extension", useExtension(logger)),
	}
}

func bazelDep(acc *Collector, logger *slog.Logger) builtinFunc {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(args) > 2 {
			return nil, fmt.Errorf("%w: %s() takes at most 2 positional arguments (%d given)", ErrInvalidArgument, fn.Name(), len(args))
		}
		name, ok, err := stringParam(fn, args, kwargs, 0, "name")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s() missing required argument 'name'", ErrMissingArgument, fn.Name())
		}
		if name == "" {
			return nil, fmt.Errorf("%w: %s() argument 'name' must not be empty", ErrInvalidArgument, fn.Name())
		}
		version, ok, err := stringParam(fn, args, kwargs, 1, "version")
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: %s() missing required argument 'version'", ErrMissingArgument, fn.Name())
		}

		acc.Add(Dependency{Name: name, Version: version, Pos: callerPos(thread)})
		logger.Debug("recorded dependency", "name", name, "version", version)
		return starlark.None, nil
	}
}

func useExtension(logger *slog.Logger) builtinFunc {
	return func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		// The proxy ignores what it is given; malformed labels are not an error.
		file, _, _ := stringParam(fn, args, kwargs, 0, "extension_bzl_file")
		name, _, _ := stringParam(fn, args, kwargs, 1, "extension_name")
		x := newExtension(file, name, logger)
		logger.Debug("ignored declaration", "name", fn.Name(), "extension", x.label(), "pos", callerPos(thread).String())
		return x, nil
	}
}

func ignored(name string, logger *slog.Logger) *starlark.Builtin {
	return starlark.NewBuiltin(name, func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		logger.Debug("ignored declaration", "name", name, "pos", callerPos(thread).String())
		return starlark.None, nil
	})
}

// stringParam binds parameter name at positional index i, Python style: the
// argument may be given positionally or by keyword, but not both.
func stringParam(fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple, i int, name string) (string, bool, error) {
	var (
		v     starlark.Value
		found bool
	)
	if i < len(args) {
		v, found = args[i], true
	}
	for _, kv := range kwargs {
		if k, _ := starlark.AsString(kv[0]); k != name {
			continue
		}
		if found {
			return "", false, fmt.Errorf("%w: %s() got multiple values for argument '%s'", ErrInvalidArgument, fn.Name(), name)
		}
		v, found = kv[1], true
	}
	if !found {
		return "", false, nil
	}
	s, ok := starlark.AsString(v)
	if !ok {
		return "", false, fmt.Errorf("%w: %s() argument '%s' must be string, got %s", ErrInvalidArgument, fn.Name(), name, v.Type())
	}
	return s, true, nil
}

// callerPos is the position of the call to the running built-in.
func callerPos(thread *starlark.Thread) syntax.Position {
	if thread.CallStackDepth() < 2 {
		return syntax.Position{}
	}
	return thread.CallFrame(1).Pos
}
