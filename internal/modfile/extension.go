package modfile

import (
	"fmt"
	"log/slog"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
)

// Extension is the object use_extension returns. Its methods are a fixed set
// of no-op declarations, so chained calls such as python.toolchain(...) are
// accepted and discarded.
type Extension struct {
	File string
	Name string

	methods *starlarkstruct.Struct
}

var _ starlark.HasAttrs = (*Extension)(nil)

func newExtension(file, name string, logger *slog.Logger) *Extension {
	x := &Extension{File: file, Name: name}
	methods := make(starlark.StringDict, len(extensionMethods))
	for _, m := range extensionMethods {
		methods[m] = ignored(x.label()+"."+m, logger)
	}
	x.methods = starlarkstruct.FromStringDict(starlark.String(x.Type()), methods)
	return x
}

func (x *Extension) String() string {
	return fmt.Sprintf("<module extension %s from %q>", x.label(), x.File)
}

func (x *Extension) Type() string         { return "module_extension_proxy" }
func (x *Extension) Freeze()              { x.methods.Freeze() }
func (x *Extension) Truth() starlark.Bool { return starlark.True }

func (x *Extension) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: %s", x.Type())
}

// Attr looks up a method of the extension proxy.
func (x *Extension) Attr(name string) (starlark.Value, error) {
	if v, err := x.methods.Attr(name); err == nil && v != nil {
		return v, nil
	}
	return nil, fmt.Errorf("%w: %s.%s is not a recognized extension declaration (recognized: %s)",
		ErrUnknownDeclaration, x.label(), name, strings.Join(x.AttrNames(), ", "))
}

// AttrNames returns the recognized method names, sorted.
func (x *Extension) AttrNames() []string {
	return x.methods.AttrNames()
}

func (x *Extension) label() string {
	if x.Name == "" {
		return "extension"
	}
	return x.Name
}
