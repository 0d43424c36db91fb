package cmakegen

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/bzlmod-tools/modcmake/internal/branding"
	"github.com/bzlmod-tools/modcmake/internal/modfile"
)

// Options controls the parts of the template that may vary.
type Options struct {
	// Generator is the label named in the "Auto-generated by" header line.
	Generator string

	// MinVersion is the lowest CMake version for which include_guard() is
	// emitted.
	MinVersion string
}

// DefaultOptions returns the options that reproduce the stock output.
func DefaultOptions() Options {
	return Options{
		Generator:  branding.Generator(),
		MinVersion: branding.CMakeMinVersion(),
	}
}

// cmakeVersion matches the version forms CMake's VERSION_GREATER compares:
// plain major.minor[.patch] numbers, no prefix and no pre-release suffix.
var cmakeVersion = regexp.MustCompile(`^[0-9]+\.[0-9]+(\.[0-9]+)?$`)

// Validate checks that the options can be rendered.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Generator) == "" {
		return fmt.Errorf("generator label must not be empty")
	}
	if strings.ContainsAny(o.Generator, "\r\n") {
		return fmt.Errorf("generator label %q must be a single line", o.Generator)
	}
	if !cmakeVersion.MatchString(o.MinVersion) {
		return fmt.Errorf("CMake minimum version %q must be major.minor or major.minor.patch", o.MinVersion)
	}
	if _, err := semver.NewVersion(o.MinVersion); err != nil {
		return fmt.Errorf("parsing CMake minimum version %q: %w", o.MinVersion, err)
	}
	return nil
}

// Assignment returns the CMake statement for one dependency.
func Assignment(d modfile.Dependency) string {
	return fmt.Sprintf("set(%s-version %s)", d.Name, quote(d.Version))
}

// Assignments returns one statement per dependency, in order.
func Assignments(deps []modfile.Dependency) []string {
	out := make([]string, 0, len(deps))
	for _, d := range deps {
		out = append(out, Assignment(d))
	}
	return out
}

// Render substitutes the assignment fragments into the file template.
func Render(fragments []string, opts Options) string {
	var b strings.Builder

	b.WriteString("# Auto-generated by ")
	b.WriteString(opts.Generator)
	b.WriteString("\n")
	b.WriteString(headerNotice)
	b.WriteString("\n")

	fmt.Fprintf(&b, "if(${CMAKE_VERSION} VERSION_GREATER %[1]s OR ${CMAKE_VERSION} VERSION_EQUAL %[1]s)\n", opts.MinVersion)
	b.WriteString("  include_guard()\n")
	b.WriteString("endif()\n")
	b.WriteString("\n")

	for _, f := range fragments {
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("\n\n")

	return b.String()
}

// RenderDependencies is Render(Assignments(deps), opts).
func RenderDependencies(deps []modfile.Dependency, opts Options) string {
	return Render(Assignments(deps), opts)
}

const headerNotice = `#
# This file contains lists of external dependencies based on our Bazel
# config. It should be included from a hand-written CMake file that uses
# them.
#
# Changes to this file will be overwritten based on Bazel definitions.
`

// quote renders s as a CMake quoted argument.
func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
