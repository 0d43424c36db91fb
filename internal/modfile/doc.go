// Package modfile evaluates Bazel MODULE.bazel files in a sandbox. The file is
// parsed and run by the Starlark interpreter with a fixed set of predeclared
// declarations (module, bazel_dep, register_toolchains, use_repo,
// use_extension) and no load support. Only bazel_dep has an effect: each call
// records a Dependency in a Collector, in declaration order. Everything else
// is accepted and discarded, and any name outside the set is rejected before
// the file runs.
package modfile
