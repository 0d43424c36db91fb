// Package cmakegen renders the generated CMake dependency file: a fixed
// header, an include_guard() block for CMake versions at or above a floor,
// and one set(<name>-version "<version>") line per Bazel dependency.
package cmakegen
