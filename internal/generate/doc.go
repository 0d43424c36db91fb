// Package generate runs the one-shot conversion pipeline: read a MODULE.bazel
// file, evaluate it, render the CMake dependency file and write it atomically.
// Nothing is written unless every earlier step succeeded. A check mode
// compares the rendered content with the existing output instead of writing.
package generate
