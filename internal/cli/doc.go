// Package cli defines the Cobra command tree for modcmake. The root command
// performs the conversion; each other file registers one subcommand. Command
// implementations delegate to internal packages and only handle flag
// parsing and output formatting.
package cli
