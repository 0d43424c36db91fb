package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bzlmod-tools/modcmake/internal/cmakegen"
	"github.com/bzlmod-tools/modcmake/internal/generate"
	"github.com/bzlmod-tools/modcmake/internal/logging"
	"github.com/bzlmod-tools/modcmake/internal/modfile"
	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// Output formats accepted by deps --format.
const (
	formatText  = "text"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatCMake = "cmake"
)

var depsFormat string

func init() {
	depsCmd.Flags().StringVar(&depsFormat, "format", formatText, "Output format (text, json, yaml, cmake)")
	rootCmd.AddCommand(depsCmd)
}

var depsCmd = &cobra.Command{
	Use:   "deps <MODULE.bazel>",
	Short: "List the dependencies declared in a module file",
	Long: `Evaluate a MODULE.bazel file and list its bazel_dep declarations in
declaration order. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkFormat(depsFormat); err != nil {
			return err
		}
		deps, err := generate.Load(args[0], logging.New(cmd.ErrOrStderr(), verbose))
		if err != nil {
			return err
		}
		return writeDeps(cmd.OutOrStdout(), deps, depsFormat)
	},
}

func checkFormat(format string) error {
	switch format {
	case formatText, formatJSON, formatYAML, formatCMake:
		return nil
	}
	return fmt.Errorf("unknown format %q (valid: %s, %s, %s, %s)", format, formatText, formatJSON, formatYAML, formatCMake)
}

func writeDeps(w io.Writer, deps []modfile.Dependency, format string) error {
	switch format {
	case formatJSON:
		if deps == nil {
			deps = []modfile.Dependency{}
		}
		data, err := json.MarshalIndent(deps, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling dependencies: %w", err)
		}
		fmt.Fprintln(w, string(data))

	case formatYAML:
		if len(deps) == 0 {
			fmt.Fprintln(w, "[]")
			return nil
		}
		data, err := yaml.Marshal(deps)
		if err != nil {
			return fmt.Errorf("marshaling dependencies: %w", err)
		}
		fmt.Fprint(w, string(data))

	case formatCMake:
		for _, line := range cmakegen.Assignments(deps) {
			fmt.Fprintln(w, line)
		}

	default:
		if len(deps) == 0 {
			fmt.Fprintln(w, "No dependencies declared.")
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "NAME\tVERSION\tLINE")
		for _, d := range deps {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", d.Name, d.Version, d.Pos.Line)
		}
		return tw.Flush()
	}
	return nil
}
