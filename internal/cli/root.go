package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/bzlmod-tools/modcmake/internal/branding"
	"github.com/bzlmod-tools/modcmake/internal/config"
	"github.com/bzlmod-tools/modcmake/internal/generate"
	"github.com/bzlmod-tools/modcmake/internal/logging"
	"github.com/spf13/cobra"
)

// BuildInfo identifies the binary. It is reported by the version command.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

var build BuildInfo

var (
	configPath string
	verbose    bool
	checkOnly  bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [flags] <MODULE.bazel> <output>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` reads the bazel_dep declarations of a MODULE.bazel file and writes a
CMake file that sets <name>-version for every dependency.

Use "-" as the output to print the generated file instead of writing it.

Report issues at https://github.com/` + branding.GitHubRepo() + `/issues.`,
	Example: `  ` + branding.CLIName() + ` MODULE.bazel cmake/dependencies.cmake
  ` + branding.CLIName() + ` --check MODULE.bazel cmake/dependencies.cmake`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to a YAML settings file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log debug diagnostics to stderr")
	config.RegisterFlags(pf)

	rootCmd.Flags().BoolVar(&checkOnly, "check", false, "Fail if the output file is not up to date instead of writing it")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger := logging.New(cmd.ErrOrStderr(), verbose)

	settings, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	manifestPath, outputPath := args[0], args[1]
	res, err := generate.Run(generate.Request{
		ManifestPath: manifestPath,
		OutputPath:   outputPath,
		Options:      settings.Options(),
		Check:        checkOnly,
		Stdout:       cmd.OutOrStdout(),
	}, logger)
	if err != nil {
		if errors.Is(err, generate.ErrStale) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Run '%s %s %s' to update it.\n", branding.CLIName(), manifestPath, outputPath)
		}
		return err
	}

	if outputPath == generate.Stdout {
		return nil
	}
	n := len(res.Dependencies)
	switch {
	case checkOnly:
		printer.Fprintf(cmd.OutOrStdout(), msgUpToDate, n, outputPath)
	case res.Unchanged:
		printer.Fprintf(cmd.OutOrStdout(), msgUnchanged, n, outputPath)
	default:
		printer.Fprintf(cmd.OutOrStdout(), msgWrote, n, outputPath)
	}
	return nil
}

// Execute runs the root command. Errors are printed to stderr once and
// returned so the caller can set the exit status.
func Execute(info BuildInfo) error {
	build = info
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
