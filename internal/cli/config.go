package cli

import (
	"fmt"

	"github.com/bzlmod-tools/modcmake/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective settings",
	Long: `Print the settings a conversion would use, after merging the built-in
defaults, the --config file and the setting flags. The output is valid
input for --config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(configPath, cmd.Flags())
		if err != nil {
			return err
		}
		data, err := settings.YAML()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	},
}
