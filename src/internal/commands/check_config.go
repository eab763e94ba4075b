package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckConfigCommand(ctx *AppContext) *cobra.Command {
	var printConfig bool

	cmd := &cobra.Command{
		Use:   "check-config",
		Short: "Validate the configuration file",
		Long: `Load and validate the configuration file without starting the server.

Examples:
  spp-ctl check-config -c /etc/spp-ctl/spp-ctl.toml
  spp-ctl check-config -c /etc/spp-ctl/spp-ctl.toml --print`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadAndValidateConfigOrFail(ctx.ConfigPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration is valid")

			if printConfig {
				buf, err := cfg.SerializeConfig()
				if err != nil {
					return fmt.Errorf("failed to serialize configuration: %w", err)
				}
				fmt.Fprint(out, buf.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&printConfig, "print", false, "print the effective configuration")
	return cmd
}
