package commands

import (
	"github.com/spf13/cobra"

	"github.com/maksimkurb/spp-ctl/src/internal/log"
)

// NewRootCommand creates the spp-ctl command tree. Without a subcommand the
// server is started.
func NewRootCommand(info BuildInfo) *cobra.Command {
	ctx := &AppContext{}
	server := newServerOptions()

	root := &cobra.Command{
		Use:   "spp-ctl",
		Short: "Control-plane REST API for SPP worker processes",
		Long: `spp-ctl accepts connections from the SPP primary and secondary
processes (virtual forwarders and network-function proxies) and exposes
them through a REST API.`,
		Version:       info.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if ctx.Verbose {
				log.SetVerbose(true)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return server.run(cmd.Context(), ctx)
		},
	}

	root.PersistentFlags().StringVarP(&ctx.ConfigPath, "config", "c", "",
		"path to the TOML configuration file (defaults are used when empty)")
	root.PersistentFlags().BoolVarP(&ctx.Verbose, "verbose", "v", false, "enable debug logging")

	server.bindFlags(root)

	root.AddCommand(newServerCommand(ctx))
	root.AddCommand(newCheckConfigCommand(ctx))
	root.AddCommand(newVersionCommand(info))

	return root
}
