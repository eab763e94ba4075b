package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/maksimkurb/spp-ctl/src/internal/api"
	"github.com/maksimkurb/spp-ctl/src/internal/components"
	"github.com/maksimkurb/spp-ctl/src/internal/config"
	"github.com/maksimkurb/spp-ctl/src/internal/log"
	"github.com/maksimkurb/spp-ctl/src/internal/proc"
)

// serverOptions holds the flags overriding the configuration file.
type serverOptions struct {
	bindAddr string
	apiPort  uint16
	priPort  uint16
	secPort  uint16

	cmd *cobra.Command
}

func newServerOptions() *serverOptions {
	return &serverOptions{}
}

func (o *serverOptions) bindFlags(cmd *cobra.Command) {
	o.cmd = cmd
	cmd.Flags().StringVarP(&o.bindAddr, "bind", "b", config.DefaultBindAddress,
		"bind address of the REST API and worker ports")
	cmd.Flags().Uint16VarP(&o.apiPort, "api-port", "a", config.DefaultAPIPort, "REST API port")
	cmd.Flags().Uint16VarP(&o.priPort, "pri-port", "p", config.DefaultPrimaryPort, "primary process port")
	cmd.Flags().Uint16VarP(&o.secPort, "sec-port", "s", config.DefaultSecondaryPort, "secondary process port")
}

// apply overrides cfg with the flags set on the command line.
func (o *serverOptions) apply(cfg *config.Config) {
	flags := o.cmd.Flags()
	if flags.Changed("bind") {
		cfg.API.BindAddress = o.bindAddr
		cfg.Workers.BindAddress = o.bindAddr
	}
	if flags.Changed("api-port") {
		cfg.API.Port = o.apiPort
	}
	if flags.Changed("pri-port") {
		cfg.Workers.PrimaryPort = o.priPort
	}
	if flags.Changed("sec-port") {
		cfg.Workers.SecondaryPort = o.secPort
	}
}

func newServerCommand(ctx *AppContext) *cobra.Command {
	opts := newServerOptions()

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the worker listener and the REST API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd.Context(), ctx)
		},
	}
	opts.bindFlags(cmd)
	return cmd
}

// loadConfig loads the configuration file, applies flag overrides and
// validates the result.
func (o *serverOptions) loadConfig(ctx *AppContext) (*config.Config, error) {
	cfg, err := config.LoadConfig(ctx.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	o.apply(cfg)

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func (o *serverOptions) run(parent context.Context, ctx *AppContext) error {
	cfg, err := o.loadConfig(ctx)
	if err != nil {
		return err
	}
	if err := configureLogging(cfg, ctx.Verbose); err != nil {
		return err
	}

	if ctx.ConfigPath != "" {
		log.Infof("Configuration loaded from: %s", ctx.ConfigPath)
	}

	reg := proc.NewRegistry()
	comps := []components.Component{
		components.NewWorkerListener(reg, cfg.PrimaryAddr(), cfg.SecondaryAddr(), cfg.CommandTimeout()),
		components.NewAPIServer(cfg.APIAddr(), reg, api.Options{EnableMetrics: cfg.MetricsEnabled()}),
	}

	if ctx.ConfigPath != "" {
		comps = append(comps, components.NewConfigWatcher(ctx.ConfigPath, 0, func() {
			o.reloadLogging(ctx)
		}))
	}

	started := make([]components.Component, 0, len(comps))
	for _, c := range comps {
		if err := c.Start(); err != nil {
			stopAll(started)
			return fmt.Errorf("failed to start %s: %w", c.Name(), err)
		}
		started = append(started, c)
	}

	log.Infof("Primary port %s, secondary port %s", cfg.PrimaryAddr(), cfg.SecondaryAddr())

	if parent == nil {
		parent = context.Background()
	}
	sigCtx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-sigCtx.Done()
	log.Infof("Shutting down...")

	stopAll(started)
	log.Infof("Server stopped gracefully")
	return nil
}

// reloadLogging re-applies the [log] section after the configuration file
// changes. Listener and API addresses are only read at startup.
func (o *serverOptions) reloadLogging(ctx *AppContext) {
	cfg, err := o.loadConfig(ctx)
	if err != nil {
		log.Warnf("Ignoring configuration change: %v", err)
		return
	}
	if err := configureLogging(cfg, ctx.Verbose); err != nil {
		log.Warnf("Ignoring configuration change: %v", err)
		return
	}
	log.Infof("Logging settings reloaded from %s", ctx.ConfigPath)
}

// stopAll stops components in reverse start order.
func stopAll(started []components.Component) {
	for i := len(started) - 1; i >= 0; i-- {
		if err := started[i].Stop(); err != nil {
			log.Errorf("Failed to stop %s: %v", started[i].Name(), err)
		}
	}
}
