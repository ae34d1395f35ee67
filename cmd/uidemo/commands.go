package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	ui "github.com/grindlemire/go-ui"
	"github.com/grindlemire/go-ui/internal/config"
	"github.com/grindlemire/go-ui/internal/debug"
	"github.com/grindlemire/go-ui/screen"
)

const version = "0.1.0"

const defaultConfigPath = "ui.toml"

type rootOptions struct {
	configPath string
	debugLog   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "uidemo",
		Short:         "Layout engine demo and configuration tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (TOML, YAML or JSON)")
	cmd.PersistentFlags().StringVar(&opts.debugLog, "debug-log", "", "write debug logs to this file")

	cmd.AddCommand(newRunCmd(opts), newConfigCmd(opts), newVersionCmd())
	return cmd
}

// load reads the configuration and applies flag overrides.
func (o *rootOptions) load() (*config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}
	if o.debugLog != "" {
		cfg.Debug.File = o.debugLog
	}
	return cfg, nil
}

func newRunCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the interactive demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			return runDemo(cmd.Context(), cfg)
		},
	}
}

func runDemo(ctx context.Context, cfg *config.Config) error {
	scr, err := screen.New()
	if err != nil {
		return err
	}
	defer scr.Close()
	defer debug.Close()

	root, err := ui.NewRoot(scr, scr, ui.WithConfig(cfg))
	if err != nil {
		return err
	}
	d := newDemo(ctx, root)
	err = root.RunLayout(ctx, d.body, d.finished, ui.WithInitialFocus(d.first))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			enc := toml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndentTables(true)
			return enc.Encode(cfg)
		},
	}

	cmd.AddCommand(initCmd, showCmd)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "uidemo version %s\n", version)
		},
	}
}
