package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/adrianmusante/sequential-datetime-prefix/internal/config"
	"github.com/adrianmusante/sequential-datetime-prefix/internal/fs"
	"github.com/adrianmusante/sequential-datetime-prefix/internal/logging"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create configuration files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigInitCmd())
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, sources, err := effectiveConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Format == "" {
				return config.ErrFormatEmpty
			}
			cfg.Also, err = fs.UniquePaths(cfg.Also)
			if err != nil {
				return err
			}
			out, err := config.FormatJSON(cfg, sources)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented config file with the current settings",
		Long: "Write " + config.ProjectFileName + " in the working directory (or the global config\n" +
			"file with --global) holding the effective format and additional folders.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			global, _ := cmd.Flags().GetBool(flagGlobal)
			force, _ := cmd.Flags().GetBool(flagForce)
			log := logging.FromContext(cmd.Context())

			cfg, _, err := effectiveConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Format == "" {
				return config.ErrFormatEmpty
			}
			cfg.Also, err = fs.UniquePaths(cfg.Also)
			if err != nil {
				return err
			}

			path := config.GlobalPath(nil)
			if !global {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				path = config.ProjectPath(wd)
			} else if path == "" {
				return errors.New("cannot determine the global config location (set XDG_CONFIG_HOME or HOME)")
			}

			if err := config.Init(path, cfg, force); err != nil {
				return err
			}
			log.Info("config written", "path", path)
			return nil
		},
	}
	cmd.Flags().Bool(flagGlobal, false, "Write the global config file instead of "+config.ProjectFileName)
	cmd.Flags().Bool(flagForce, false, "Overwrite an existing config file")
	return cmd
}
