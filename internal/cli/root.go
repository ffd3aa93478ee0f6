package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/adrianmusante/sequential-datetime-prefix/internal/config"
	"github.com/adrianmusante/sequential-datetime-prefix/internal/datefmt"
	"github.com/adrianmusante/sequential-datetime-prefix/internal/logging"
	"github.com/adrianmusante/sequential-datetime-prefix/internal/prefix"
	"github.com/spf13/cobra"
)

// version and commit are set at build time via -ldflags.
// If left empty, they show as "dev".
var version = ""
var commit = ""

// now is replaced in tests.
var now = time.Now

var errFolderRequired = errors.New("missing folder argument")

const longHelp = `Sequential DateTime Prefix Generator

Prints the next free prefix like "251015a_", "251015b_", ... for a folder, so
files created on the same day sort chronologically. Existing files named
<date><letter>_* in the folder (and in any --also folder) are skipped. Missing
folders are created.

Available formats: yyMMdd, yyyyMMdd, yyyy-MM-dd, yy-MM-dd
Any other --format value is used verbatim as the prefix.

Defaults can be set in .seqprefix.json (working directory) or in the global
config file; see "config init".`

const examples = `  sequential-datetime-prefix planning/
  sequential-datetime-prefix docs/conversations/ --format "yyyy-MM-dd"
  sequential-datetime-prefix . --verbose
  sequential-datetime-prefix docs/planning --also docs/planning/finished --also docs/planning/later`

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "sequential-datetime-prefix <folder>",
		Short:         "Print the next sequential date prefix for a folder",
		Long:          longHelp,
		Example:       examples,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Allow configuring flags via env vars when they aren't provided.
			if err := resolveBoolFlagFromEnv(cmd, flagVerbose, envVerbose); err != nil {
				return err
			}
			if err := resolveStringFlagFromEnv(cmd, flagConfig, envConfig); err != nil {
				return err
			}
			if err := resolveStringFlagFromEnv(cmd, flagFormat, envFormat); err != nil {
				return err
			}
			if err := resolveStringArrayFlagFromEnv(cmd, flagAlso, envAlso); err != nil {
				return err
			}

			logger := logging.New(cmd.ErrOrStderr(), logging.LevelFor(verbose))
			slog.SetDefault(logger)
			cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
				return errFolderRequired
			}

			cfg, sources, err := effectiveConfig(cmd)
			if err != nil {
				return err
			}
			cfg.Directory = args[0]
			cfg, err = config.Finalize(cfg)
			if err != nil {
				return err
			}
			return runPrefix(cmd, cfg, sources)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, flagVerbose, flagVerboseShorthand, false, "Show detailed output")
	cmd.PersistentFlags().String(flagFormat, datefmt.Default, "Date format: "+strings.Join(datefmt.Selectors(), ", ")+" (other values are used verbatim)")
	cmd.PersistentFlags().StringArray(flagAlso, nil, "Additional folder to scan for conflicts (repeatable)")
	cmd.PersistentFlags().String(flagConfig, "", "Config file to use instead of ./"+config.ProjectFileName)

	_ = cmd.RegisterFlagCompletionFunc(flagFormat, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return datefmt.Selectors(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc(flagAlso, func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveFilterDirs
	})
	cmd.ValidArgsFunction = func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveFilterDirs
	}

	v := version
	if v == "" {
		v = "dev"
	}
	if commit != "" {
		cmd.Version = v + " (" + commit + ")"
	} else {
		cmd.Version = v
	}
	// Enable Cobra's built-in --version flag. This prints Version and exits.
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddCommand(newConfigCmd())
	return cmd
}

// effectiveConfig loads the config files and applies flags (already filled
// from env vars) on top. The target directory is left to the caller.
func effectiveConfig(cmd *cobra.Command) (config.Config, config.Sources, error) {
	configPath, _ := cmd.Flags().GetString(flagConfig)
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, config.Sources{}, err
	}

	cfg, sources, err := config.Load(config.LoadOptions{WorkDir: wd, ConfigPath: configPath})
	if err != nil {
		return config.Config{}, config.Sources{}, err
	}

	if f := cmd.Flags().Lookup(flagFormat); f != nil && f.Changed {
		cfg.Format = f.Value.String()
	}
	also, _ := cmd.Flags().GetStringArray(flagAlso)
	cfg.Also = append(append([]string{}, cfg.Also...), also...)
	cfg.Verbose, _ = cmd.Flags().GetBool(flagVerbose)
	return cfg, sources, nil
}

func runPrefix(cmd *cobra.Command, cfg config.Config, sources config.Sources) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if sources.Global != "" || sources.Project != "" {
		log.Debug("loaded config", "global", sources.Global, "project", sources.Project)
	}
	log.Debug("using date format", "format", cfg.Format)
	if len(cfg.Also) > 0 {
		log.Debug("also scanning", "dirs", cfg.Also)
	}

	datePrefix := datefmt.Format(ctx, now(), cfg.Format)

	res, err := prefix.Run(ctx, prefix.Options{
		Dir:        cfg.Directory,
		Also:       cfg.Also,
		DatePrefix: datePrefix,
		Verbose:    cfg.Verbose,
	})
	if err != nil {
		return err
	}
	for _, dir := range res.Created {
		log.Debug("created directory", "dir", dir)
	}
	if len(res.Used) > 0 {
		log.Debug("found existing prefixes", "dir", res.Dir, "letters", res.Used)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Prefix)
	return err
}

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		renderError(os.Stderr, err)
		os.Exit(1)
	}
}
