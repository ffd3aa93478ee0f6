package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/adrianmusante/sequential-datetime-prefix/internal/run"
	"github.com/spf13/cobra"
)

const (
	envVerbose = "SEQPREFIX_VERBOSE"
	envFormat  = "SEQPREFIX_FORMAT"
	envAlso    = "SEQPREFIX_ALSO"
	envConfig  = "SEQPREFIX_CONFIG"
)

const (
	flagAlso             = "also"
	flagConfig           = "config"
	flagForce            = "force"
	flagFormat           = "format"
	flagGlobal           = "global"
	flagVerbose          = "verbose"
	flagVerboseShorthand = "v"
)

func parseEnvBool(key string) (bool, bool, error) {
	v, ok := envString(key)
	if !ok {
		return false, false, nil
	}

	switch strings.ToLower(v) {
	case "1", "t", "true", "y", "yes", "on":
		return true, true, nil
	case "0", "f", "false", "n", "no", "off":
		return false, true, nil
	default:
		// Try Go's bool parser too (covers True/False etc.)
		b, err := strconv.ParseBool(v)
		if err != nil {
			return false, false, fmt.Errorf("invalid %s=%q (expected true/false)", key, v)
		}
		return b, true, nil
	}
}

func envString(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	return v, true
}

func resolveBoolFlagFromEnv(cmd *cobra.Command, flagName, envKey string) error {
	f := cmd.Flags().Lookup(flagName)
	if f == nil {
		return nil
	}
	// If CLI flag was provided, it wins.
	if f.Changed {
		return nil
	}
	b, ok, err := parseEnvBool(envKey)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return cmd.Flags().Set(flagName, strconv.FormatBool(b))
}

func resolveStringFlagFromEnv(cmd *cobra.Command, flagName, envKey string) error {
	f := cmd.Flags().Lookup(flagName)
	if f == nil {
		return nil
	}
	// If CLI flag was provided, it wins.
	if f.Changed {
		return nil
	}
	v, ok := envString(envKey)
	if !ok {
		return nil
	}
	return cmd.Flags().Set(flagName, v)
}

// resolveStringArrayFlagFromEnv fills a repeatable flag from a comma-separated
// env var. Each item is Set individually, so the flag appends as if it had
// been repeated on the command line.
func resolveStringArrayFlagFromEnv(cmd *cobra.Command, flagName, envKey string) error {
	f := cmd.Flags().Lookup(flagName)
	if f == nil {
		return nil
	}
	// If CLI flag was provided, it wins.
	if f.Changed {
		return nil
	}
	v, ok := envString(envKey)
	if !ok {
		return nil
	}
	for _, item := range run.SplitCSV(v) {
		if err := cmd.Flags().Set(flagName, item); err != nil {
			return fmt.Errorf("invalid %s=%q: %w", envKey, v, err)
		}
	}
	return nil
}
