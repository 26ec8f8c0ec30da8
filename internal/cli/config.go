package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Options holds CLI-only settings; game settings live in config.Config
type Options struct {
	ConfigFile string
	Output     string
	Verbose    bool
}

// DefaultOptions returns Options with default values
func DefaultOptions() *Options {
	return &Options{
		ConfigFile: os.Getenv("HIDDENWORDS_CONFIG"),
		Output:     getEnvOrDefault("HIDDENWORDS_OUTPUT", "text"),
		Verbose:    false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := appCfg.Marshal()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
			return nil
		},
	})

	return cmd
}
