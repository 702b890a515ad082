package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hytalemodding/modinit/internal/config"
)

// NewConfigCmd builds the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long: `Read and write settings stored at ~/.modinit/config.yaml.

Known keys: ` + strings.Join(config.Keys, ", ") + `.
Every key can also be set through the environment, e.g. MODINIT_TEMPLATE_REF.`,
	}
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())
	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !config.IsKnown(key) {
				return fmt.Errorf("unknown config key %q", key)
			}
			if key == config.KeyCopyExclude {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(config.CopyExclude(), ","))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(key))
			return nil
		},
	}
}
