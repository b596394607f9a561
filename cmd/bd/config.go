package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write workspace configuration (stored in the index's config table)",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a single config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := store.GetConfig(rootCtx, args[0])
		if err != nil {
			return fmt.Errorf("get config %s: %w", args[0], err)
		}
		if jsonOutput {
			outputJSON(map[string]string{args[0]: v})
			return nil
		}
		fmt.Println(v)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.SetConfig(rootCtx, args[0], args[1]); err != nil {
			return fmt.Errorf("set config %s: %w", args[0], err)
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every config key in the index",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, err := store.GetAllConfig(rootCtx)
		if err != nil {
			return fmt.Errorf("list config: %w", err)
		}
		if jsonOutput {
			outputJSON(all)
			return nil
		}
		keys := make([]string, 0, len(all))
		for k := range all {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s = %s\n", k, all[k])
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configGetCmd, configSetCmd, configListCmd)
	rootCmd.AddCommand(configCmd)
}
