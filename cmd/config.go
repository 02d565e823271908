package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/renshuapp/renshu/internal/config"
	"github.com/renshuapp/renshu/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View and manage configuration",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print configuration file path",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(config.GetPaths().ConfigFile)
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all config keys with their current values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Run 'renshu config list' for the known keys,
their types, and current values.`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Reset a configuration value to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	paths := config.GetPaths()

	ui.Header("Configuration")
	fmt.Println()
	ui.Kv("Name", cfg.User.Name)
	ui.Kv("Deck", cfg.Study.DefaultDeck)
	ui.Kv("Drill size", fmt.Sprintf("%d prompts", cfg.Study.DrillSize))
	ui.Kv("Timed", fmt.Sprintf("%d seconds", cfg.Study.TimedSecs))
	ui.Kv("Theme", cfg.Theme.Default)
	fmt.Println()
	ui.Kv("Config", paths.ConfigFile)
	ui.Kv("Data", paths.DBFile)
	fmt.Println()
	ui.Tip(fmt.Sprintf("Edit directly: %s", ui.Accent.Render("$EDITOR "+paths.ConfigFile)))
	fmt.Println()
	return nil
}

func runConfigList(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ui.Header("Config keys")
	for _, name := range config.ValidKeyNames() {
		entry, _ := config.LookupKey(name)
		ui.Puts(fmt.Sprintf("  %-20s %-8s %s",
			ui.KeyStyle.Render(name),
			ui.Muted.Render(string(entry.Type)),
			entry.Get(cfg)))
		ui.Puts("  " + ui.Muted.Render(entry.Desc))
	}
	fmt.Println()
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	entry, ok := config.LookupKey(args[0])
	if !ok {
		return unknownKeyError(args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println(entry.Get(cfg))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	entry, ok := config.LookupKey(key)
	if !ok {
		return unknownKeyError(key)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := entry.Set(cfg, value); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s = %s", key, entry.Get(cfg)))
	return nil
}

func runConfigUnset(_ *cobra.Command, args []string) error {
	entry, ok := config.LookupKey(args[0])
	if !ok {
		return unknownKeyError(args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entry.Unset(cfg)

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.Ok(fmt.Sprintf("%s reset to %s", args[0], entry.DefaultStr))
	return nil
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q (known keys: %s)",
		key, strings.Join(config.ValidKeyNames(), ", "))
}
