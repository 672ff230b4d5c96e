package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/breakout-wallpaper/internal/config"
	"github.com/vovakirdan/breakout-wallpaper/internal/storage"
)

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Store a setting",
	Long: `Store a setting in the database. Stored settings override the YAML
configuration every time the wallpaper starts. The value is checked against
the rest of the configuration before it is saved.

Examples:
  wallpaper set game.ballcount 3
  wallpaper set game.mode levels
  wallpaper set color.block4 "#FFFF00"
  wallpaper set display.widgets "0,0,3,1"
  wallpaper set color.bgimage ~/Pictures/sunset.png`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show a setting",
	Long:  `Show the effective value of one setting.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

var unsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Remove a stored setting",
	Long:  `Remove a stored setting so the YAML configuration applies again.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runUnset,
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show every setting",
	Long:  `Show the effective value of every setting. Stored settings are marked with '*'.`,
	Args:  cobra.NoArgs,
	RunE:  runSettings,
}

// settingKey is the form keys are stored under.
func settingKey(arg string) string {
	return strings.ToLower(strings.TrimSpace(arg))
}

func runSet(cmd *cobra.Command, args []string) error {
	key, value := settingKey(args[0]), args[1]

	logger, cleanup, err := newLogger("")
	if err != nil {
		return err
	}
	defer cleanup()

	store, err := mustStore()
	if err != nil {
		return err
	}
	defer store.Close()

	cfg, err := loadConfig(store, logger)
	if err != nil {
		return err
	}
	if err := config.ApplyOverride(&cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s=%s would make the configuration invalid: %w", key, value, err)
	}

	if err := store.SetSetting(key, value); err != nil {
		return err
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	logger, cleanup, err := newLogger("")
	if err != nil {
		return err
	}
	defer cleanup()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	cfg, err := loadConfig(store, logger)
	if err != nil {
		return err
	}
	value, err := config.Lookup(cfg, settingKey(args[0]))
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

func runUnset(cmd *cobra.Command, args []string) error {
	key := settingKey(args[0])

	store, err := mustStore()
	if err != nil {
		return err
	}
	defer store.Close()

	removed, err := unsetSetting(store, key)
	if err != nil {
		return err
	}
	if !removed {
		fmt.Printf("%s is not stored\n", key)
		return nil
	}
	fmt.Printf("%s removed\n", key)
	return nil
}

// unsetSetting deletes a stored setting and reports whether it existed.
func unsetSetting(store *storage.Store, key string) (bool, error) {
	if _, err := store.Setting(key); errors.Is(err, storage.ErrNoSetting) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if err := store.DeleteSetting(key); err != nil {
		return false, err
	}
	return true, nil
}

func runSettings(cmd *cobra.Command, args []string) error {
	logger, cleanup, err := newLogger("")
	if err != nil {
		return err
	}
	defer cleanup()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	stored := map[string]string{}
	if store != nil {
		if stored, err = store.Settings(); err != nil {
			logger.Warn("could not read stored settings", "error", err)
			stored = map[string]string{}
		}
	}

	cfg, err := loadConfig(store, logger)
	if err != nil {
		return err
	}

	keys := config.SettingKeys(cfg)
	maxKeyLen := 0
	for _, k := range keys {
		maxKeyLen = max(maxKeyLen, len(k))
	}

	for _, k := range keys {
		value, err := config.Lookup(cfg, k)
		if err != nil {
			continue // the append slot past the last block color
		}
		mark := " "
		if _, ok := stored[k]; ok {
			mark = "*"
		}
		fmt.Printf("%s %-*s  %s\n", mark, maxKeyLen, k, value)
	}
	return nil
}
