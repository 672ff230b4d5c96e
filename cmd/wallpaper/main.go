// wallpaper is a breakout live wallpaper for the terminal: balls bounce
// around a launcher icon grid and knock out the blocks between the icons.
//
// Usage:
//
//	wallpaper run                 - Run the wallpaper
//	wallpaper layout              - Print the block layout for a screen size
//	wallpaper simulate            - Run headless and print a summary
//	wallpaper presets             - List launcher presets
//	wallpaper set <key> <value>   - Store a setting
//	wallpaper get <key>           - Show a setting
//	wallpaper unset <key>         - Remove a stored setting
//	wallpaper settings            - Show every setting
//	wallpaper clears              - Show recently cleared boards
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible runs
//	--db <path>         - Set database path (default: ~/.breakout/wallpaper.db)
//	--config <path>     - Use a custom wallpaper.yaml
//	--preset <name>     - Apply a launcher preset
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wallpaper",
	Short: "Breakout live wallpaper for your terminal",
	Long: `A breakout game that plays itself around a launcher icon grid.
Blocks fill the gaps between icons; balls knock them out and, in endless
mode, blocks grow back. Click to send the nearest ball toward the pointer.

Available commands:
  run       - Run the wallpaper
  layout    - Print the block layout for a screen size
  simulate  - Run headless and print a summary
  presets   - List launcher presets
  set/get   - Manage stored settings
  settings  - Show every setting
  clears    - Show recently cleared boards

Examples:
  wallpaper run
  wallpaper run --preset tablet --seed 42
  wallpaper set game.mode levels
  wallpaper layout --width 1080 --height 1920
  wallpaper simulate --ticks 10000`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakout/wallpaper.db", "Path to settings database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom wallpaper config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Launcher preset: phone, tablet, dense")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(layoutCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(unsetCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(clearsCmd)
}
