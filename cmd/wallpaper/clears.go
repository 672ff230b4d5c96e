package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/breakout-wallpaper/internal/platform/tui"
)

var (
	flagPlain bool
	flagLimit int
	flagReset bool
)

var clearsCmd = &cobra.Command{
	Use:   "clears",
	Short: "Show recently cleared boards",
	Long: `Show the boards cleared while the wallpaper ran. Opens an interactive
table on a terminal; use --plain for text output.

Examples:
  wallpaper clears
  wallpaper clears --plain --limit 5
  wallpaper clears --reset`,
	Args: cobra.NoArgs,
	RunE: runClears,
}

func init() {
	clearsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text list")
	clearsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of clears to print with --plain")
	clearsCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the clear history")
}

func runClears(cmd *cobra.Command, args []string) error {
	store, err := mustStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagReset {
		if err := store.DeleteClears(); err != nil {
			return err
		}
		fmt.Println("Clear history deleted.")
		return nil
	}

	width, height, termErr := term.GetSize(int(os.Stdout.Fd()))
	if !flagPlain && termErr == nil {
		return tui.RunClears(store, width, height)
	}

	entries, err := store.RecentClears(flagLimit)
	if err != nil {
		return err
	}
	total, err := store.ClearCount("")
	if err != nil {
		return err
	}

	fmt.Printf("Board clears - %d total\n", total)
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No boards cleared yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-6s  %-10s  %s\n", "Mode", "Blocks", "Tick", "Date")
	fmt.Printf("  %-8s  %-6s  %-10s  %s\n", "----", "------", "----", "----")
	for _, e := range entries {
		fmt.Printf("  %-8s  %-6d  %-10d  %s\n", e.Mode, e.BlocksTotal, e.Tick, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
