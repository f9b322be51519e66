package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cannon-arcade/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the controls",
	Long:  `Shows the terminal key bindings.`,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	var bindings [][2]string
	for _, col := range tui.DefaultKeyMap().FullHelp() {
		for _, b := range col {
			h := b.Help()
			bindings = append(bindings, [2]string{h.Key, h.Desc})
		}
	}

	// Calculate column widths; key labels contain arrows
	maxKeyLen := 3 // "Key" header
	for _, b := range bindings {
		maxKeyLen = max(maxKeyLen, lipgloss.Width(b[0]))
	}
	pad := func(s string) string {
		return s + strings.Repeat(" ", maxKeyLen-lipgloss.Width(s))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Terminal controls:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %s  %s\n", pad("Key"), "Action")
	fmt.Fprintf(out, "  %s  %s\n", pad("---"), "------")
	for _, b := range bindings {
		fmt.Fprintf(out, "  %s  %s\n", pad(b[0]), b[1])
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "In a window (--frontend window) hold Space to charge and release to fire.")
}
