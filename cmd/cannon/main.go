// cannon is an arcade game: charge the cannon, fire bouncing shells and
// shoot at drifting targets, in the terminal or in a desktop window.
//
// Usage:
//
//	cannon play              - Play in the terminal
//	cannon play -f window    - Play in a desktop window
//	cannon config            - Print the effective configuration
//	cannon keys              - List the controls
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 50)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
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
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cannon",
	Short: "Cannon - a small artillery arcade game",
	Long: `Cannon is a small artillery arcade game. Hold fire to charge the
cannon, tune the power, release to launch a bouncing shell, and shoot
bullets at the targets drifting in from the right.

Available commands:
  play     - Start a game
  config   - Print the effective configuration
  keys     - List the controls

Examples:
  cannon play
  cannon play --frontend window
  cannon play --config ./my-cannon.yaml --seed 42
  cannon config > ~/.cannon/cannon.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 50, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}
