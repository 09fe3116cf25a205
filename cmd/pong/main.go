// pong is a two-player Pong game for the terminal, the desktop and SSH.
//
// Usage:
//
//	pong play     - Play in this terminal
//	pong window   - Play in a desktop window
//	pong serve    - Start SSH server for remote play
//	pong config   - Print the default configuration
//
// Global flags:
//
//	--config <path>     - Custom YAML config
//	--fps <rate>        - Override the tick rate
//	--log-file <path>   - Append logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two paddles, one ball",
	Long: `Pong for two players sharing one keyboard.

Controls:
  W/S          - Left paddle
  Up/Down      - Right paddle, menu navigation
  Enter        - Select
  P/Esc        - Pause, quick resume
  F            - Fullscreen
  F3           - Debug overlay

Examples:
  pong play
  pong window --fps 120
  pong serve --ssh :2222
  pong play --config ./my-pong.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
