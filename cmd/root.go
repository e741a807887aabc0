package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "concentration",
	Short: "Memory-matching card game",
	Long: `Concentration deals a shuffled grid of face-down card pairs. Flip two cards per move
and find every pair in as few moves as you can.

Play in the terminal with "play", or run the WebSocket game server with "serve".`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(serveCmd)
	RootCmd.AddCommand(playCmd)
	RootCmd.AddCommand(deckCmd)
	RootCmd.AddCommand(actionsCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
