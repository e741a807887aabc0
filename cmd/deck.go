package cmd

import (
	"fmt"

	"github.com/jrc03c/matching-game-demo/internal/deck"
	"github.com/spf13/cobra"
)

var deckSymbols string

// deckCmd prints a freshly shuffled deck
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Print a shuffled deck",
	Long:  `Deals a deck the way a new game would and prints each position with its symbol.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		alphabet := deck.DefaultAlphabet
		if deckSymbols != "" {
			alphabet = deck.ParseAlphabet(deckSymbols)
		}
		if err := deck.ValidateAlphabet(alphabet); err != nil {
			return fmt.Errorf("--symbols: %w", err)
		}

		d := deck.CreateDeck(alphabet, nil)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%d cards, %d pairs\n", len(d), d.Pairs())
		for i, s := range d {
			fmt.Fprintf(out, "%2d  %s\n", i+1, s)
		}
		return nil
	},
}

func init() {
	deckCmd.Flags().StringVar(&deckSymbols, "symbols", "", "comma-separated card symbols")
}
