package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/jrc03c/matching-game-demo/internal/cache"
	"github.com/jrc03c/matching-game-demo/internal/config"
	"github.com/spf13/cobra"
)

var actionsFollow bool

// actionsCmd drains the action log queue and prints each record
var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "Print records from the action log",
	Long: `Pops records from the Redis action log (REDIS_ADDR, ACTION_QUEUE_NAME) and prints one
line per action. Records are consumed. With --follow it keeps waiting for new ones until
interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		opts, ok := cfg.ActionLogOptions()
		if !ok {
			return errors.New("REDIS_ADDR is not set")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		actions, err := cache.Connect(ctx, opts)
		if err != nil {
			return err
		}
		defer actions.Close()

		out := cmd.OutOrStdout()
		for {
			rec, err := actions.Next(ctx, time.Second)
			if err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
			if rec == nil {
				if actionsFollow && ctx.Err() == nil {
					continue
				}
				return nil
			}
			printAction(out, rec)
		}
	},
}

var actionColors = map[string]*color.Color{
	"game_reset":    color.New(color.FgCyan),
	"card_flip":     color.New(color.Faint),
	"pair_match":    color.New(color.FgGreen),
	"pair_mismatch": color.New(color.FgYellow),
	"game_won":      color.New(color.FgGreen, color.Bold),
}

func printAction(out io.Writer, rec *cache.ActionRecord) {
	c, ok := actionColors[rec.ActionType]
	if !ok {
		c = color.New(color.Reset)
	}
	ts := time.UnixMilli(rec.Timestamp).Format(time.TimeOnly)
	fmt.Fprintf(out, "%s %s gen=%d #%d %s %v\n",
		ts, rec.GameID, rec.Generation, rec.ActionIndex, c.Sprint(rec.ActionType), rec.ActionPayload)
}

func init() {
	actionsCmd.Flags().BoolVarP(&actionsFollow, "follow", "f", false, "keep waiting for new records")
}
