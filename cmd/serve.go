package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/jrc03c/matching-game-demo/internal/cache"
	"github.com/jrc03c/matching-game-demo/internal/config"
	"github.com/jrc03c/matching-game-demo/internal/handlers"
	"github.com/spf13/cobra"
)

var servePort string

// serveCmd runs the HTTP/WebSocket game server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the game server",
	Long: `Runs the HTTP and WebSocket game server. Configuration is read from the environment
(and a .env file if present): PORT, LOG_LEVEL, LOG_FORMAT, REDIS_ADDR, REDIS_DB,
ACTION_QUEUE_NAME, SYMBOLS, MISMATCH_DELAY, SUMMARY_DELAY and TICK_INTERVAL.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
		}
		logger := cfg.NewLogger()

		var actions *cache.ActionLog
		if opts, ok := cfg.ActionLogOptions(); ok {
			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
			actions, err = cache.Connect(ctx, opts)
			cancel()
			if err != nil {
				return fmt.Errorf("connect action log: %w", err)
			}
			defer actions.Close()
			logger.Infof("Publishing actions to redis list %s at %s", actions.Queue(), opts.Addr)
		}

		gs := handlers.NewGameServer(cfg.GameSettings(actions), logger)
		defer gs.Shutdown()

		server := &http.Server{
			Handler:           handlers.NewRouter(logger, gs),
			ReadHeaderTimeout: 10 * time.Second,
		}

		l, err := net.Listen("tcp", ":"+cfg.Port)
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		logger.Infof("Running on %s", l.Addr())

		errc := make(chan error, 1)
		go func() {
			errc <- server.Serve(l)
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serve: %w", err)
			}
		case sig := <-sigs:
			logger.Infof("terminating: %v", sig)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides PORT)")
}
