package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/plus3/gokyotris/logging"
	"github.com/plus3/gokyotris/loop"
	"github.com/plus3/gokyotris/termui"
)

func newTermCmd(opts *rootOptions) *cobra.Command {
	var logFile string
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Play in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			// the screen owns stdout, so logs go to a file or nowhere
			var out io.Writer = os.Stderr
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			cfg, logger, err := opts.load(out)
			if err != nil {
				return err
			}
			if logFile == "" {
				logger = logging.Discard()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			serveMetrics(cfg.MetricsAddr, logger)

			engine, err := newEngine(ctx, cfg, logger)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err := screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			tps := max(cfg.Window.TPS, 1)
			app := termui.NewApp(screen, engine, logger)
			err = app.Run(ctx, loop.NewTicker(time.Second/time.Duration(tps)))
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
