package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func newWindowCmd(opts *rootOptions) *cobra.Command {
	var debug bool
	cmd := &cobra.Command{
		Use:   "window",
		Short: "Play in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(os.Stderr)
			if err != nil {
				return err
			}
			serveMetrics(cfg.MetricsAddr, logger)

			engine, err := newEngine(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			tps := max(cfg.Window.TPS, 1)
			ebiten.SetTPS(tps)
			g := newGame(engine, max(cfg.Window.CellSize, 8), tps, debug || cfg.Window.Debug)

			logger.Info("window started", "session", engine.SessionID(), "tps", tps)
			err = ebiten.RunGame(g)
			if errors.Is(err, ebiten.Termination) {
				err = nil
			}
			logger.Info("window closed", "score", engine.Score(), "stats", engine.Stats())
			return err
		},
	}
	cmd.Flags().BoolVar(&debug, "debug", false, "show the ImGui inspector (F1 toggles)")
	return cmd
}
