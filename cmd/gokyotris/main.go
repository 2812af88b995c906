// Command gokyotris plays the judo-themed falling-block puzzle in a desktop
// window or a terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/plus3/gokyotris/config"
	"github.com/plus3/gokyotris/curriculum"
	"github.com/plus3/gokyotris/logging"
	"github.com/plus3/gokyotris/puzzle"
)

const labelTimeout = 15 * time.Second

type rootOptions struct {
	configFile string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "gokyotris",
		Short:         "Falling-block puzzle for learning the Gokyo no Waza",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level, overrides log.level")

	root.AddCommand(newWindowCmd(opts), newTermCmd(opts), newTechniquesCmd(opts))
	return root
}

// load reads the config and builds the logger it asks for.
func (o *rootOptions) load(w io.Writer) (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, nil, err
	}
	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	return cfg, logging.New(w, "gokyotris", level), nil
}

// newEngine loads the curriculum labels and builds an engine from cfg.
// A missing curriculum only costs the labels.
func newEngine(ctx context.Context, cfg *config.Config, logger *log.Logger) (*puzzle.Engine, error) {
	opts, err := cfg.EngineOptions()
	if err != nil {
		return nil, err
	}

	src, closeSource, err := openSource(ctx, cfg.Curriculum, logger)
	if err != nil {
		logger.Warn("curriculum source unavailable", "source", cfg.Curriculum.Source, "err", err)
	} else {
		defer closeSource()
		loadCtx, cancel := context.WithTimeout(ctx, labelTimeout)
		labels := curriculum.LoadLabels(loadCtx, src, cfg.Curriculum.MediaRoot, logger)
		cancel()
		opts = append(opts, puzzle.WithLabels(labels))
	}

	opts = append(opts, puzzle.WithLogger(logger.WithPrefix("engine")))
	return puzzle.New(opts...)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "gokyotris:", err)
		os.Exit(1)
	}
}
