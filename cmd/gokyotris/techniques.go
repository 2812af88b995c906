package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plus3/gokyotris/curriculum"
	"github.com/plus3/gokyotris/puzzle"
)

func newTechniquesCmd(opts *rootOptions) *cobra.Command {
	var group string
	cmd := &cobra.Command{
		Use:   "techniques",
		Short: "List the techniques that can label pieces",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			catalog, err := cfg.Catalog()
			if err != nil {
				return err
			}

			src, closeSource, err := openSource(cmd.Context(), cfg.Curriculum, logger)
			if err != nil {
				return err
			}
			defer closeSource()
			if src == nil {
				return fmt.Errorf("%w: no curriculum source configured", curriculum.ErrUnknownSource)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), labelTimeout)
			defer cancel()
			labels := curriculum.LoadLabels(ctx, src, cfg.Curriculum.MediaRoot, logger)
			pool, skipped := puzzle.NewLabelPool(labels, catalog)
			if skipped > 0 {
				logger.Warn("labels outside the group table", "skipped", skipped)
			}

			return writeTechniques(cmd.OutOrStdout(), catalog, labels, pool, group)
		},
	}
	cmd.Flags().StringVar(&group, "group", "", "only list this group")
	return cmd
}

func writeTechniques(w io.Writer, catalog *puzzle.Catalog, labels []puzzle.Label, pool *puzzle.LabelPool, group string) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tNAME\tKANJI\tIMAGE")
	for _, l := range labels {
		if group != "" && l.Group != group {
			continue
		}
		if _, ok := catalog.LookupName(l.Group); !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.Group, l.Name, l.Kanji, l.Image)
	}
	fmt.Fprintln(tw)
	for _, g := range catalog.Groups() {
		if group != "" && g.Name != group {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d techniques\t\t\n", g.Name, pool.Count(g.ID))
	}
	return tw.Flush()
}
