package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/plus3/gokyotris/config"
	"github.com/plus3/gokyotris/curriculum"
)

// openSource builds the configured curriculum source wrapped in a cache. The
// returned func releases it. SourceNone yields a nil source.
func openSource(ctx context.Context, cfg config.CurriculumConf, logger *log.Logger) (curriculum.Source, func(), error) {
	var (
		src     curriculum.Source
		closers []func()
	)

	switch strings.ToLower(cfg.Source) {
	case "", config.SourceNone:
		return nil, func() {}, nil
	case config.SourceSQLite:
		s, err := curriculum.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		src = s
		closers = append(closers, func() {
			if err := s.Close(); err != nil {
				logger.Warn("close sqlite", "err", err)
			}
		})
	case config.SourceRecords:
		src = curriculum.NewRecordsSource(cfg.RecordsURL, cfg.Collection, nil)
	case config.SourceMongo:
		s, err := curriculum.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB, cfg.Collection)
		if err != nil {
			return nil, nil, err
		}
		src = s
		closers = append(closers, func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Close(ctx); err != nil {
				logger.Warn("disconnect mongo", "err", err)
			}
		})
	default:
		return nil, nil, fmt.Errorf("%w: %q", curriculum.ErrUnknownSource, cfg.Source)
	}

	cached, err := curriculum.NewCached(src, cfg.CacheTTL)
	if err != nil {
		for _, c := range closers {
			c()
		}
		return nil, nil, err
	}
	closers = append(closers, cached.Close)
	logger.Debug("curriculum source ready", "source", cfg.Source)

	return cached, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}, nil
}
