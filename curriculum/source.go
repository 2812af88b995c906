package curriculum

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/plus3/gokyotris/puzzle"
)

// ErrUnknownSource is returned for an unsupported source name.
var ErrUnknownSource = errors.New("curriculum: unknown source")

// Source supplies the techniques collection.
type Source interface {
	Techniques(ctx context.Context) ([]Technique, error)
}

// Skipper is implemented by sources that drop malformed entries instead of
// failing the whole fetch. Skipped reports how many the last fetch dropped.
type Skipper interface {
	Skipped() int
}

type skipCounter struct {
	n atomic.Int64
}

func (c *skipCounter) resetSkipped() { c.n.Store(0) }
func (c *skipCounter) skip()         { c.n.Add(1) }
func (c *skipCounter) Skipped() int  { return int(c.n.Load()) }

// Static serves a fixed list.
type Static []Technique

func (s Static) Techniques(context.Context) ([]Technique, error) {
	return append([]Technique(nil), s...), nil
}

// LoadLabels fetches techniques from src and converts the eligible ones.
// Curriculum data is optional: any failure is logged and yields no labels.
func LoadLabels(ctx context.Context, src Source, mediaRoot string, logger *log.Logger) []puzzle.Label {
	if src == nil {
		return nil
	}
	techniques, err := src.Techniques(ctx)
	if err != nil {
		logger.Warn("curriculum unavailable, pieces will be unlabeled", "err", err)
		return nil
	}
	if sk, ok := src.(Skipper); ok && sk.Skipped() > 0 {
		logger.Warn("skipped malformed techniques", "skipped", sk.Skipped())
	}
	labels := Labels(techniques, mediaRoot)
	logger.Info("curriculum loaded", "techniques", len(techniques), "labels", len(labels))
	return labels
}
