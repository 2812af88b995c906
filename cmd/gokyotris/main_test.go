package main

import (
	"bytes"
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/gokyotris/config"
	"github.com/plus3/gokyotris/curriculum"
	"github.com/plus3/gokyotris/logging"
	"github.com/plus3/gokyotris/puzzle"
)

func writeDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "judo.sqlite")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	_, err = db.Exec(`
CREATE TABLE techniques (id INTEGER PRIMARY KEY, name TEXT, kanji TEXT, image TEXT, "group" TEXT, category TEXT, dan_level INTEGER, "order" INTEGER);
INSERT INTO techniques (id, name, kanji, "group", "order") VALUES
	(1, 'Deashi harai', '出足払', 'Dai Ikkyo', 1),
	(2, 'Tomoe nage', '巴投', 'Dai Sankyo', 2),
	(3, 'Kesa gatame', NULL, 'Altre', 3);`)
	require.NoError(t, err)
	return path
}

func TestOpenSource(t *testing.T) {
	ctx := context.Background()
	logger := logging.Discard()

	t.Run("none", func(t *testing.T) {
		src, closeSource, err := openSource(ctx, config.CurriculumConf{Source: config.SourceNone}, logger)
		require.NoError(t, err)
		assert.Nil(t, src)
		closeSource()
	})

	t.Run("unknown", func(t *testing.T) {
		_, _, err := openSource(ctx, config.CurriculumConf{Source: "ftp"}, logger)
		assert.ErrorIs(t, err, curriculum.ErrUnknownSource)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.CurriculumConf{Source: "SQLite", SQLitePath: writeDB(t)}
		src, closeSource, err := openSource(ctx, cfg, logger)
		require.NoError(t, err)
		defer closeSource()

		techniques, err := src.Techniques(ctx)
		require.NoError(t, err)
		require.Len(t, techniques, 2)
		assert.Equal(t, "Deashi harai", techniques[0].Name)
	})

	t.Run("records", func(t *testing.T) {
		src, closeSource, err := openSource(ctx, config.CurriculumConf{Source: config.SourceRecords, RecordsURL: "http://127.0.0.1:1"}, logger)
		require.NoError(t, err)
		defer closeSource()
		assert.NotNil(t, src)
	})
}

func TestNewEngineWithLabels(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Curriculum.Source = config.SourceSQLite
	cfg.Curriculum.SQLitePath = writeDB(t)

	engine, err := newEngine(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, 2, engine.Labels().Len())
	assert.Equal(t, 1, engine.Labels().Count(1))
	assert.Equal(t, 1, engine.Labels().Count(3))
}

func TestNewEngineSurvivesMissingCurriculum(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Curriculum.Source = config.SourceSQLite
	cfg.Curriculum.SQLitePath = filepath.Join(t.TempDir(), "missing", "judo.sqlite")

	engine, err := newEngine(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, 0, engine.Labels().Len())

	engine.Start()
	assert.Equal(t, puzzle.StatePlaying, engine.State())
}

func TestWriteTechniques(t *testing.T) {
	catalog := puzzle.DefaultCatalog()
	labels := []puzzle.Label{
		{Name: "Deashi harai", Kanji: "出足払", Group: "Dai Ikkyo"},
		{Name: "Tomoe nage", Group: "Dai Sankyo"},
		{Name: "Stray", Group: "Dai Rokkyo"},
	}
	pool, skipped := puzzle.NewLabelPool(labels, catalog)
	assert.Equal(t, 1, skipped)

	var buf bytes.Buffer
	require.NoError(t, writeTechniques(&buf, catalog, labels, pool, ""))
	out := buf.String()
	assert.Contains(t, out, "Deashi harai")
	assert.Contains(t, out, "Tomoe nage")
	assert.NotContains(t, out, "Stray")

	buf.Reset()
	require.NoError(t, writeTechniques(&buf, catalog, labels, pool, "Dai Sankyo"))
	out = buf.String()
	assert.NotContains(t, out, "Deashi harai")
	assert.Contains(t, out, "Tomoe nage")
	assert.Equal(t, 1, strings.Count(out, "techniques"))
}

func TestWindowSize(t *testing.T) {
	w, h := windowSize(16, 8, 32)
	assert.Equal(t, 10*32+panelWidth, w)
	assert.Equal(t, 18*32, h)
}

func TestRootCommands(t *testing.T) {
	root := newRootCmd()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"window", "term", "techniques"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))
}
