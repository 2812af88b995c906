// Package config loads gokyotris settings from file and environment.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"

	"github.com/plus3/gokyotris/puzzle"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

const EnvPrefix = "GOKYO"

// Curriculum source names.
const (
	SourceNone    = "none"
	SourceSQLite  = "sqlite"
	SourceRecords = "records"
	SourceMongo   = "mongo"
)

type Config struct {
	Board       BoardConf      `mapstructure:"board"`
	Gravity     GravityConf    `mapstructure:"gravity"`
	Seed        uint64         `mapstructure:"seed"`
	Groups      []GroupConf    `mapstructure:"groups"`
	Kinds       map[string]int `mapstructure:"kinds"`
	Curriculum  CurriculumConf `mapstructure:"curriculum"`
	Log         LogConf        `mapstructure:"log"`
	Window      WindowConf     `mapstructure:"window"`
	MetricsAddr string         `mapstructure:"metricsAddr"`
}

type BoardConf struct {
	Rows int `mapstructure:"rows"`
	Cols int `mapstructure:"cols"`
}

type GravityConf struct {
	BaseTicks  int `mapstructure:"baseTicks"`
	MinTicks   int `mapstructure:"minTicks"`
	StepTicks  int `mapstructure:"stepTicks"`
	StartLevel int `mapstructure:"startLevel"`
	MaxLevel   int `mapstructure:"maxLevel"`
}

type GroupConf struct {
	ID    int    `mapstructure:"id"`
	Name  string `mapstructure:"name"`
	Color string `mapstructure:"color"`
}

type CurriculumConf struct {
	Source     string        `mapstructure:"source"`
	SQLitePath string        `mapstructure:"sqlitePath"`
	RecordsURL string        `mapstructure:"recordsURL"`
	Collection string        `mapstructure:"collection"`
	MongoURI   string        `mapstructure:"mongoURI"`
	MongoDB    string        `mapstructure:"mongoDB"`
	MediaRoot  string        `mapstructure:"mediaRoot"`
	CacheTTL   time.Duration `mapstructure:"cacheTTL"`
}

type LogConf struct {
	Level string `mapstructure:"level"`
}

type WindowConf struct {
	CellSize int  `mapstructure:"cellSize"`
	Debug    bool `mapstructure:"debug"`
	TPS      int  `mapstructure:"tps"`
}

func setDefaults(v *viper.Viper) {
	rules := puzzle.DefaultRules()
	v.SetDefault("board.rows", puzzle.DefaultRows)
	v.SetDefault("board.cols", puzzle.DefaultCols)
	v.SetDefault("gravity.baseTicks", rules.BaseTicks)
	v.SetDefault("gravity.minTicks", rules.MinTicks)
	v.SetDefault("gravity.stepTicks", rules.StepTicks)
	v.SetDefault("gravity.startLevel", rules.StartLevel)
	v.SetDefault("gravity.maxLevel", rules.MaxLevel)
	v.SetDefault("seed", 0)
	v.SetDefault("curriculum.source", SourceNone)
	v.SetDefault("curriculum.sqlitePath", "judo.sqlite")
	v.SetDefault("curriculum.recordsURL", "http://127.0.0.1:8090")
	v.SetDefault("curriculum.collection", "techniques")
	v.SetDefault("curriculum.mongoURI", "mongodb://127.0.0.1:27017")
	v.SetDefault("curriculum.mongoDB", "judo")
	v.SetDefault("curriculum.mediaRoot", "/media")
	v.SetDefault("curriculum.cacheTTL", 10*time.Minute)
	v.SetDefault("log.level", "info")
	v.SetDefault("window.cellSize", 32)
	v.SetDefault("window.debug", false)
	v.SetDefault("window.tps", 60)
	v.SetDefault("metricsAddr", "")
}

// Load reads defaults, then the optional file at path, then GOKYO_* environment
// variables, and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if len(cfg.Groups) == 0 {
		cfg.Groups = DefaultGroups()
	}
	if len(cfg.Kinds) == 0 {
		cfg.Kinds = DefaultKinds()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultGroups mirrors puzzle.DefaultGroups in config form.
func DefaultGroups() []GroupConf {
	var out []GroupConf
	for _, g := range puzzle.DefaultGroups() {
		out = append(out, GroupConf{ID: int(g.ID), Name: g.Name, Color: hexColor(g.Color)})
	}
	return out
}

// DefaultKinds mirrors puzzle.DefaultMapping in config form.
func DefaultKinds() map[string]int {
	out := map[string]int{}
	for k, g := range puzzle.DefaultMapping() {
		out[k.String()] = int(g)
	}
	return out
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c *Config) Validate() error {
	if _, err := c.Catalog(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Board.Rows < 4 || c.Board.Cols < 4 {
		return fmt.Errorf("%w: board %dx%d is too small", ErrInvalid, c.Board.Rows, c.Board.Cols)
	}
	switch strings.ToLower(c.Curriculum.Source) {
	case "", SourceNone, SourceSQLite, SourceRecords, SourceMongo:
	default:
		return fmt.Errorf("%w: curriculum source %q", ErrInvalid, c.Curriculum.Source)
	}
	return nil
}

func (c *Config) Rules() puzzle.Rules {
	return puzzle.Rules{
		BaseTicks:  c.Gravity.BaseTicks,
		MinTicks:   c.Gravity.MinTicks,
		StepTicks:  c.Gravity.StepTicks,
		StartLevel: c.Gravity.StartLevel,
		MaxLevel:   c.Gravity.MaxLevel,
	}
}

// Catalog builds the kind to group table. Kind keys are case-insensitive.
func (c *Config) Catalog() (*puzzle.Catalog, error) {
	groups := make([]puzzle.GroupInfo, 0, len(c.Groups))
	for _, g := range c.Groups {
		col, err := colorful.Hex(g.Color)
		if err != nil {
			return nil, fmt.Errorf("group %q: %w", g.Name, err)
		}
		if g.ID < 1 || g.ID > int(puzzle.MaxGroup) {
			return nil, fmt.Errorf("%w: group %q id %d", puzzle.ErrInvalidMapping, g.Name, g.ID)
		}
		r, gr, b := col.RGB255()
		groups = append(groups, puzzle.GroupInfo{
			ID:    puzzle.Group(g.ID),
			Name:  g.Name,
			Color: color.RGBA{R: r, G: gr, B: b, A: 0xff},
		})
	}

	mapping := make(map[puzzle.Kind]puzzle.Group, len(c.Kinds))
	for name, id := range c.Kinds {
		k, err := puzzle.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", puzzle.ErrInvalidMapping, err)
		}
		if id < 1 || id > int(puzzle.MaxGroup) {
			return nil, fmt.Errorf("%w: kind %s maps to group %d", puzzle.ErrInvalidMapping, k, id)
		}
		mapping[k] = puzzle.Group(id)
	}
	return puzzle.NewCatalog(groups, mapping)
}

// EngineOptions turns the board, gravity, group and seed settings into
// engine options.
func (c *Config) EngineOptions() ([]puzzle.Option, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, err
	}
	opts := []puzzle.Option{
		puzzle.WithSize(c.Board.Rows, c.Board.Cols),
		puzzle.WithRules(c.Rules()),
		puzzle.WithCatalog(catalog),
	}
	if c.Seed != 0 {
		opts = append(opts, puzzle.WithSeed(c.Seed))
	}
	return opts, nil
}
