package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	DefaultXColumn    = "Parent Affect"
	DefaultYColumn    = "Child Affect"
	DefaultTimeColumn = "Onset"
	DefaultFormat     = "table"
	DefaultLogLevel   = "info"
	DefaultDataDir    = ".ssgrid"
	DefaultTheme      = "night"
)

type Config struct {
	Columns    ColumnConfig `yaml:"columns"`
	XRange     []string     `yaml:"x_range" validate:"required,min=1,unique,dive,required"`
	YRange     []string     `yaml:"y_range" validate:"required,min=1,unique,dive,required"`
	Output     OutputConfig `yaml:"output"`
	Dispersion string       `yaml:"dispersion" validate:"oneof=float exact"`
	LogLevel   string       `yaml:"log_level" validate:"oneof=debug info warn error"`
	DataDir    string       `yaml:"data_dir" validate:"required"`
}

type ColumnConfig struct {
	X         string `yaml:"x" validate:"required"`
	Y         string `yaml:"y" validate:"required,nefield=X"`
	Time      string `yaml:"time" validate:"required,nefield=X,nefield=Y"`
	ID        string `yaml:"id"`
	Delimiter string `yaml:"delimiter" validate:"omitempty,len=1"`
}

type OutputConfig struct {
	Format    string `yaml:"format" validate:"oneof=table csv json"`
	Precision int    `yaml:"precision" validate:"gte=0,lte=15"`
	Path      string `yaml:"path"`
	Theme     string `yaml:"theme" validate:"omitempty,oneof=night retro minimal ocean"`
}

var validate = validator.New()

func DefaultConfig() *Config {
	return &Config{
		Columns: ColumnConfig{
			X:         DefaultXColumn,
			Y:         DefaultYColumn,
			Time:      DefaultTimeColumn,
			Delimiter: ",",
		},
		XRange: labels(1, 5),
		YRange: labels(1, 5),
		Output: OutputConfig{
			Format:    DefaultFormat,
			Precision: 6,
			Theme:     DefaultTheme,
		},
		Dispersion: "float",
		LogLevel:   DefaultLogLevel,
		DataDir:    DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	return validate.Struct(c)
}

func (c *Config) ExactDispersion() bool {
	return c.Dispersion == "exact"
}

func (c *Config) Delimiter() rune {
	if c.Columns.Delimiter == "" {
		return ','
	}
	return []rune(c.Columns.Delimiter)[0]
}

func labels(from, to int) []string {
	out := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, fmt.Sprint(i))
	}
	return out
}
