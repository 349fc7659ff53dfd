package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"macrostat/infra/errorx"
	"macrostat/infra/staticlog"
	"macrostat/timeSeries/adfuller"
)

// Config drives one analysis run. Zero values are filled by Default; a YAML
// file overlays the defaults and CLI flags overlay the file.
type Config struct {
	Data         string           `yaml:"data"`
	Plot         string           `yaml:"plot"`
	Dependent    string           `yaml:"dependent"`
	Regressors   []string         `yaml:"regressors"`
	TimeColumn   string           `yaml:"time_column"`
	Significance float64          `yaml:"significance"`
	Trend        string           `yaml:"trend"`
	LagMode      string           `yaml:"lag_mode"`
	MaxLag       int              `yaml:"max_lag"` // 0 selects the Schwert bound
	Log          staticlog.Config `yaml:"log"`
}

func Default() *Config {
	return &Config{
		Data:         "canadian_macro_data.csv",
		Plot:         "canadian_macro_analysis.png",
		Dependent:    "GDP",
		Regressors:   []string{"population", "longevity", "mean_taxRate"},
		TimeColumn:   "year",
		Significance: 0.05,
		Trend:        adfuller.TREND_C,
		LagMode:      adfuller.LAG_MODE_AIC.String(),
		Log:          staticlog.Config{Level: "info"},
	}
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	c.Trend = strings.ToLower(strings.TrimSpace(c.Trend))
	switch c.Trend {
	case adfuller.TREND_N, adfuller.TREND_C, adfuller.TREND_CT:
	default:
		return errorx.Newf(errorx.INVALID_VALUE, "trend %q: want n, c or ct", c.Trend)
	}
	if adfuller.ParseLagMode(c.LagMode) == adfuller.LAG_MODE_ERROR {
		return errorx.Newf(errorx.INVALID_VALUE, "lag_mode %q: want AIC, BIC or t-stat", c.LagMode)
	}
	if c.Significance <= 0 || c.Significance >= 1 {
		return errorx.Newf(errorx.INVALID_VALUE, "significance %v outside (0,1)", c.Significance)
	}
	if c.MaxLag < 0 {
		return errorx.Newf(errorx.INVALID_VALUE, "max_lag %d is negative", c.MaxLag)
	}
	if c.Data == "" {
		return errorx.New(errorx.EMPTY_VALUE, "no dataset path configured")
	}
	if c.Dependent == "" || len(c.Regressors) == 0 {
		return errorx.New(errorx.EMPTY_VALUE, "dependent and regressors must be set")
	}
	return nil
}

// Variables returns the dependent followed by the regressors, the order in
// which every analysis pass walks the table.
func (c *Config) Variables() []string {
	out := make([]string, 0, 1+len(c.Regressors))
	out = append(out, c.Dependent)
	out = append(out, c.Regressors...)
	return out
}
