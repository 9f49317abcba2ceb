package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/jmartal/chargeplan/core/charge"
	"github.com/jmartal/chargeplan/core/metrics"
	"github.com/jmartal/chargeplan/core/model"
	"github.com/jmartal/chargeplan/core/planner"
	"github.com/jmartal/chargeplan/infra/station"
)

// Config aggregates the settings of every module.
type Config struct {
	Provider station.Config     `json:"provider"`
	Planner  planner.Config     `json:"planner"`
	Curve    charge.CurveConfig `json:"charge_curve"`
	// CatalogProfile is the vehicle assumed for the per-station reference
	// charge estimates. Zero value selects the built-in default.
	CatalogProfile model.VehicleProfile `json:"catalog_profile"`
	Metrics        metrics.Config       `json:"metrics"`
	// PromAddr exposes the Prometheus endpoint when non-empty, e.g. ":9100".
	PromAddr string `json:"prom_addr"`
}

// Load reads the configuration file and applies K_-prefixed environment
// overrides (K_PROVIDER__API_KEY overrides provider.api_key).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("K_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "k_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Provider.SetDefaults()
	cfg.Planner.SetDefaults()
	cfg.Curve.SetDefaults()
	if err := cfg.Provider.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Planner.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Curve.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
