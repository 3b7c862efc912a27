package config

import (
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	_defaultModel   = "gpt-4"
	_defaultMaxTurn = 50
	_defaultTopK    = 5
)

// Config carries everything the validation run needs. A missing API
// key is not an error at load time: the run proceeds and fails at
// the LLM boundary, matching the original behavior.
type Config struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	BaseURL    string `mapstructure:"base_url"`
	MaxTurn    int    `mapstructure:"max_turn"`
	SearchTopK int    `mapstructure:"search_top_k"`
	Verbose    bool   `mapstructure:"verbose"`
}

// Load builds a Config from defaults, an optional YAML file, and the
// OPENAI_* environment variables, in that order of precedence (env
// wins).
func Load(path string) (*Config, error) {
	cfg := &Config{
		Model:      _defaultModel,
		MaxTurn:    _defaultMaxTurn,
		SearchTopK: _defaultTopK,
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
		var values map[string]interface{}
		if err := yaml.Unmarshal(raw, &values); err != nil {
			return nil, errors.Wrapf(err, "parse config file %s", path)
		}
		if err := mapstructure.Decode(normalize(values), cfg); err != nil {
			return nil, errors.Wrapf(err, "decode config file %s", path)
		}
	}

	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("OPENAI_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("OPENAI_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	return cfg, nil
}

// normalize converts yaml.v2's map[interface{}]interface{} values
// into what mapstructure can walk.
func normalize(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(val))
		for k, vv := range val {
			if ks, ok := k.(string); ok {
				m[ks] = normalizeValue(vv)
			}
		}
		return m
	case []interface{}:
		for i := range val {
			val[i] = normalizeValue(val[i])
		}
		return val
	default:
		return v
	}
}
