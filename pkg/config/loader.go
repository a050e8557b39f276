package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/kbcomponent/pkg/datadir"
	cerrors "github.com/arthur-debert/kbcomponent/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables read into the configuration
const EnvPrefix = "KBCOMPONENT_"

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load reads the configuration from the data directory, then applies
// environment variables and overrides. Overrides use dotted keys, e.g.
// {"action": "testConnection"}.
func Load(dd *datadir.DataDir, overrides map[string]interface{}) (*Config, error) {
	path, err := dd.ConfigFile()
	if err != nil {
		return nil, err
	}

	data, err := dd.ReadFile(path)
	if err != nil {
		return nil, cerrors.Wrapf(err, cerrors.ErrConfigLoad, "failed to read config from %s", path)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// 1. Configuration file
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return nil, cerrors.Wrapf(err, cerrors.ErrConfigParse, "failed to parse config from %s", path)
	}

	// 2. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, cerrors.Wrap(err, cerrors.ErrConfigLoad, "failed to load env vars")
	}

	// 3. Overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, cerrors.Wrap(err, cerrors.ErrConfigLoad, "failed to load overrides")
		}
	}

	return unmarshal(k)
}

// FromMap builds a configuration from an in-memory map, with the same
// decoding as Load
func FromMap(values map[string]interface{}) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
		return nil, cerrors.Wrap(err, cerrors.ErrConfigLoad, "failed to load config map")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, cerrors.Wrap(err, cerrors.ErrConfigValid, "failed to unmarshal configuration")
	}

	if cfg.Parameters == nil {
		cfg.Parameters = map[string]interface{}{}
	}
	cfg.k = k
	return &cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return kjson.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	default:
		return nil, cerrors.Newf(cerrors.ErrConfigLoad, "unsupported config file type: %s", path)
	}
}

// envKey maps KBCOMPONENT_PARAMETERS__TEST_VALUE to parameters.test_value
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

func lookup(m map[string]interface{}, key string) interface{} {
	var cur interface{} = m
	for _, part := range strings.Split(key, ".") {
		node, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur, ok = node[part]
		if !ok {
			return nil
		}
	}
	return cur
}
