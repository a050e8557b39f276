package config

import (
	"fmt"
	"sort"

	"github.com/arthur-debert/kbcomponent/pkg/errors"
	"github.com/knadh/koanf/v2"
)

// Config is the component configuration
type Config struct {
	Action          string                 `koanf:"action"`
	Parameters      map[string]interface{} `koanf:"parameters"`
	ImageParameters map[string]interface{} `koanf:"image_parameters"`
	Storage         Storage                `koanf:"storage"`

	k *koanf.Koanf
}

// Storage holds the storage mappings of the configuration
type Storage struct {
	Input InputMapping `koanf:"input"`
}

// InputMapping lists the tables mapped into the component
type InputMapping struct {
	Tables []TableMapping `koanf:"tables"`
}

// TableMapping is one input table
type TableMapping struct {
	Source      string   `koanf:"source"`
	Destination string   `koanf:"destination"`
	Columns     []string `koanf:"columns"`
}

// InputTables returns the input table mappings
func (c *Config) InputTables() []TableMapping {
	return c.Storage.Input.Tables
}

// Param returns the parameter at a dotted key path, or nil
func (c *Config) Param(key string) interface{} {
	if c.k == nil {
		return lookup(c.Parameters, key)
	}
	return c.k.Get(paramKey(key))
}

// HasParam reports whether the parameter exists
func (c *Config) HasParam(key string) bool {
	if c.k == nil {
		return lookup(c.Parameters, key) != nil
	}
	return c.k.Exists(paramKey(key))
}

// ParamString returns the parameter as a string, or "" when absent
func (c *Config) ParamString(key string) string {
	if c.k == nil {
		if v := lookup(c.Parameters, key); v != nil {
			return fmt.Sprint(v)
		}
		return ""
	}
	return c.k.String(paramKey(key))
}

// ParamBool returns the parameter as a bool, false when absent
func (c *Config) ParamBool(key string) bool {
	if c.k == nil {
		b, _ := lookup(c.Parameters, key).(bool)
		return b
	}
	return c.k.Bool(paramKey(key))
}

// ValidateRequired checks that every key is present in the parameters
func (c *Config) ValidateRequired(keys ...string) error {
	var missing []string
	for _, key := range keys {
		if !c.HasParam(key) {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return errors.Newf(errors.ErrConfigValid, "missing required parameters: %v", missing).
		WithDetail("missing", missing)
}

func paramKey(key string) string {
	return "parameters." + key
}
