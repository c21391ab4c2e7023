// Package config reads engine settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/signadot/subset/eval"
	"github.com/signadot/subset/subset"
)

var ErrConfig = errors.New("config error")

// Config holds the engine policy. Unset fields keep the engine defaults.
type Config struct {
	Exact          *bool `yaml:"exact"`
	Drop           *bool `yaml:"drop"`
	Strict         *bool `yaml:"strict"`
	LenientRecycle *bool `yaml:"lenientRecycle"`
	CacheSize      int   `yaml:"cacheSize"`
}

func Parse(d []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalWithOptions(d, c, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	if c.CacheSize < 0 {
		return nil, fmt.Errorf("%w: negative cacheSize %d", ErrConfig, c.CacheSize)
	}
	return c, nil
}

func Load(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Options returns the engine options c sets.
func (c *Config) Options() []subset.Option {
	var res []subset.Option
	if c.Exact != nil {
		res = append(res, subset.ExactMatch(*c.Exact))
	}
	if c.Drop != nil {
		res = append(res, subset.Drop(*c.Drop))
	}
	if c.Strict != nil {
		res = append(res, subset.Strict(*c.Strict))
	}
	if c.LenientRecycle != nil {
		res = append(res, subset.LenientRecycle(*c.LenientRecycle))
	}
	if c.CacheSize != 0 {
		res = append(res, subset.WithPredicates(eval.NewCompiler(c.CacheSize)))
	}
	return res
}
