package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration sources in increasing priority and
// merges them on build. The JSON file is resolved last because its path may
// come from any other source.
type configBuilder struct {
	defaults []*StructuredConfig
	configs  []*StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	sources := make([]*StructuredConfig, 0, len(b.defaults)+len(b.configs)+2)
	sources = append(sources, defaultConfig())
	sources = append(sources, b.defaults...)

	if jsonPath := b.jsonFilePath(); jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			return nil, fmt.Errorf("error occured during building config: %w", err)
		}
		sources = append(sources, jsonCfg)
	}
	sources = append(sources, b.configs...)

	config := new(StructuredConfig)
	for _, cfg := range sources {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

// jsonFilePath returns the JSON path set by the highest-priority source.
func (b *configBuilder) jsonFilePath() string {
	var path string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	return path
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withConfig adds an already parsed source, e.g. flags owned by a CLI
// framework.
func (b *configBuilder) withConfig(cfg *StructuredConfig) *configBuilder {
	if cfg != nil {
		b.configs = append(b.configs, cfg)
	}
	return b
}

// withDefaults adds process-specific defaults that rank below the JSON file.
func (b *configBuilder) withDefaults(cfg *StructuredConfig) *configBuilder {
	b.defaults = append(b.defaults, cfg)
	return b
}
