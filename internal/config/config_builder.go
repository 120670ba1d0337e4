package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	// zeros holds the fields a source set to zero on purpose, keyed by
	// that source's config.
	zeros map[*StructuredConfig]explicitZeros
	err   error
}

// explicitZeros marks fields a source explicitly set to zero.
// mergo.WithOverride never copies zero values, so build applies them right
// after merging the source they came from.
type explicitZeros struct {
	testSteps     bool
	testStepDelay bool
}

func (z explicitZeros) apply(cfg *StructuredConfig) {
	if z.testSteps {
		cfg.App.TestSteps = 0
	}
	if z.testStepDelay {
		cfg.App.TestStepDelay = 0
	}
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		zeros:   make(map[*StructuredConfig]explicitZeros),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
		b.zeros[cfg].apply(config)
	}

	if config.App.Debug {
		config.App.LogLevel = "debug"
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, Defaults())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	b.zeros[envCfg] = envZeros(envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, zeros, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	b.zeros[flags] = zeros
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath != "" {
		jsonCfg, err := decodeJSONConfig(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		cfg, zeros := jsonCfg.toStructured()
		b.configs = append(b.configs, cfg)
		b.zeros[cfg] = zeros
	}

	return b
}
