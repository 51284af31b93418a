package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

type configBuilder struct {
	args    []string
	configs []*StructuredConfig
	err     error

	flagCfg *StructuredConfig
	envCfg  *StructuredConfig
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{
		args:    args,
		configs: make([]*StructuredConfig, 0, 4),
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
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaultConfig())
	return b
}

// withDotEnv loads the .env file named by -env-file or DOTENV into the
// process environment. It adds no layer of its own.
func (b *configBuilder) withDotEnv() *configBuilder {
	flagCfg, err := b.flags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	path := flagCfg.DotEnvPath
	if path == "" {
		path = os.Getenv("DOTENV")
	}

	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	if envCfg, err := b.env(); err == nil && envCfg.JSONFilePath != "" {
		jsonPath = envCfg.JSONFilePath
	}
	if flagCfg, err := b.flags(); err == nil && flagCfg.JSONFilePath != "" {
		jsonPath = flagCfg.JSONFilePath
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := b.env()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flagCfg, err := b.flags()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagCfg)
	return b
}

// env parses the environment once; later calls return the cached layer.
func (b *configBuilder) env() (*StructuredConfig, error) {
	if b.envCfg != nil {
		return b.envCfg, nil
	}

	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}
	b.envCfg = envCfg
	return envCfg, nil
}

// flags parses the command line once; later calls return the cached layer.
func (b *configBuilder) flags() (*StructuredConfig, error) {
	if b.flagCfg != nil {
		return b.flagCfg, nil
	}

	flagCfg, err := ParseFlags(b.args)
	if err != nil {
		return nil, err
	}
	b.flagCfg = flagCfg
	return flagCfg, nil
}
