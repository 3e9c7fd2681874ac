package config

import (
	"errors"
	"fmt"
	"reflect"

	"dario.cat/mergo"
)

// setOnceTransformer keeps an optional value once an earlier source set it,
// even when it points at a zero.
type setOnceTransformer struct{}

func (setOnceTransformer) Transformer(typ reflect.Type) func(dst, src reflect.Value) error {
	if typ != reflect.TypeFor[*int]() {
		return nil
	}
	return func(dst, src reflect.Value) error {
		if dst.CanSet() && dst.IsNil() {
			dst.Set(src)
		}
		return nil
	}
}

type flagParser func(args []string) (*StructuredConfig, []string, error)

type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs. Earlier sources take precedence:
// mergo only fills fields that are still zero.
func (b *configBuilder) build() (*StructuredConfig, []string, error) {
	if b.err != nil {
		return nil, nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithTransformers(setOnceTransformer{})); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, nil, err
	}

	return config, b.args, nil
}

func (b *configBuilder) withFlags(parse flagParser, args []string) *configBuilder {
	flagsCfg, rest, err := parse(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	b.args = rest
	return b
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

// withJSON loads the file named by the highest-priority source that sets one.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
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

func (b *configBuilder) withDefaults() *configBuilder {
	descent := DefaultDescentProbability
	b.configs = append(b.configs, &StructuredConfig{
		Generator: Generator{
			MaxEntries:         DefaultMaxEntries,
			DescentProbability: &descent,
		},
		Log: Log{Level: DefaultLogLevel},
	})
	return b
}
