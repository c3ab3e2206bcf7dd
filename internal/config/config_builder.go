package config

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"dario.cat/mergo"
)

// Layer priorities. A layer with a higher value overrides non-zero fields of
// the layers below it.
const (
	priorityDefaults = iota
	priorityFile
	priorityEnv
	priorityFlags
)

type layer struct {
	priority int
	cfg      *StructuredConfig
}

type configBuilder struct {
	layers []layer
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		layers: make([]layer, 0, 4),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	slices.SortStableFunc(b.layers, func(a, c layer) int {
		return cmp.Compare(a.priority, c.priority)
	})

	config := new(StructuredConfig)
	for _, l := range b.layers {
		if err := mergo.Merge(config, l.cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) add(priority int, cfg *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, layer{priority: priority, cfg: cfg})
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(priorityDefaults, Defaults())
}

func (b *configBuilder) withDotEnv(flags *Flags) *configBuilder {
	path := ""
	if flags != nil {
		path = flags.envFile
	}
	if err := loadDotEnv(path); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(priorityEnv, envCfg)
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	if flags == nil {
		return b
	}
	return b.add(priorityFlags, flags.structured())
}

// withFile must run after the layers that can name the file (env, flags).
// The highest-priority non-empty path wins.
func (b *configBuilder) withFile() *configBuilder {
	var path string
	best := -1
	for _, l := range b.layers {
		if l.cfg.ConfigFilePath != "" && l.priority > best {
			best = l.priority
			path = l.cfg.ConfigFilePath
		}
	}

	if path == "" {
		return b
	}

	fileCfg, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(priorityFile, fileCfg)
}

// GetStructuredConfig loads the configuration from every source and merges
// it. flags may be nil when no command line is involved.
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(flags).
		withEnv().
		withFlags(flags).
		withFile().
		build()
}
