// Package config resolves the settings of the tender command.
//
// Settings come from four layers. A built-in eye preset is the base, a YAML
// file overrides it, TENDER_* environment variables override the file, and
// command-line flags override everything.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"honnef.co/go/tender/phenotype"
)

// ErrUnknownPreset is returned when the selected preset does not exist.
var ErrUnknownPreset = errors.New("unknown preset")

// DefaultSeed is used when no layer sets a seed.
const DefaultSeed = 1

// Config holds resolved settings.
type Config struct {
	Seed   uint64
	Preset string
	// Workers limits parallel generation; 0 means GOMAXPROCS.
	Workers int

	Eye  phenotype.EyeConfig
	Head phenotype.HeadConfig
	// Face.Eye starts out as Eye; the face section of the file may
	// override it independently.
	Face phenotype.FaceConfig
}

// file is the YAML layout. Organ sections are kept as nodes until the
// preset they override is known.
type file struct {
	Seed    *uint64   `yaml:"seed"`
	Preset  *string   `yaml:"preset"`
	Workers *int      `yaml:"workers"`
	Eye     yaml.Node `yaml:"eye"`
	Head    yaml.Node `yaml:"head"`
	Face    yaml.Node `yaml:"face"`
}

type environment struct {
	Seed    *uint64 `env:"TENDER_SEED"`
	Preset  *string `env:"TENDER_PRESET"`
	Workers *int    `env:"TENDER_WORKERS"`
}

// Overrides are command-line values. Nil fields were not given.
type Overrides struct {
	Seed    *uint64
	Preset  *string
	Workers *int
}

// Load resolves the configuration. An empty path skips the file layer.
func Load(path string, o Overrides) (Config, error) {
	var f file
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &f); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	var e environment
	if err := env.Parse(&e); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg := Config{
		Seed:   DefaultSeed,
		Preset: "default",
	}
	for _, layer := range []struct {
		seed    *uint64
		preset  *string
		workers *int
	}{
		{f.Seed, f.Preset, f.Workers},
		{e.Seed, e.Preset, e.Workers},
		{o.Seed, o.Preset, o.Workers},
	} {
		if layer.seed != nil {
			cfg.Seed = *layer.seed
		}
		if layer.preset != nil {
			cfg.Preset = *layer.preset
		}
		if layer.workers != nil {
			cfg.Workers = *layer.workers
		}
	}
	if cfg.Workers < 0 {
		return Config{}, fmt.Errorf("negative worker count %d", cfg.Workers)
	}

	eye, ok := phenotype.Preset(cfg.Preset)
	if !ok {
		return Config{}, fmt.Errorf("%w %q (known: %v)", ErrUnknownPreset, cfg.Preset, phenotype.PresetNames())
	}
	cfg.Eye = eye
	cfg.Head = phenotype.DefaultHeadConfig()
	if err := decodeSection(&f.Eye, "eye", &cfg.Eye); err != nil {
		return Config{}, err
	}
	if err := decodeSection(&f.Head, "head", &cfg.Head); err != nil {
		return Config{}, err
	}
	cfg.Face = phenotype.DefaultFaceConfig()
	cfg.Face.Eye = cfg.Eye
	if err := decodeSection(&f.Face, "face", &cfg.Face); err != nil {
		return Config{}, err
	}

	if err := cfg.Eye.Validate(); err != nil {
		return Config{}, fmt.Errorf("eye: %w", err)
	}
	if err := cfg.Head.Validate(); err != nil {
		return Config{}, fmt.Errorf("head: %w", err)
	}
	if err := cfg.Face.Eye.Validate(); err != nil {
		return Config{}, fmt.Errorf("face eye: %w", err)
	}
	if err := cfg.Face.Head.Validate(); err != nil {
		return Config{}, fmt.Errorf("face head: %w", err)
	}
	return cfg, nil
}

// decodeSection decodes n over dst, leaving fields n does not mention
// untouched.
func decodeSection(n *yaml.Node, name string, dst any) error {
	if n.IsZero() {
		return nil
	}
	if err := n.Decode(dst); err != nil {
		return fmt.Errorf("failed to parse %s section: %w", name, err)
	}
	return nil
}
