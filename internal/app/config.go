package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/plantgo/internal/assembler"
)

// PathAlias maps a URI scheme to a search directory.
type PathAlias struct {
	Scheme string
	Dir    string
}

// ParsePathAlias parses "scheme://=dir" (the "://" is optional).
func ParsePathAlias(s string) (PathAlias, error) {
	scheme, dir, ok := strings.Cut(s, "=")
	scheme = strings.TrimSuffix(scheme, "://")
	if !ok || scheme == "" || dir == "" {
		return PathAlias{}, fmt.Errorf("invalid path alias %q: want scheme://=dir", s)
	}
	return PathAlias{Scheme: scheme, Dir: dir}, nil
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ModelPath    string // description file or directory
	InstanceName string // only with a single model file
	World        bool   // treat every file as a world file

	Paths           []PathAlias
	MaxIncludeDepth int

	LogFormat string
	LogLevel  string
	Styled    bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ModelPath == "" {
		return nil, errors.New("ModelPath is a required configuration field and cannot be empty")
	}
	if cfg.InstanceName != "" && cfg.World {
		return nil, errors.New("an instance name cannot be used with world files")
	}
	if cfg.MaxIncludeDepth == 0 {
		cfg.MaxIncludeDepth = assembler.DefaultMaxIncludeDepth
	}
	if cfg.MaxIncludeDepth < 0 {
		return nil, fmt.Errorf("max include depth must be positive, got %d", cfg.MaxIncludeDepth)
	}
	for _, p := range cfg.Paths {
		if p.Scheme == "" || p.Dir == "" {
			return nil, fmt.Errorf("invalid path alias %q=%q", p.Scheme, p.Dir)
		}
	}
	return &cfg, nil
}
