// Package config loads and saves the global configuration.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var validAliasRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]+!?$`)

// Loader implements ports.ConfigLoader on a YAML file.
type Loader struct {
	Logger ports.Logger
	path   string
}

// NewLoader creates a Loader for path. An empty path selects the default location.
func NewLoader(logger ports.Logger, path string) *Loader {
	if path == "" {
		path = domain.DefaultGlobalConfigPath()
	}
	return &Loader{Logger: logger, path: path}
}

// Path returns the file the loader reads and writes.
func (l *Loader) Path() string {
	return l.path
}

// LoadGlobal reads the configuration. A missing file yields an empty one.
func (l *Loader) LoadGlobal() (*domain.GlobalConfig, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emptyConfig(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", l.path)
	}

	var file GlobalFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", l.path)
	}

	if file.Version != "" && file.Version != CurrentVersion && l.Logger != nil {
		l.Logger.Warn("unknown config version " + file.Version + " in " + l.path)
	}

	return l.toDomain(&file)
}

func (l *Loader) toDomain(file *GlobalFile) (*domain.GlobalConfig, error) {
	cfg := emptyConfig()

	for raw, host := range file.Remotes {
		if !validAliasRegex.MatchString(raw) {
			return nil, zerr.With(zerr.Wrap(domain.ErrInvalidRemote, "invalid remote alias"), "alias", raw)
		}
		remote := domain.NewRemote(raw, host)
		if _, _, err := remote.Endpoint(); err != nil {
			return nil, zerr.With(err, "path", l.path)
		}
		cfg.Remotes[remote.Alias] = remote
	}

	for name, plugin := range file.Plugins {
		if plugin == nil {
			continue
		}
		cfg.Plugins[name] = domain.PluginCommand{Build: plugin.Build, Test: plugin.Test}
	}

	if file.DefaultRemote != "" {
		if _, err := cfg.Remotes.Get(file.DefaultRemote); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "default remote is not configured"), "path", l.path)
		}
		cfg.DefaultRemote = file.DefaultRemote
	}
	return cfg, nil
}

// SaveGlobal writes cfg through a temp file and rename.
func (l *Loader) SaveGlobal(cfg *domain.GlobalConfig) error {
	file := GlobalFile{
		Version:       CurrentVersion,
		DefaultRemote: cfg.DefaultRemote,
		Remotes:       cfg.Remotes.ToMap(),
	}
	if len(cfg.Plugins) > 0 {
		file.Plugins = make(map[string]*PluginDTO, len(cfg.Plugins))
		names := make([]string, 0, len(cfg.Plugins))
		for name := range cfg.Plugins {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p := cfg.Plugins[name]
			file.Plugins[name] = &PluginDTO{Build: p.Build, Test: p.Test}
		}
	}

	data, err := yaml.Marshal(&file)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigWriteFailed.Error())
	}

	if err := os.MkdirAll(filepath.Dir(l.path), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", l.path)
	}
	tmp, err := os.CreateTemp(filepath.Dir(l.path), "."+domain.GlobalConfigName+".tmp-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", l.path)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", l.path)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", l.path)
	}
	if err := os.Chmod(tmp.Name(), domain.PrivateFilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", l.path)
	}
	if err := os.Rename(tmp.Name(), l.path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigWriteFailed.Error()), "path", l.path)
	}
	return nil
}

func emptyConfig() *domain.GlobalConfig {
	return &domain.GlobalConfig{
		Remotes: domain.Remotes{},
		Plugins: map[string]domain.PluginCommand{},
	}
}
