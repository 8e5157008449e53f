package config

// CurrentVersion is the config.yaml format written by SaveGlobal.
const CurrentVersion = "1"

// GlobalFile is the structure of $BIT_HOME/config.yaml.
type GlobalFile struct {
	Version       string                `yaml:"version"`
	DefaultRemote string                `yaml:"defaultRemote,omitempty"`
	Remotes       map[string]string     `yaml:"remotes,omitempty"`
	Plugins       map[string]*PluginDTO `yaml:"plugins,omitempty"`
}

// PluginDTO declares the commands of a compiler or tester plugin.
type PluginDTO struct {
	Build []string `yaml:"build,omitempty"`
	Test  []string `yaml:"test,omitempty"`
}
