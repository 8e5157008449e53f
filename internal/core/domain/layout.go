package domain

import (
	"os"
	"path/filepath"
)

const (
	// BitDirName is the name of the hidden scope directory.
	BitDirName = ".bit"

	// ScopeJSONName is the name of the scope descriptor file.
	ScopeJSONName = "scope.json"

	// DependencyMapName is the name of the persisted dependency map.
	DependencyMapName = "dependencies.json"

	// SourcesDirName holds bits owned by the scope.
	SourcesDirName = "sources"

	// CacheDirName holds the search index and other rebuildable data.
	CacheDirName = "cache"

	// TmpDirName holds build directories and packaged uploads.
	TmpDirName = "tmp"

	// ExternalDirName holds bits whose home is a remote scope.
	ExternalDirName = "external"

	// BitJSONName is the name of a bit's metadata file.
	BitJSONName = "bit.json"

	// DistDirName holds a bit's build output inside its record.
	DistDirName = "dist"

	// IndexFileName is the name of the search index inside the cache directory.
	IndexFileName = "index.json"

	// ComponentsDirName is where a consumer writes imported bits.
	ComponentsDirName = "components"

	// InlineComponentsDirName is where a consumer keeps components under edit.
	InlineComponentsDirName = "inline_components"

	// DefaultBitVersion is the version given to newly created components.
	DefaultBitVersion = "1.0.0"

	// GlobalConfigName is the name of the global configuration file.
	GlobalConfigName = "config.yaml"

	// HomeEnvVar overrides the global configuration directory.
	HomeEnvVar = "BIT_HOME"

	// LocalScopeMarker is the scope name reported for bits owned by the local scope.
	LocalScopeMarker = "@this"

	// DefaultImplFile is the implementation basename used when bit.json names none.
	DefaultImplFile = "impl.js"

	// DefaultSpecFile is the spec basename used when bit.json names none.
	DefaultSpecFile = "spec.js"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// ScopeRoot returns the hidden scope directory under path.
func ScopeRoot(path string) string {
	return filepath.Join(path, BitDirName)
}

// DefaultHomePath returns the directory holding the global configuration.
// BIT_HOME wins over the user's home directory.
func DefaultHomePath() string {
	if dir := os.Getenv(HomeEnvVar); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return BitDirName
	}
	return filepath.Join(home, BitDirName)
}

// DefaultGlobalConfigPath returns the path of the global configuration file.
func DefaultGlobalConfigPath() string {
	return filepath.Join(DefaultHomePath(), GlobalConfigName)
}
