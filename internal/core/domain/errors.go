package domain

import "go.trai.ch/zerr"

var (
	// ErrMalformedID is returned when a bit identifier does not match the [scope/]box/name[@version] grammar.
	ErrMalformedID = zerr.New("malformed bit id")

	// ErrBitNotFound is returned when a bit cannot be resolved in a store or on a remote.
	ErrBitNotFound = zerr.New("bit not found")

	// ErrBitNotInScope is returned when a bit has no entry in the dependency map.
	ErrBitNotInScope = zerr.New("bit not in scope")

	// ErrRemoteNotFound is returned when a scope name has no configured remote.
	ErrRemoteNotFound = zerr.New("remote not found")

	// ErrInvalidRemote is returned when a remote host does not match the accepted url grammar.
	ErrInvalidRemote = zerr.New("invalid remote host")

	// ErrTransportNotConnected is returned when a transport is used before Connect.
	ErrTransportNotConnected = zerr.New("transport not connected")

	// ErrRemoteRejected is returned when a remote refuses a pushed bit.
	ErrRemoteRejected = zerr.New("remote rejected bit")

	// ErrScopeNotFound is returned when no scope exists at or above a path.
	ErrScopeNotFound = zerr.New("scope not found")

	// ErrConsumerNotFound is returned when no consumer project exists at or above a path.
	ErrConsumerNotFound = zerr.New("consumer not found")

	// ErrConsumerExists is returned when a consumer project is initialized twice.
	ErrConsumerExists = zerr.New("consumer already exists")

	// ErrComponentExists is returned when an inline component is created over an existing one.
	ErrComponentExists = zerr.New("component already exists")

	// ErrValidation is returned when a bit fails its structural checks.
	ErrValidation = zerr.New("bit validation failed")

	// ErrPluginNotFound is returned when a compiler or tester name has no registered plugin.
	ErrPluginNotFound = zerr.New("plugin not found")

	// ErrCycleDetected is returned when dependency resolution revisits a bit.
	ErrCycleDetected = zerr.New("dependency cycle detected")

	// ErrUnsupportedSchema is returned when an on-disk format version is newer than this build understands.
	ErrUnsupportedSchema = zerr.New("unsupported schema version")

	// ErrStoreCreateFailed is returned when a store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create store directory")

	// ErrStoreReadFailed is returned when a stored record cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read record")

	// ErrStoreWriteFailed is returned when a record cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write record")

	// ErrStoreUnmarshalFailed is returned when a record cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal record")

	// ErrStoreMarshalFailed is returned when a record cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal record")

	// ErrChecksumMismatch is returned when a stored payload does not match its recorded checksum.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigWriteFailed is returned when the config file cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write config file")

	// ErrArchiveFailed is returned when a bit cannot be packed into or unpacked from an archive.
	ErrArchiveFailed = zerr.New("archive codec failed")

	// ErrPluginFailed is returned when a build or test plugin exits unsuccessfully.
	ErrPluginFailed = zerr.New("plugin execution failed")

	// ErrTestsFailed is returned when a tester plugin reports failing specs.
	ErrTestsFailed = zerr.New("tests failed")

	// ErrIndexFailed is returned when the search index cannot be read or written.
	ErrIndexFailed = zerr.New("search index failed")
)
