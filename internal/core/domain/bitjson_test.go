package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bit/internal/core/domain"
)

func TestDecodeBitJSON_Current(t *testing.T) {
	meta := domain.NewBitJSON("utils", "trim", "1.0.0")
	meta.Dependencies = []string{"utils/pad@1.0.0"}
	meta.Compiler = "babel"

	data, err := meta.Encode()
	require.NoError(t, err)

	got, err := domain.DecodeBitJSON(data)
	require.NoError(t, err)
	assert.Equal(t, meta, got)
}

func TestDecodeBitJSON_MigratesLegacyDependencies(t *testing.T) {
	legacy := []byte(`{
  "name": "trim",
  "box": "utils",
  "version": "1.0.0",
  "dependencies": {"utils/pad": "1.0.0", "str/left": "2.1.0"}
}`)

	got, err := domain.DecodeBitJSON(legacy)
	require.NoError(t, err)

	assert.Equal(t, domain.BitJSONSchema, got.Schema)
	assert.Equal(t, []string{"str/left@2.1.0", "utils/pad@1.0.0"}, got.Dependencies)
	assert.Equal(t, domain.DefaultImplFile, got.Impl)
}

func TestDecodeBitJSON_Errors(t *testing.T) {
	_, err := domain.DecodeBitJSON([]byte(`{"schema": 99, "name": "x"}`))
	assert.ErrorIs(t, err, domain.ErrUnsupportedSchema)

	_, err = domain.DecodeBitJSON([]byte(`{"schema": 1, "dependencies": {"a/b": "1.0.0"}}`))
	assert.Error(t, err)

	_, err = domain.DecodeBitJSON([]byte(`not json`))
	assert.Error(t, err)
}

func TestScopeJSON_RoundTrip(t *testing.T) {
	s := domain.NewScopeJSON("mine")
	s.Remotes["origin!"] = "bit://host:3000"

	data, err := s.Encode()
	require.NoError(t, err)

	got, err := domain.DecodeScopeJSON(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestDecodeScopeJSON_Legacy(t *testing.T) {
	got, err := domain.DecodeScopeJSON([]byte(`{"name": "old"}`))
	require.NoError(t, err)

	assert.Equal(t, "old", got.Name)
	assert.Equal(t, domain.ScopeJSONSchema, got.Schema)
	assert.NotNil(t, got.Remotes)
}
