package plugin_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bit/internal/adapters/plugin"
	"go.trai.ch/bit/internal/adapters/shell"
	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func configWith(plugins map[string]domain.PluginCommand) *domain.GlobalConfig {
	return &domain.GlobalConfig{Remotes: domain.Remotes{}, Plugins: plugins}
}

func TestRegistry_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadGlobal().Return(configWith(map[string]domain.PluginCommand{
		"babel": {Build: []string{"babel"}},
	}), nil).Times(1)

	reg := plugin.NewRegistry(loader, mocks.NewMockExecutor(ctrl))

	p, err := reg.Lookup("babel")
	require.NoError(t, err)
	assert.NotNil(t, p)

	_, err = reg.Lookup("tsc")
	assert.ErrorIs(t, err, domain.ErrPluginNotFound)
}

func TestRegistry_LookupConfigError(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadGlobal().Return(nil, domain.ErrConfigParseFailed)

	_, err := plugin.NewRegistry(loader, mocks.NewMockExecutor(ctrl)).Lookup("babel")
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestCommand_Build_CollectsDist(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadGlobal().Return(configWith(map[string]domain.PluginCommand{
		"babel": {Build: []string{"babel", "impl.js"}},
	}), nil)

	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, _, _ io.Writer) error {
			assert.Equal(t, []string{"babel", "impl.js"}, cmd.Args)
			dist := cmd.Env["BIT_DIST"]
			require.NoError(t, os.MkdirAll(filepath.Join(dist, "lib"), domain.DirPerm))
			require.NoError(t, os.WriteFile(filepath.Join(dist, "index.js"), []byte("out"), domain.FilePerm))
			require.NoError(t, os.WriteFile(filepath.Join(dist, "lib", "a.js"), []byte("a"), domain.FilePerm))
			return nil
		})

	p, err := plugin.NewRegistry(loader, executor).Lookup("babel")
	require.NoError(t, err)

	artifact, err := p.Build(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{
		"index.js": []byte("out"),
		"lib/a.js": []byte("a"),
	}, artifact.Files)
}

func TestCommand_Build_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadGlobal().Return(configWith(map[string]domain.PluginCommand{
		"babel": {Build: []string{"babel"}},
	}), nil)
	executor := mocks.NewMockExecutor(ctrl)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("exit 1"))

	p, err := plugin.NewRegistry(loader, executor).Lookup("babel")
	require.NoError(t, err)

	_, err = p.Build(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrPluginFailed)

	_, err = p.Test(context.Background(), t.TempDir())
	assert.ErrorIs(t, err, domain.ErrPluginNotFound)
}

func TestCommand_Test_WithShell(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockConfigLoader(ctrl)
	loader.EXPECT().LoadGlobal().Return(configWith(map[string]domain.PluginCommand{
		"pass": {Test: []string{"sh", "-c", "echo ok"}},
		"fail": {Test: []string{"sh", "-c", "echo broken; exit 1"}},
	}), nil)

	reg := plugin.NewRegistry(loader, shell.NewExecutor(nil))

	pass, err := reg.Lookup("pass")
	require.NoError(t, err)
	report, err := pass.Test(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.True(t, report.Passed)
	assert.Equal(t, "ok\n", report.Output)

	fail, err := reg.Lookup("fail")
	require.NoError(t, err)
	report, err = fail.Test(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.False(t, report.Passed)
	assert.Equal(t, "broken\n", report.Output)
}
