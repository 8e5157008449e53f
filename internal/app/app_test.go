package app_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bit/internal/adapters/archive"
	"go.trai.ch/bit/internal/adapters/indexer"
	"go.trai.ch/bit/internal/adapters/network"
	"go.trai.ch/bit/internal/adapters/repository"
	"go.trai.ch/bit/internal/adapters/telemetry"
	"go.trai.ch/bit/internal/app"
	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports/mocks"
	"go.trai.ch/bit/internal/engine/consumer"
	"go.trai.ch/bit/internal/engine/scope"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app    *app.App
	config *mocks.MockConfigLoader
	global *domain.GlobalConfig
	root   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	global := &domain.GlobalConfig{Remotes: domain.Remotes{}}
	config := mocks.NewMockConfigLoader(ctrl)
	config.EXPECT().LoadGlobal().Return(global, nil).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	plugins := mocks.NewMockPluginRegistry(ctrl)
	layout := repository.NewLayout()
	dialer := network.NewDialer()
	scopes := scope.NewFactory(
		repository.NewOpener(), layout, dialer, archive.NewTarCodec(), indexer.New(),
		config, plugins, telemetry.NewNoOpTracer(), log,
	)
	dialer.SetOpener(scopes)

	root := filepath.Join(t.TempDir(), "project")
	a := app.New(scopes, consumer.NewLoader(scopes, layout, plugins, log), config, log).WithDir(root)
	return &fixture{app: a, config: config, global: global, root: root}
}

func TestApp_ProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	path, err := f.app.Init(ctx, f.root, app.InitOptions{})
	require.NoError(t, err)
	assert.Equal(t, f.root, path)

	_, err = f.app.Create(ctx, "utils/pad", true)
	require.NoError(t, err)
	inline, err := f.app.ListInline(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0"}, inline.IDs().Strings())

	exported, err := f.app.Export(ctx, "utils/pad")
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0"}, exported.IDs().Strings())

	ids, err := f.app.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"@this/utils/pad@1.0.0"}, ids)

	bit, err := f.app.Show(ctx, "utils/pad")
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", bit.Meta.Version)

	bits, err := f.app.Get(ctx, "@this/utils/pad@1.0.0")
	require.NoError(t, err)
	assert.Len(t, bits, 1)

	desc, err := f.app.Describe(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "project", desc.Name)

	results, err := f.app.Search(ctx, "pad", app.SearchOptions{Reindex: true})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "pad", results[0].Name)

	require.NoError(t, f.app.Remove(ctx, "utils/pad"))
	_, err = f.app.Show(ctx, "utils/pad")
	require.NoError(t, err, "removing the inline copy keeps the published bit")

	modified, err := f.app.Modify(ctx, "utils/pad")
	require.NoError(t, err)
	assert.Equal(t, "utils/pad@1.0.0", modified.ID().String())
	inline, err = f.app.ListInline(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0"}, inline.IDs().Strings())

	_, err = f.app.Build(ctx, "utils/pad")
	require.ErrorIs(t, err, domain.ErrPluginNotFound)
	_, err = f.app.Build(ctx, "not an id")
	require.ErrorIs(t, err, domain.ErrMalformedID)
}

func TestApp_PackAndUpload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.app.Init(ctx, f.root, app.InitOptions{})
	require.NoError(t, err)
	_, err = f.app.Create(ctx, "utils/pad", false)
	require.NoError(t, err)
	_, err = f.app.Export(ctx, "utils/pad")
	require.NoError(t, err)

	path, err := f.app.Pack(ctx, "utils/pad")
	require.NoError(t, err)
	assert.FileExists(t, path)

	other := newFixture(t)
	_, err = other.app.Init(ctx, other.root, app.InitOptions{Bare: true, Name: "registry"})
	require.NoError(t, err)
	require.NoError(t, other.app.Upload(ctx, path))

	ids, err := other.app.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"@this/utils/pad@1.0.0"}, ids)

	desc, err := other.app.Describe(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "registry", desc.Name)
}

func TestApp_ScopeRemotes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.app.Init(ctx, f.root, app.InitOptions{Bare: true})
	require.NoError(t, err)

	require.NoError(t, f.app.AddRemote(ctx, "origin!", "bit://origin.local:3000", false))
	remotes, err := f.app.Remotes(ctx, false)
	require.NoError(t, err)
	require.Len(t, remotes, 1)
	assert.True(t, remotes[0].Primary)

	require.NoError(t, f.app.RemoveRemote(ctx, "origin", false))
	remotes, err = f.app.Remotes(ctx, false)
	require.NoError(t, err)
	assert.Empty(t, remotes)
}

func TestApp_GlobalRemotes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	err := f.app.AddRemote(ctx, "origin", "origin.local", true)
	require.ErrorIs(t, err, domain.ErrInvalidRemote)

	f.config.EXPECT().SaveGlobal(f.global).Return(nil).Times(2)
	require.NoError(t, f.app.AddRemote(ctx, "origin", "bit://origin.local:3000", true))
	remotes, err := f.app.Remotes(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []domain.Remote{domain.NewRemote("origin", "bit://origin.local:3000")}, remotes)

	f.global.DefaultRemote = "origin"
	require.NoError(t, f.app.RemoveRemote(ctx, "origin", true))
	assert.Empty(t, f.global.Remotes)
	assert.Empty(t, f.global.DefaultRemote)

	assert.ErrorIs(t, f.app.RemoveRemote(ctx, "origin", true), domain.ErrRemoteNotFound)
}

func TestApp_NoProject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.app.Import(ctx, nil)
	require.ErrorIs(t, err, domain.ErrConsumerNotFound)
	_, err = f.app.List(ctx, "")
	require.ErrorIs(t, err, domain.ErrScopeNotFound)
	_, err = f.app.Get(ctx, "not an id")
	require.ErrorIs(t, err, domain.ErrMalformedID)
}
