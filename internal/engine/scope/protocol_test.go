package scope_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bit/internal/adapters/archive"
	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestPut_PadThenTrim(t *testing.T) {
	ctx := context.Background()
	s := newEnv(t).create(t, "local")

	pad := newBit("utils", "pad", "1.0.0")
	put(t, s, pad)

	got, err := s.Put(ctx, newBit("utils", "trim", "1.0.0", "utils/pad@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0", "utils/trim@1.0.0"}, got.IDs().Strings())

	resolved, err := s.Get(ctx, domain.MustParseBitID("utils/trim"))
	require.NoError(t, err)
	assert.Equal(t, got.IDs().Strings(), resolved.IDs().Strings())
	if diff := cmp.Diff(pad, resolved[0], cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("dependency mismatch (-want +got):\n%s", diff)
	}

	record, err := s.Storage().Dependencies().Get(domain.MustParseBitID("utils/trim@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0"}, record.BitIDs().Strings())
}

func TestPut_ClosureIsComplete(t *testing.T) {
	ctx := context.Background()
	s := newEnv(t).create(t, "local")

	put(t, s,
		newBit("str", "repeat", "1.0.0"),
		newBit("utils", "pad", "1.0.0", "str/repeat@1.0.0"),
		newBit("utils", "trim", "1.0.0", "str/repeat@1.0.0"),
	)

	got, err := s.Put(ctx, newBit("utils", "format", "1.0.0", "utils/pad@1.0.0", "utils/trim@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"str/repeat@1.0.0", "utils/pad@1.0.0", "utils/trim@1.0.0", "utils/format@1.0.0"},
		got.IDs().Strings())

	// Every recorded dependency is present in the store.
	record, err := s.Storage().Dependencies().Get(domain.MustParseBitID("utils/format@1.0.0"))
	require.NoError(t, err)
	for _, dep := range record.BitIDs() {
		assert.True(t, s.Storage().Sources().Has(dep), dep.String())
	}
}

func TestPut_ValidationWritesNothing(t *testing.T) {
	ctx := context.Background()
	s := newEnv(t).create(t, "local")
	mapPath := filepath.Join(s.Storage().Root(), domain.DependencyMapName)
	before, err := os.ReadFile(mapPath)
	require.NoError(t, err)

	_, err = s.Put(ctx, newBit("utils", "pad", "not-a-version"))
	require.ErrorIs(t, err, domain.ErrValidation)

	ids, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)
	after, err := os.ReadFile(mapPath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPut_MissingDependency(t *testing.T) {
	ctx := context.Background()
	s := newEnv(t).create(t, "local")

	_, err := s.Put(ctx, newBit("utils", "trim", "1.0.0", "utils/pad@1.0.0"))
	require.ErrorIs(t, err, domain.ErrBitNotFound)
	assert.False(t, s.Storage().Sources().Has(domain.MustParseBitID("utils/trim@1.0.0")))

	_, err = s.Put(ctx, newBit("utils", "trim", "1.0.0", "nowhere/utils/pad@1.0.0"))
	require.ErrorIs(t, err, domain.ErrRemoteNotFound)
}

func TestPut_RejectsCycles(t *testing.T) {
	ctx := context.Background()
	s := newEnv(t).create(t, "local")
	put(t, s, newBit("utils", "pad", "1.0.0"), newBit("utils", "trim", "1.0.0", "utils/pad@1.0.0"))

	_, err := s.Put(ctx, newBit("utils", "pad", "1.0.0", "utils/trim@1.0.0"))
	require.ErrorIs(t, err, domain.ErrCycleDetected)

	// The previous record is untouched.
	got, err := s.Get(ctx, domain.MustParseBitID("utils/trim@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0", "utils/trim@1.0.0"}, got.IDs().Strings())
}

func TestGet_VersionDeterminism(t *testing.T) {
	ctx := context.Background()
	s := newEnv(t).create(t, "local")
	put(t, s, newBit("utils", "pad", "1.2.0"), newBit("utils", "pad", "2.0.0"), newBit("utils", "pad", "1.0.0"))

	for _, raw := range []string{"utils/pad", "utils/pad@latest", "@this/utils/pad"} {
		got, err := s.Get(ctx, domain.MustParseBitID(raw))
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "2.0.0", got[0].Meta.Version, raw)
	}

	one, err := s.GetOne(ctx, domain.MustParseBitID("local/utils/pad@1.2.0"))
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", one.Meta.Version)
}

func TestGet_NotInScope(t *testing.T) {
	ctx := context.Background()
	s := newEnv(t).create(t, "local")

	_, err := s.Storage().Sources().Set(newBit("utils", "pad", "1.0.0"))
	require.NoError(t, err)

	_, err = s.Get(ctx, domain.MustParseBitID("utils/pad@1.0.0"))
	assert.ErrorIs(t, err, domain.ErrBitNotInScope)

	_, err = s.Get(ctx, domain.MustParseBitID("utils/missing"))
	assert.ErrorIs(t, err, domain.ErrBitNotFound)
}

func TestGetMany_UnionOfClosures(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	origin := e.create(t, "origin")
	put(t, origin, newBit("str", "left", "1.0.0"))

	s := e.create(t, "local")
	require.NoError(t, s.AddRemote(fileRemote("origin", origin)))
	put(t, s, newBit("utils", "pad", "1.0.0"), newBit("utils", "trim", "1.0.0", "utils/pad@1.0.0"))

	got, err := s.GetMany(ctx, domain.BitIDs{
		domain.MustParseBitID("utils/trim@1.0.0"),
		domain.MustParseBitID("origin/str/left@1.0.0"),
		domain.MustParseBitID("utils/pad@1.0.0"),
	})
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"utils/pad@1.0.0", "utils/trim@1.0.0", "origin/str/left@1.0.0"},
		got.IDs().Strings())
	assert.True(t, s.Storage().External().Has(domain.MustParseBitID("origin/str/left@1.0.0")))
}

func TestFetch_OrderAndAllOrNothing(t *testing.T) {
	ctx := context.Background()
	s := newEnv(t).create(t, "local")
	put(t, s,
		newBit("utils", "pad", "1.0.0"),
		newBit("utils", "trim", "1.0.0", "utils/pad@1.0.0"),
		newBit("str", "left", "1.0.0"),
	)

	payloads, err := s.Fetch(ctx, []string{"utils/trim@1.0.0", "str/left@1.0.0", "utils/pad@1.0.0"}, false)
	require.NoError(t, err)
	var got []string
	for _, p := range payloads {
		got = append(got, p.ID)
	}
	assert.Equal(t, []string{"utils/trim@1.0.0", "str/left@1.0.0", "utils/pad@1.0.0"}, got)

	payloads, err = s.Fetch(ctx, []string{"utils/pad@1.0.0", "utils/missing@1.0.0"}, false)
	require.ErrorIs(t, err, domain.ErrBitNotFound)
	assert.Nil(t, payloads)

	_, err = s.Fetch(ctx, []string{"elsewhere/utils/pad@1.0.0"}, false)
	require.ErrorIs(t, err, domain.ErrBitNotFound)
}

func TestFetch_WithDependencies(t *testing.T) {
	ctx := context.Background()
	s := newEnv(t).create(t, "local")
	put(t, s, newBit("utils", "pad", "1.0.0"), newBit("utils", "trim", "1.0.0", "utils/pad@1.0.0"))

	payloads, err := s.Fetch(ctx, []string{"utils/trim@1.0.0", "utils/pad@1.0.0"}, true)
	require.NoError(t, err)
	require.Len(t, payloads, 2)
	assert.Equal(t, "utils/pad@1.0.0", payloads[0].ID)
	assert.Equal(t, "utils/trim@1.0.0", payloads[1].ID)

	decoded, err := archive.NewTarCodec().Decode(payloads[1].Contents)
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0"}, decoded.Meta.Dependencies)
}

func TestRemoteDependency_CachedInExternal(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	origin := e.create(t, "origin")
	put(t, origin, newBit("str", "repeat", "1.0.0"), newBit("str", "left", "1.0.0", "str/repeat@1.0.0"))

	s := e.create(t, "local")
	require.NoError(t, s.AddRemote(fileRemote("origin", origin)))

	got, err := s.Put(ctx, newBit("utils", "pad", "1.0.0", "origin/str/left@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"origin/str/repeat@1.0.0", "origin/str/left@1.0.0", "utils/pad@1.0.0"},
		got.IDs().Strings())

	record, err := s.Storage().Dependencies().Get(domain.MustParseBitID("utils/pad@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"origin/str/repeat@1.0.0": "origin",
		"origin/str/left@1.0.0":   "origin",
	}, record.Remotes)
	for _, dep := range record.BitIDs() {
		assert.True(t, s.Storage().External().Has(dep), dep.String())
	}

	// A dropped cache entry is fetched again from the remote.
	require.NoError(t, s.Storage().External().Remove(domain.MustParseBitID("origin/str/left@1.0.0")))
	resolved, err := s.Get(ctx, domain.MustParseBitID("utils/pad@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, got.IDs().Strings(), resolved.IDs().Strings())
	assert.True(t, s.Storage().External().Has(domain.MustParseBitID("origin/str/left@1.0.0")))
}

func TestGet_RemoteAliasOverride(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	globalScope := e.create(t, "global")
	globalPad := newBit("utils", "pad", "1.0.0")
	globalPad.Impl = []byte("global")
	put(t, globalScope, globalPad)

	localScope := e.create(t, "mirror")
	localPad := newBit("utils", "pad", "1.0.0")
	localPad.Impl = []byte("local")
	put(t, localScope, localPad)

	s := e.create(t, "local")
	e.config.Remotes["origin"] = fileRemote("origin", globalScope)
	require.NoError(t, s.AddRemote(fileRemote("origin", localScope)))

	got, err := s.Get(ctx, domain.MustParseBitID("origin/utils/pad@1.0.0"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []byte("local"), got[0].Impl)
	assert.Equal(t, "origin", got[0].Scope)

	one, err := s.GetOne(ctx, domain.MustParseBitID("origin/utils/pad@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, []byte("local"), one.Impl)
}

func TestPush_SendsLocalClosure(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	origin := e.create(t, "origin")

	s := e.create(t, "local")
	require.NoError(t, s.AddRemote(fileRemote("origin!", origin)))
	put(t, s, newBit("utils", "pad", "1.0.0"), newBit("utils", "trim", "1.0.0", "utils/pad@1.0.0"))

	pushed, err := s.Push(ctx, domain.BitIDs{domain.MustParseBitID("utils/trim")}, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0", "utils/trim@1.0.0"}, pushed.Strings())

	remoteIDs, err := origin.ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"@this/utils/pad@1.0.0", "@this/utils/trim@1.0.0"}, remoteIDs)

	// The remote resolves the pushed closure itself.
	resolved, err := origin.Get(ctx, domain.MustParseBitID("utils/trim@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0", "utils/trim@1.0.0"}, resolved.IDs().Strings())

	// The remote owns the bits now: local records are gone and copies are
	// cached under the remote scope.
	for _, raw := range []string{"utils/pad@1.0.0", "utils/trim@1.0.0"} {
		id := domain.MustParseBitID(raw)
		assert.False(t, s.Storage().Sources().Has(id), raw)
		_, err := s.Storage().Dependencies().Get(id)
		require.ErrorIs(t, err, domain.ErrBitNotInScope, raw)
		assert.True(t, s.Storage().External().Has(id.WithScope("origin")), raw)
	}
	ids, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// Addressing the old local id reaches the remote copy.
	got, err := s.Get(ctx, domain.MustParseBitID("utils/trim"))
	require.NoError(t, err)
	assert.Equal(t, []string{"origin/utils/pad@1.0.0", "origin/utils/trim@1.0.0"}, got.IDs().Strings())
}

func TestPush_LocalDependentKeepsResolving(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	origin := e.create(t, "origin")

	s := e.create(t, "local")
	require.NoError(t, s.AddRemote(fileRemote("origin", origin)))
	put(t, s, newBit("utils", "pad", "1.0.0"), newBit("utils", "trim", "1.0.0", "utils/pad@1.0.0"))

	pushed, err := s.Push(ctx, domain.BitIDs{domain.MustParseBitID("utils/pad@1.0.0")}, "origin")
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/pad@1.0.0"}, pushed.Strings())

	ids, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"utils/trim@1.0.0"}, ids.Strings())

	// trim still records pad as its own and loads the cached copy.
	got, err := s.Get(ctx, domain.MustParseBitID("utils/trim@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"origin/utils/pad@1.0.0", "utils/trim@1.0.0"}, got.IDs().Strings())

	one, err := s.GetOne(ctx, domain.MustParseBitID("utils/pad@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, "origin", one.Scope)
}

func TestGet_TransitiveDependencyTaggedWithFetchingRemote(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	upstream := e.create(t, "upstream")
	put(t, upstream, newBit("utils", "pad", "1.0.0"))

	middle := e.create(t, "middle")
	require.NoError(t, middle.AddRemote(fileRemote("up", upstream)))
	put(t, middle, newBit("utils", "trim", "1.0.0", "up/utils/pad@1.0.0"))

	s := e.create(t, "local")
	require.NoError(t, s.AddRemote(fileRemote("origin", middle)))

	// local only knows origin, so everything origin hands back is origin's.
	got, err := s.Get(ctx, domain.MustParseBitID("origin/utils/trim@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t, []string{"origin/utils/pad@1.0.0", "origin/utils/trim@1.0.0"}, got.IDs().Strings())

	// A cold cache refetches pad from origin, which serves its cached copy.
	require.NoError(t, s.Storage().External().Remove(got.IDs()...))
	put(t, s, newBit("utils", "format", "1.0.0", "origin/utils/trim@1.0.0"))
	require.NoError(t, s.Storage().External().Remove(domain.MustParseBitID("origin/utils/pad@1.0.0")))

	resolved, err := s.Get(ctx, domain.MustParseBitID("utils/format@1.0.0"))
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"origin/utils/pad@1.0.0", "origin/utils/trim@1.0.0", "utils/format@1.0.0"},
		resolved.IDs().Strings())
}

func TestPush_FailureKeepsLocalState(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	origin := e.create(t, "origin")
	mirror := e.create(t, "mirror")
	put(t, mirror, newBit("str", "left", "1.0.0"))

	s := e.create(t, "local")
	require.NoError(t, s.AddRemote(fileRemote("origin", origin)))
	require.NoError(t, s.AddRemote(fileRemote("mirror", mirror)))
	put(t, s, newBit("utils", "pad", "1.0.0", "mirror/str/left@1.0.0"))

	// origin has no remote named mirror, so it cannot resolve the dependency.
	pushed, err := s.Push(ctx, domain.BitIDs{domain.MustParseBitID("utils/pad@1.0.0")}, "origin")
	require.ErrorIs(t, err, domain.ErrRemoteNotFound)
	assert.Empty(t, pushed)

	assert.True(t, s.Storage().Sources().Has(domain.MustParseBitID("utils/pad@1.0.0")))
	assert.False(t, s.Storage().External().Has(domain.MustParseBitID("origin/utils/pad@1.0.0")))
	assert.False(t, origin.Storage().Sources().Has(domain.MustParseBitID("utils/pad@1.0.0")))
}

func TestPut_BuildsWithCompiler(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	s := e.create(t, "local")
	ctrl := gomock.NewController(t)

	plugin := mocks.NewMockPlugin(ctrl)
	e.plugins.EXPECT().Lookup("babel").Return(plugin, nil)
	plugin.EXPECT().Build(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, dir string) (domain.Artifact, error) {
			impl, err := os.ReadFile(filepath.Join(dir, domain.DefaultImplFile))
			require.NoError(t, err)
			return domain.Artifact{Files: map[string][]byte{"index.js": append([]byte("// built\n"), impl...)}}, nil
		})

	bit := newBit("utils", "pad", "1.0.0")
	bit.Meta.Compiler = "babel"
	put(t, s, bit)

	stored, err := s.GetOne(ctx, domain.MustParseBitID("utils/pad@1.0.0"))
	require.NoError(t, err)
	assert.Contains(t, string(stored.Dist["index.js"]), "// built")
	assert.Nil(t, bit.Dist)

	e.plugins.EXPECT().Lookup("missing").Return(nil, domain.ErrPluginNotFound)
	other := newBit("utils", "trim", "1.0.0")
	other.Meta.Compiler = "missing"
	_, err = s.Put(ctx, other)
	require.ErrorIs(t, err, domain.ErrPluginNotFound)
	assert.False(t, s.Storage().Sources().Has(other.ID()))
}
