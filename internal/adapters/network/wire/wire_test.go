package wire_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bit/internal/adapters/network/wire"
	"go.trai.ch/bit/internal/core/domain"
	"go.trai.ch/bit/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// startServer serves svc over an in-memory listener and returns a connected client.
func startServer(t *testing.T, svc *mocks.MockScopeService) *wire.Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	srv := wire.NewServer(svc, nil)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	client := wire.NewClient("passthrough:///bufnet", grpc.WithContextDialer(
		func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		},
	))
	require.NoError(t, client.Connect(context.Background()))
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newService(t *testing.T) *mocks.MockScopeService {
	t.Helper()
	svc := mocks.NewMockScopeService(gomock.NewController(t))
	svc.EXPECT().Describe().Return(domain.ScopeDescription{Name: "origin"}).AnyTimes()
	return svc
}

func TestClient_NotConnected(t *testing.T) {
	client := wire.NewClient("127.0.0.1:1")

	_, err := client.Fetch(context.Background(), []string{"utils/pad"}, false)
	require.ErrorIs(t, err, domain.ErrTransportNotConnected)

	err = client.Push(context.Background(), domain.Payload{})
	require.ErrorIs(t, err, domain.ErrTransportNotConnected)

	require.NoError(t, client.Close())
}

func TestClient_DescribeAndList(t *testing.T) {
	svc := newService(t)
	svc.EXPECT().ListIDs(gomock.Any()).Return([]string{"@this/utils/pad@1.0.0"}, nil)
	client := startServer(t, svc)

	desc, err := client.DescribeScope(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "origin", desc.Name)

	ids, err := client.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"@this/utils/pad@1.0.0"}, ids)
}

func TestClient_FetchPreservesOrder(t *testing.T) {
	svc := newService(t)
	payloads := []domain.Payload{
		{ID: "utils/pad@1.0.0", Name: "pad", Contents: []byte{0, 1, 2}},
		{ID: "utils/trim@1.0.0", Name: "trim", Contents: []byte("tar")},
	}
	svc.EXPECT().Fetch(gomock.Any(), []string{"utils/trim"}, true).Return(payloads, nil)
	client := startServer(t, svc)

	got, err := client.Fetch(context.Background(), []string{"utils/trim"}, true)
	require.NoError(t, err)
	assert.Equal(t, payloads, got)
}

func TestClient_ErrorMapping(t *testing.T) {
	svc := newService(t)
	svc.EXPECT().Fetch(gomock.Any(), gomock.Any(), false).
		Return(nil, zerr.With(zerr.Wrap(domain.ErrBitNotFound, "no source record"), "id", "utils/nope"))
	svc.EXPECT().Upload(gomock.Any(), []byte("bad")).
		Return(zerr.Wrap(domain.ErrValidation, "empty implementation"))
	client := startServer(t, svc)

	_, err := client.Fetch(context.Background(), []string{"utils/nope"}, false)
	require.ErrorIs(t, err, domain.ErrBitNotFound)
	assert.Contains(t, err.Error(), "no source record")

	err = client.Push(context.Background(), domain.Payload{ID: "utils/x@1.0.0", Contents: []byte("bad")})
	require.ErrorIs(t, err, domain.ErrRemoteRejected)
	assert.Contains(t, err.Error(), "empty implementation")
}

func TestClient_Search(t *testing.T) {
	svc := newService(t)
	results := []domain.SearchResult{{ID: "str/leftPad@1.0.0", Box: "str", Name: "leftPad", Score: 2}}
	svc.EXPECT().SearchLocally(gomock.Any(), "left pad").Return(results, nil)
	client := startServer(t, svc)

	got, err := client.Search(context.Background(), "left pad")
	require.NoError(t, err)
	assert.Equal(t, results, got)
}

func TestClient_ConnectUnreachable(t *testing.T) {
	lis := bufconn.Listen(1024)
	require.NoError(t, lis.Close())

	client := wire.NewClient("passthrough:///bufnet", grpc.WithContextDialer(
		func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		},
	))
	err := client.Connect(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrTransportNotConnected)
	assert.Equal(t, codes.Unavailable, status.Code(err))
}
