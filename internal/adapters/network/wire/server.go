package wire

import (
	"context"
	"errors"
	"net"

	"go.trai.ch/bit/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
)

// Server exposes a scope over the wire protocol.
type Server struct {
	grpcServer *grpc.Server
	logger     ports.Logger
}

// NewServer registers svc on a new gRPC server.
func NewServer(svc ports.ScopeService, logger ports.Logger) *Server {
	s := &Server{
		grpcServer: grpc.NewServer(grpc.UnaryInterceptor(logErrors(logger))),
		logger:     logger,
	}
	s.grpcServer.RegisterService(&serviceDesc, &scopeServer{svc: svc})
	return s
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		if errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return zerr.Wrap(err, "scope server failed")
	}
}

// ListenAndServe listens on address and serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, address string) error {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", address)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to listen"), "address", address)
	}
	if s.logger != nil {
		s.logger.Info("serving scope on " + lis.Addr().String())
	}
	return s.Serve(ctx, lis)
}

// Stop closes every connection immediately.
func (s *Server) Stop() {
	s.grpcServer.Stop()
}

func logErrors(logger ports.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err != nil && logger != nil {
			logger.Warn(info.FullMethod + ": " + err.Error())
		}
		return resp, err
	}
}
