package wire

import (
	"context"

	"go.trai.ch/bit/internal/core/ports"
	"google.golang.org/grpc"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "bit.scope.v1.ScopeService"

const (
	methodPush     = "/" + ServiceName + "/Push"
	methodFetch    = "/" + ServiceName + "/Fetch"
	methodSearch   = "/" + ServiceName + "/Search"
	methodDescribe = "/" + ServiceName + "/Describe"
	methodList     = "/" + ServiceName + "/List"
)

// scopeServer adapts a ports.ScopeService to the gRPC handlers.
type scopeServer struct {
	svc ports.ScopeService
}

func (s *scopeServer) push(ctx context.Context, req *PushRequest) (*PushResponse, error) {
	if err := s.svc.Upload(ctx, req.Payload.Contents); err != nil {
		return nil, toStatus(err)
	}
	return &PushResponse{}, nil
}

func (s *scopeServer) fetch(ctx context.Context, req *FetchRequest) (*FetchResponse, error) {
	payloads, err := s.svc.Fetch(ctx, req.IDs, req.WithDependencies)
	if err != nil {
		return nil, toStatus(err)
	}
	return &FetchResponse{Payloads: payloads}, nil
}

func (s *scopeServer) search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	results, err := s.svc.SearchLocally(ctx, req.Query)
	if err != nil {
		return nil, toStatus(err)
	}
	return &SearchResponse{Results: results}, nil
}

func (s *scopeServer) describe(_ context.Context, _ *DescribeRequest) (*DescribeResponse, error) {
	return &DescribeResponse{Scope: s.svc.Describe()}, nil
}

func (s *scopeServer) list(ctx context.Context, _ *ListRequest) (*ListResponse, error) {
	ids, err := s.svc.ListIDs(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	return &ListResponse{IDs: ids}, nil
}

// unary builds a grpc.MethodHandler for a typed handler.
func unary[Req, Resp any](fullMethod string, call func(*scopeServer, context.Context, *Req) (*Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		req := new(Req)
		if err := dec(req); err != nil {
			return nil, err
		}
		s := srv.(*scopeServer) //nolint:forcetypeassert // registered with scopeServer only
		if interceptor == nil {
			return call(s, ctx, req)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}
		return interceptor(ctx, req, info, func(ctx context.Context, r any) (any, error) {
			return call(s, ctx, r.(*Req)) //nolint:forcetypeassert // decoded above
		})
	}
}

// serviceDesc describes the scope service without generated stubs.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*any)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Push", Handler: unary(methodPush, (*scopeServer).push)},
		{MethodName: "Fetch", Handler: unary(methodFetch, (*scopeServer).fetch)},
		{MethodName: "Search", Handler: unary(methodSearch, (*scopeServer).search)},
		{MethodName: "Describe", Handler: unary(methodDescribe, (*scopeServer).describe)},
		{MethodName: "List", Handler: unary(methodList, (*scopeServer).list)},
	},
	Streams: []grpc.StreamDesc{},
}
