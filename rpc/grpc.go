package rpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const serviceName = "pns.rpc.v1.NameHash"

// NameHashServer is the server API for the NameHash gRPC service.
//
// Messages are protobuf well-known wrapper types so this package does not
// require a protoc/codegen toolchain.
type NameHashServer interface {
	Namehash(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	LabelHash(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
	DecodeLabel(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
	Validate(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error)
	DecodeContent(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error)
}

// UnimplementedNameHashServer can be embedded to have forward compatible implementations.
type UnimplementedNameHashServer struct{}

func (UnimplementedNameHashServer) Namehash(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Namehash not implemented")
}
func (UnimplementedNameHashServer) LabelHash(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method LabelHash not implemented")
}
func (UnimplementedNameHashServer) DecodeLabel(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method DecodeLabel not implemented")
}
func (UnimplementedNameHashServer) Validate(context.Context, *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	return nil, status.Error(codes.Unimplemented, "method Validate not implemented")
}
func (UnimplementedNameHashServer) DecodeContent(context.Context, *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	return nil, status.Error(codes.Unimplemented, "method DecodeContent not implemented")
}

// RegisterNameHashServer registers the NameHash service on a gRPC server.
func RegisterNameHashServer(s grpc.ServiceRegistrar, srv NameHashServer) {
	s.RegisterService(&NameHash_ServiceDesc, srv)
}

// NameHashClient is the client API for the NameHash gRPC service.
type NameHashClient interface {
	Namehash(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	LabelHash(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
	DecodeLabel(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	Validate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error)
	DecodeContent(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type nameHashClient struct{ cc grpc.ClientConnInterface }

func NewNameHashClient(cc grpc.ClientConnInterface) NameHashClient { return &nameHashClient{cc: cc} }

func (c *nameHashClient) Namehash(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Namehash", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nameHashClient) LabelHash(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/LabelHash", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nameHashClient) DecodeLabel(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/DecodeLabel", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nameHashClient) Validate(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BoolValue, error) {
	out := new(wrapperspb.BoolValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Validate", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *nameHashClient) DecodeContent(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/DecodeContent", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// unaryHandler builds a grpc.MethodDesc handler for a StringValue request.
func unaryHandler[Out any](method string, call func(NameHashServer, context.Context, *wrapperspb.StringValue) (Out, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(wrapperspb.StringValue)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(NameHashServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/" + serviceName + "/" + method}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(NameHashServer), ctx, req.(*wrapperspb.StringValue))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// NameHash_ServiceDesc is the grpc.ServiceDesc for NameHash service.
var NameHash_ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*NameHashServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryHandler("Namehash", NameHashServer.Namehash),
		unaryHandler("LabelHash", NameHashServer.LabelHash),
		unaryHandler("DecodeLabel", NameHashServer.DecodeLabel),
		unaryHandler("Validate", NameHashServer.Validate),
		unaryHandler("DecodeContent", NameHashServer.DecodeContent),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "namehash.proto",
}
