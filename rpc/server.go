package rpc

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/hzy1919/pns-sdk/contenturi"
	"github.com/hzy1919/pns-sdk/domain"
	"github.com/hzy1919/pns-sdk/label"
	"github.com/hzy1919/pns-sdk/namehash"
)

// Server exposes the namehash engine, label codec, domain validator and
// content URI decoder over the NameHash gRPC service.
type Server struct {
	UnimplementedNameHashServer
	Cache  *namehash.Cache
	Logger *zap.Logger
}

func (s *Server) Namehash(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Cache == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing namehash cache")
	}
	n := s.Cache.Node(in.GetValue())
	return wrapperspb.Bytes(n[:]), nil
}

func (s *Server) LabelHash(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil || s.Cache == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing namehash cache")
	}
	lh, ok, err := label.HashWith(s.Cache.Engine(), in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if !ok {
		return nil, status.Error(codes.NotFound, errRootLabel.Error())
	}
	return wrapperspb.Bytes(lh[:]), nil
}

func (s *Server) DecodeLabel(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	inner, err := label.Decode(in.GetValue())
	if err != nil {
		if label.IsFormatError(err) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		s.log().Error("decode label", zap.String("token", in.GetValue()), zap.Error(err))
		return nil, status.Error(codes.Internal, err.Error())
	}
	return wrapperspb.String(inner), nil
}

func (s *Server) Validate(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	_ = ctx
	return wrapperspb.Bool(domain.IsWellFormed(in.GetValue(), domain.Options{})), nil
}

func (s *Server) DecodeContent(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	b, err := contenturi.Decode(in.GetValue())
	if err != nil {
		switch {
		case errors.Is(err, contenturi.ErrNoProtocol):
			return nil, status.Error(codes.NotFound, err.Error())
		case errors.Is(err, contenturi.ErrInvalidPayload):
			return nil, status.Error(codes.InvalidArgument, err.Error())
		default:
			s.log().Error("decode content", zap.String("text", in.GetValue()), zap.Error(err))
			return nil, status.Error(codes.Internal, err.Error())
		}
	}
	return wrapperspb.Bytes(b), nil
}

func (s *Server) log() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}

// LoggingInterceptor logs one line per unary call at Debug, or at Warn when
// the call fails with a server-side code.
func LoggingInterceptor(log *zap.Logger) grpc.UnaryServerInterceptor {
	if log == nil {
		log = zap.NewNop()
	}
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)
		fields := []zap.Field{
			zap.String("method", info.FullMethod),
			zap.Stringer("code", code),
			zap.Duration("elapsed", time.Since(start)),
		}
		switch code {
		case codes.Internal, codes.FailedPrecondition, codes.Unknown:
			log.Warn("rpc", append(fields, zap.Error(err))...)
		default:
			log.Debug("rpc", fields...)
		}
		return resp, err
	}
}
