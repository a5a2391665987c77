package grpcstore

import (
	"context"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Server is an in-process blob map exposed over the BlobStore service.
// Absent keys read as empty bytes, matching the storage.Store contract the
// client presents.
type Server struct {
	UnimplementedBlobStoreServer

	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewServer() *Server {
	return &Server{blobs: map[string][]byte{}}
}

func (s *Server) Get(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BytesValue, error) {
	_ = ctx
	if s == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing server state")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	b := s.blobs[in.GetValue()]
	out := make([]byte, len(b))
	copy(out, b)
	return wrapperspb.Bytes(out), nil
}

func (s *Server) Set(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.BoolValue, error) {
	_ = ctx
	if s == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing server state")
	}
	key, value, err := decodeKV(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed key/value frame")
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[string(key)] = cp
	return wrapperspb.Bool(true), nil
}

func (s *Server) Append(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.Int64Value, error) {
	_ = ctx
	if s == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing server state")
	}
	key, value, err := decodeKV(in.GetValue())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "malformed key/value frame")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[string(key)] = append(s.blobs[string(key)], value...)
	return wrapperspb.Int64(int64(len(s.blobs[string(key)]))), nil
}
